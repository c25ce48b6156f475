// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package like

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/database/schema"
	"github.com/trananh/movira/internal/platform/dberr"
	"github.com/trananh/movira/internal/social/subject"
)

// PostgresRepository is the pgx-backed implementation of [Repository].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// counterTarget maps a subject kind to the table and columns holding its
// denormalized like counter.
func counterTarget(kind subject.Kind) (table, idColumn, countColumn string, err error) {
	switch kind {
	case subject.KindPost:
		return schema.MediaPost.Table, schema.MediaPost.ID, schema.MediaPost.LikeCount, nil
	case subject.KindFilm:
		return schema.CatalogFilm.Table, schema.CatalogFilm.ID, schema.CatalogFilm.LikeCount, nil
	case subject.KindComment:
		return schema.SocialComment.Table, schema.SocialComment.ID, schema.SocialComment.LikeCount, nil
	}
	return "", "", "", apperr.ValidationError(fmt.Sprintf("Unknown subject type: %s", kind))
}

/*
InsertRelation records the like relation row.

Description: The composite primary key (subjectid, userid) plus ON CONFLICT
DO NOTHING makes the insert idempotent; the command tag tells us whether a
row was actually written.

Parameters:
  - context: context.Context
  - subjectID: string
  - userID: string

Returns:
  - bool: true when the relation was newly created
  - error: Execution errors
*/
func (repository *PostgresRepository) InsertRelation(context context.Context, subjectID, userID string) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.SocialLike.Table,
		schema.SocialLike.SubjectID, schema.SocialLike.UserID, schema.SocialLike.CreatedAt,
		schema.SocialLike.SubjectID, schema.SocialLike.UserID,
	)

	cmd, err := repository.db.Exec(context, query, subjectID, userID)
	if err != nil {
		return false, dberr.Wrap(err, "insert_like")
	}

	return cmd.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) DeleteRelation(context context.Context, subjectID, userID string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialLike.Table, schema.SocialLike.SubjectID, schema.SocialLike.UserID,
	)

	cmd, err := repository.db.Exec(context, query, subjectID, userID)
	if err != nil {
		return false, dberr.Wrap(err, "delete_like")
	}

	return cmd.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) IncrementCount(context context.Context, kind subject.Kind, subjectID string) (int64, error) {
	table, idColumn, countColumn, err := counterTarget(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE(%s, 0) + 1
		WHERE %s = $1
		RETURNING %s
	`, table, countColumn, countColumn, idColumn, countColumn)

	var likes int64
	if err := repository.db.QueryRow(context, query, subjectID).Scan(&likes); err != nil {
		return 0, dberr.Wrap(err, "increment_like_count")
	}

	return likes, nil
}

func (repository *PostgresRepository) DecrementCount(context context.Context, kind subject.Kind, subjectID string) (int64, error) {
	table, idColumn, countColumn, err := counterTarget(kind)
	if err != nil {
		return 0, err
	}

	// The floor keeps a drifted counter from going negative.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = GREATEST(COALESCE(%s, 0) - 1, 0)
		WHERE %s = $1
		RETURNING %s
	`, table, countColumn, countColumn, idColumn, countColumn)

	var likes int64
	if err := repository.db.QueryRow(context, query, subjectID).Scan(&likes); err != nil {
		return 0, dberr.Wrap(err, "decrement_like_count")
	}

	return likes, nil
}

/*
Recount repairs the counter from the relation table.

Parameters:
  - context: context.Context
  - kind: subject.Kind
  - subjectID: string

Returns:
  - int64: The true relation count the counter was set to
  - error: Execution errors
*/
func (repository *PostgresRepository) Recount(context context.Context, kind subject.Kind, subjectID string) (int64, error) {
	table, idColumn, countColumn, err := counterTarget(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = (SELECT count(*) FROM %s WHERE %s = $1)
		WHERE %s = $1
		RETURNING %s
	`,
		table, countColumn,
		schema.SocialLike.Table, schema.SocialLike.SubjectID,
		idColumn, countColumn,
	)

	var likes int64
	if err := repository.db.QueryRow(context, query, subjectID).Scan(&likes); err != nil {
		return 0, dberr.Wrap(err, "recount_likes")
	}

	return likes, nil
}

func (repository *PostgresRepository) GetCount(context context.Context, kind subject.Kind, subjectID string) (int64, error) {
	table, idColumn, countColumn, err := counterTarget(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COALESCE(%s, 0) FROM %s WHERE %s = $1`,
		countColumn, table, idColumn,
	)

	var likes int64
	if err := repository.db.QueryRow(context, query, subjectID).Scan(&likes); err != nil {
		return 0, dberr.Wrap(err, "get_like_count")
	}

	return likes, nil
}
