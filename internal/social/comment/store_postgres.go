// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trananh/movira/internal/platform/database/schema"
	"github.com/trananh/movira/internal/platform/dberr"
)

// PostgresRepository is the pgx-backed implementation of [Repository].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// commentColumns is the canonical SELECT column list for hydrating a Comment.
var commentColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
	schema.SocialComment.ID, schema.SocialComment.SubjectID, schema.SocialComment.AuthorID,
	schema.SocialComment.ParentID, schema.SocialComment.Body, schema.SocialComment.LikeCount,
	schema.SocialComment.CreatedAt, schema.SocialComment.UpdatedAt,
)

func (repository *PostgresRepository) ListBySubject(context context.Context, subjectID string) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		commentColumns, schema.SocialComment.Table,
		schema.SocialComment.SubjectID, schema.SocialComment.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, subjectID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.SubjectID, &c.AuthorID, &c.ParentID, &c.Body, &c.LikeCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (repository *PostgresRepository) Get(context context.Context, id string) (*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		commentColumns, schema.SocialComment.Table, schema.SocialComment.ID,
	)

	c := &Comment{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.SubjectID, &c.AuthorID, &c.ParentID, &c.Body, &c.LikeCount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_comment")
	}

	return c, nil
}

func (repository *PostgresRepository) Create(context context.Context, c *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, 0, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.SocialComment.Table,
		schema.SocialComment.ID, schema.SocialComment.SubjectID, schema.SocialComment.AuthorID,
		schema.SocialComment.ParentID, schema.SocialComment.Body, schema.SocialComment.LikeCount,
		schema.SocialComment.CreatedAt, schema.SocialComment.UpdatedAt,
		schema.SocialComment.CreatedAt, schema.SocialComment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.SubjectID, c.AuthorID, c.ParentID, c.Body,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "create_comment")
}

func (repository *PostgresRepository) UpdateBody(context context.Context, id, body string) (*Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.SocialComment.Table,
		schema.SocialComment.Body, schema.SocialComment.UpdatedAt,
		schema.SocialComment.ID, commentColumns,
	)

	c := &Comment{}
	err := repository.db.QueryRow(context, query, id, body).Scan(
		&c.ID, &c.SubjectID, &c.AuthorID, &c.ParentID, &c.Body, &c.LikeCount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_comment")
	}

	return c, nil
}

func (repository *PostgresRepository) CountReplies(context context.Context, id string) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.ParentID,
	)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_replies")
	}

	return total, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		// A foreign-key violation here means replies still reference this
		// comment; dberr surfaces it as a conflict.
		return dberr.Wrap(err, "delete_comment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteSubtree(context context.Context, id string) (int, error) {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_delete_subtree")
	}
	defer func() { _ = tx.Rollback(context) }()

	// Collect the whole thread, deepest descendants first, so every child is
	// deleted before its parent and the no-orphaned-reference constraint
	// never trips.
	collectQuery := fmt.Sprintf(`
		WITH RECURSIVE thread AS (
			SELECT %s AS id, 0 AS depth FROM %s WHERE %s = $1
			UNION ALL
			SELECT c.%s, t.depth + 1
			FROM %s c
			JOIN thread t ON c.%s = t.id
		)
		SELECT id FROM thread ORDER BY depth DESC
	`,
		schema.SocialComment.ID, schema.SocialComment.Table, schema.SocialComment.ID,
		schema.SocialComment.ID, schema.SocialComment.Table, schema.SocialComment.ParentID,
	)

	rows, err := tx.Query(context, collectQuery, id)
	if err != nil {
		return 0, dberr.Wrap(err, "collect_subtree")
	}

	var ids []string
	for rows.Next() {
		var commentID string
		if err := rows.Scan(&commentID); err != nil {
			rows.Close()
			return 0, dberr.Wrap(err, "scan_subtree")
		}
		ids = append(ids, commentID)
	}
	rows.Close()

	if len(ids) == 0 {
		return 0, dberr.ErrNotFound
	}

	// Likes on the deleted comments go first.
	deleteLikes := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1)`,
		schema.SocialLike.Table, schema.SocialLike.SubjectID,
	)
	if _, err := tx.Exec(context, deleteLikes, ids); err != nil {
		return 0, dberr.Wrap(err, "delete_subtree_likes")
	}

	deleteComment := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.ID,
	)
	for _, commentID := range ids {
		if _, err := tx.Exec(context, deleteComment, commentID); err != nil {
			return 0, dberr.Wrap(err, "delete_subtree_comment")
		}
	}

	if err := tx.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_delete_subtree")
	}

	return len(ids), nil
}
