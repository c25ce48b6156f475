// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package post

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trananh/movira/internal/platform/database/schema"
	"github.com/trananh/movira/internal/platform/dberr"
	"github.com/trananh/movira/pkg/pagination"
)

// PostgresRepository is the pgx-backed implementation of [Repository].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var postColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.MediaPost.ID, schema.MediaPost.AuthorID, schema.MediaPost.Kind,
	schema.MediaPost.Title, schema.MediaPost.Body, schema.MediaPost.ImageURL,
	schema.MediaPost.LikeCount, schema.MediaPost.CreatedAt, schema.MediaPost.UpdatedAt,
)

func scanPost(row interface{ Scan(...any) error }) (*Post, error) {
	p := &Post{}
	err := row.Scan(&p.ID, &p.AuthorID, &p.Kind, &p.Title, &p.Body, &p.ImageURL,
		&p.LikeCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.MediaPost.Table,
		schema.MediaPost.ID, schema.MediaPost.AuthorID, schema.MediaPost.Kind,
		schema.MediaPost.Title, schema.MediaPost.Body, schema.MediaPost.ImageURL,
		schema.MediaPost.LikeCount, schema.MediaPost.CreatedAt, schema.MediaPost.UpdatedAt,
		schema.MediaPost.CreatedAt, schema.MediaPost.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.AuthorID, p.Kind, p.Title, p.Body, p.ImageURL,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) Get(context context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		postColumns, schema.MediaPost.Table, schema.MediaPost.ID, schema.MediaPost.DeletedAt,
	)

	p, err := scanPost(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}
	return p, nil
}

func (repository *PostgresRepository) List(context context.Context, authorID string, params pagination.Params) ([]*Post, int, error) {
	filter := fmt.Sprintf("%s IS NULL", schema.MediaPost.DeletedAt)
	args := []any{}
	if authorID != "" {
		args = append(args, authorID)
		filter = fmt.Sprintf("%s AND %s = $1", filter, schema.MediaPost.AuthorID)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`,
		schema.MediaPost.Table, filter,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`,
		postColumns, schema.MediaPost.Table, filter,
		schema.MediaPost.CreatedAt, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	return posts, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.MediaPost.Table,
		schema.MediaPost.Title, schema.MediaPost.Body, schema.MediaPost.ImageURL,
		schema.MediaPost.UpdatedAt,
		schema.MediaPost.ID, schema.MediaPost.DeletedAt,
		schema.MediaPost.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Title, p.Body, p.ImageURL).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_post")
}

/*
Delete removes a post and everything social that hangs off it.

Description: Soft-deletes the post row, hard-deletes its comments deepest
first so no reply ever outlives its parent, and removes all likes on the
post and on the deleted comments. Runs in a single transaction.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound when the post does not exist or was already deleted
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_post")
	}
	defer func() { _ = tx.Rollback(context) }()

	softDelete := fmt.Sprintf(`
		UPDATE %s SET %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.MediaPost.Table, schema.MediaPost.DeletedAt,
		schema.MediaPost.ID, schema.MediaPost.DeletedAt,
	)

	cmd, err := tx.Exec(context, softDelete, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_post")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	// Collect the post's comments deepest first.
	collectComments := fmt.Sprintf(`
		WITH RECURSIVE thread AS (
			SELECT %s AS id, 0 AS depth FROM %s WHERE %s = $1 AND %s IS NULL
			UNION ALL
			SELECT c.%s, t.depth + 1
			FROM %s c
			JOIN thread t ON c.%s = t.id
		)
		SELECT id FROM thread ORDER BY depth DESC
	`,
		schema.SocialComment.ID, schema.SocialComment.Table,
		schema.SocialComment.SubjectID, schema.SocialComment.ParentID,
		schema.SocialComment.ID, schema.SocialComment.Table, schema.SocialComment.ParentID,
	)

	rows, err := tx.Query(context, collectComments, id)
	if err != nil {
		return dberr.Wrap(err, "collect_post_comments")
	}

	var commentIDs []string
	for rows.Next() {
		var commentID string
		if err := rows.Scan(&commentID); err != nil {
			rows.Close()
			return dberr.Wrap(err, "scan_post_comment")
		}
		commentIDs = append(commentIDs, commentID)
	}
	rows.Close()

	// Likes on the post itself and on every deleted comment.
	subjectIDs := append(commentIDs, id)
	deleteLikes := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1)`,
		schema.SocialLike.Table, schema.SocialLike.SubjectID,
	)
	if _, err := tx.Exec(context, deleteLikes, subjectIDs); err != nil {
		return dberr.Wrap(err, "delete_post_likes")
	}

	deleteComment := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.ID,
	)
	for _, commentID := range commentIDs {
		if _, err := tx.Exec(context, deleteComment, commentID); err != nil {
			return dberr.Wrap(err, "delete_post_comment")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_post")
	}

	return nil
}
