// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package notification

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

var notificationColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
	schema.SocialNotification.ID, schema.SocialNotification.UserID,
	schema.SocialNotification.Title, schema.SocialNotification.Message,
	schema.SocialNotification.Link, schema.SocialNotification.IsRead,
	schema.SocialNotification.CreatedAt,
)

func (repository *PostgresRepository) Create(context context.Context, n *Notification) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING %s
	`,
		schema.SocialNotification.Table,
		schema.SocialNotification.ID, schema.SocialNotification.UserID,
		schema.SocialNotification.Title, schema.SocialNotification.Message,
		schema.SocialNotification.Link, schema.SocialNotification.IsRead,
		schema.SocialNotification.CreatedAt,
		schema.SocialNotification.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		n.ID, n.UserID, n.Title, n.Message, n.Link,
	).Scan(&n.CreatedAt)

	return dberr.Wrap(err, "create_notification")
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID string, params pagination.Params) ([]*Notification, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.SocialNotification.Table, schema.SocialNotification.UserID,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_notifications")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		notificationColumns, schema.SocialNotification.Table,
		schema.SocialNotification.UserID, schema.SocialNotification.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_notifications")
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_notification")
		}
		notifications = append(notifications, n)
	}

	return notifications, total, nil
}

func (repository *PostgresRepository) MarkRead(context context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = TRUE
		WHERE %s = $1 AND %s = $2
	`,
		schema.SocialNotification.Table, schema.SocialNotification.IsRead,
		schema.SocialNotification.ID, schema.SocialNotification.UserID,
	)

	cmd, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return dberr.Wrap(err, "mark_notification_read")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) MarkAllRead(context context.Context, userID string) (int, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = TRUE
		WHERE %s = $1 AND %s = FALSE
	`,
		schema.SocialNotification.Table, schema.SocialNotification.IsRead,
		schema.SocialNotification.UserID, schema.SocialNotification.IsRead,
	)

	cmd, err := repository.db.Exec(context, query, userID)
	if err != nil {
		return 0, dberr.Wrap(err, "mark_all_notifications_read")
	}

	return int(cmd.RowsAffected()), nil
}
