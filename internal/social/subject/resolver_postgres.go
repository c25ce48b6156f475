// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package subject

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/database/schema"
	"github.com/trananh/movira/internal/platform/dberr"
)

// PostgresResolver resolves subjects against the content tables.
type PostgresResolver struct {
	db *pgxpool.Pool
}

func NewPostgresResolver(db *pgxpool.Pool) *PostgresResolver {
	return &PostgresResolver{db: db}
}

func (resolver *PostgresResolver) Resolve(context context.Context, kind Kind, id string) (*Subject, error) {
	subject := &Subject{ID: id, Kind: kind}

	switch kind {
	case KindPost:
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
			schema.MediaPost.AuthorID, schema.MediaPost.Table,
			schema.MediaPost.ID, schema.MediaPost.DeletedAt,
		)
		if err := resolver.db.QueryRow(context, query, id).Scan(&subject.OwnerID); err != nil {
			return nil, notFoundAs(err, "Post")
		}

	case KindComment:
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
			schema.SocialComment.AuthorID, schema.SocialComment.Table, schema.SocialComment.ID,
		)
		if err := resolver.db.QueryRow(context, query, id).Scan(&subject.OwnerID); err != nil {
			return nil, notFoundAs(err, "Comment")
		}

	case KindFilm:
		// Films have no single owner; only existence matters.
		query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1`,
			schema.CatalogFilm.Table, schema.CatalogFilm.ID,
		)
		var one int
		if err := resolver.db.QueryRow(context, query, id).Scan(&one); err != nil {
			return nil, notFoundAs(err, "Film")
		}

	default:
		return nil, apperr.ValidationError("Unknown subject kind")
	}

	return subject, nil
}

// notFoundAs maps a no-rows error to a resource-specific NotFound.
func notFoundAs(err error, resource string) error {
	wrapped := dberr.Wrap(err, "resolve_subject")
	if wrapped == dberr.ErrNotFound {
		return apperr.NotFound(resource)
	}
	return wrapped
}
