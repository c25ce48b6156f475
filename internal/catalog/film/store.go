// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package film

import (
	"context"

	"github.com/trananh/movira/pkg/pagination"
)

// Repository persists films and their credit edges.
type Repository interface {
	Create(context context.Context, f *Film) error

	Get(context context.Context, id string) (*Film, error)

	GetBySlug(context context.Context, slug string) (*Film, error)

	// FindByTMDBID returns NotFound when no film carries the TMDB id.
	FindByTMDBID(context context.Context, tmdbID int64) (*Film, error)

	// SlugExists reports whether a slug is already taken.
	SlugExists(context context.Context, slug string) (bool, error)

	// UpdateMetadata refreshes the descriptive fields in place, keeping id
	// and slug.
	UpdateMetadata(context context.Context, f *Film) error

	List(context context.Context, params pagination.Params) ([]*Film, int, error)

	// Credits returns the film's credit edges joined with person rows.
	Credits(context context.Context, filmID string) ([]*Credit, error)

	// ReplaceCredits swaps the film's credit rows for the given set in one
	// transaction.
	ReplaceCredits(context context.Context, filmID string, rows []CreditRow) error
}
