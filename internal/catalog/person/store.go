// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package person

import (
	"context"

	"github.com/trananh/movira/pkg/pagination"
)

// Repository persists people.
type Repository interface {
	Create(context context.Context, p *Person) error

	Get(context context.Context, id string) (*Person, error)

	GetBySlug(context context.Context, slug string) (*Person, error)

	// FindByTMDBID returns NotFound when no person carries the TMDB id.
	FindByTMDBID(context context.Context, tmdbID int64) (*Person, error)

	// SlugExists reports whether a slug is already taken.
	SlugExists(context context.Context, slug string) (bool, error)

	// UpdateProfile refreshes the descriptive fields in place, keeping id
	// and slug.
	UpdateProfile(context context.Context, p *Person) error

	List(context context.Context, params pagination.Params) ([]*Person, int, error)

	// Filmography returns the person's credit edges joined with film rows.
	Filmography(context context.Context, personID string) ([]*FilmCredit, error)
}
