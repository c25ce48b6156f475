// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package post

import (
	"context"

	"github.com/trananh/movira/pkg/pagination"
)

// Repository persists posts.
type Repository interface {
	Create(context context.Context, p *Post) error

	// Get returns a live (not soft-deleted) post.
	Get(context context.Context, id string) (*Post, error)

	// List returns live posts newest first, with the total for pagination
	// metadata. authorID filters to one author when non-empty.
	List(context context.Context, authorID string, params pagination.Params) ([]*Post, int, error)

	Update(context context.Context, p *Post) error

	// Delete soft-deletes the post and hard-deletes its social residue
	// (comments children-first, all likes) in one transaction.
	Delete(context context.Context, id string) error
}
