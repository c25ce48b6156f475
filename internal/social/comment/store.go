// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package comment

import "context"

// Repository defines the data access contract for comments.
type Repository interface {
	// ListBySubject returns every comment on a subject, ordered by
	// creation time ascending. The flat result feeds [BuildTree].
	ListBySubject(context context.Context, subjectID string) ([]*Comment, error)

	// Get returns a single comment by ID.
	Get(context context.Context, id string) (*Comment, error)

	// Create persists a new comment.
	Create(context context.Context, c *Comment) error

	// UpdateBody replaces the body of an existing comment.
	UpdateBody(context context.Context, id, body string) (*Comment, error)

	// CountReplies returns the number of direct replies to a comment.
	CountReplies(context context.Context, id string) (int, error)

	// Delete removes a single comment. Deleting a comment that still has
	// replies is rejected by the store's referential constraint.
	Delete(context context.Context, id string) error

	// DeleteSubtree removes a comment and all of its descendants,
	// children before parents, in one transaction. It returns the number
	// of comments removed.
	DeleteSubtree(context context.Context, id string) (int, error)
}
