/*
Package comment implements threaded discussions on likeable subjects.

A comment always belongs to exactly one subject (a media post or a film) and
may reply to another comment on the same subject. Threads are stored flat,
one row per comment with an optional parent reference, and assembled into a
reply tree at read time.
*/
package comment

import "time"

// Comment represents a single comment or reply.
//
// Replies is never persisted. It is populated by [BuildTree] when a flat
// result set is assembled into a thread for display.
type Comment struct {
	ID        string     `json:"id"`
	SubjectID string     `json:"subject_id"`
	AuthorID  string     `json:"author_id"`
	ParentID  *string    `json:"parent_id,omitempty"`
	Body      string     `json:"body"`
	LikeCount int        `json:"like_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Replies   []*Comment `json:"replies"`
}

// Global field names for validation
const (
	FieldBody     = "body"
	FieldParentID = "parent_id"
	FieldSubject  = "subject_id"
)
