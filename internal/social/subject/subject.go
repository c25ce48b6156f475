/*
Package subject resolves the polymorphic targets of social interactions.

Comments and likes can attach to media posts, films, or other comments.
This package gives the social services one way to answer "does this subject
exist, and who owns it" without importing every content domain.
*/
package subject

import "context"

// Kind discriminates the table a subject lives in.
type Kind string

const (
	KindPost    Kind = "post"
	KindFilm    Kind = "film"
	KindComment Kind = "comment"
)

// Valid reports whether k names a known subject kind.
func (k Kind) Valid() bool {
	switch k {
	case KindPost, KindFilm, KindComment:
		return true
	}
	return false
}

// Subject is the resolved identity of an interaction target.
type Subject struct {
	ID   string
	Kind Kind

	// OwnerID is the user who owns the subject, used for notifications.
	// Empty for subjects without a single owner (films).
	OwnerID string
}

// Resolver looks up interaction targets by kind and ID.
type Resolver interface {
	// Resolve returns the subject or a NotFound error.
	Resolve(context context.Context, kind Kind, id string) (*Subject, error)
}
