// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

/*
Package post implements the community feed items that comments and likes
attach to.

A post is either an image post or a short article. Its likecount column is
a denormalized display cache maintained by the like service.
*/
package post

import "time"

// Kind discriminates the two feed item shapes.
type Kind string

const (
	KindImage   Kind = "image"
	KindArticle Kind = "article"
)

// Valid reports whether k names a known post kind.
func (k Kind) Valid() bool {
	return k == KindImage || k == KindArticle
}

// Post is one feed item.
type Post struct {
	ID        string     `json:"id"`
	AuthorID  string     `json:"author_id"`
	Kind      Kind       `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	ImageURL  string     `json:"image_url,omitempty"`
	LikeCount int64      `json:"like_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Field names for validation errors.
const (
	FieldKind     = "kind"
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldImageURL = "image_url"
)
