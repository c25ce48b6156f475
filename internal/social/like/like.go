// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

/*
Package like implements the like relation and its denormalized counters.

Each likeable row (post, film, comment) carries a likecount column that is
kept in step with the social.like relation table. The relation's composite
primary key (subjectid, userid) makes creation naturally idempotent.
*/
package like

import "time"

// Like is one user-likes-subject relation row.
type Like struct {
	SubjectID string    `json:"subject_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Count is the state of a subject's counter after a like operation.
type Count struct {
	SubjectID string `json:"subject_id"`
	Likes     int64  `json:"likes"`
	Liked     bool   `json:"liked"`
}

// Field names for validation errors.
const (
	FieldSubjectID   = "subject_id"
	FieldSubjectType = "subject_type"
)
