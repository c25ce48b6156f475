// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

/*
Package film holds the film side of the reference graph.

Films are created and refreshed by the importer from TMDB payloads and
addressed publicly by slug. Credits live in a single junction table shared
with the person side, so a film's cast and a person's filmography can never
disagree.
*/
package film

import "time"

// Film is one catalogue entry.
type Film struct {
	ID          string     `json:"id"`
	TMDBID      int64      `json:"tmdb_id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Runtime     int        `json:"runtime,omitempty"`
	VoteAverage float64    `json:"vote_average,omitempty"`
	IMDBID      string     `json:"imdb_id,omitempty"`
	Genres      []string   `json:"genres,omitempty"`
	TrailerURL  string     `json:"trailer_url,omitempty"`
	LikeCount   int64      `json:"like_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Credits is populated on detail reads.
	Credits []*Credit `json:"credits,omitempty"`
}

// Credit is one edge of the film's credit list, joined with the person it
// points at.
type Credit struct {
	PersonID   string `json:"person_id"`
	PersonSlug string `json:"person_slug"`
	PersonName string `json:"person_name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// CreditRow is the junction row shape written by the importer.
type CreditRow struct {
	PersonID   string
	Role       string
	Department string
	Position   int
}
