// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

/*
Package person holds the celebrity side of the reference graph.

People are created by the importer from TMDB profiles and addressed
publicly by slug. A person's filmography is read from the same credit rows
the film side writes, so both directions of the graph always agree.
*/
package person

import "time"

// Person is one celebrity profile.
type Person struct {
	ID           string     `json:"id"`
	TMDBID       int64      `json:"tmdb_id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Biography    string     `json:"biography,omitempty"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	PlaceOfBirth string     `json:"place_of_birth,omitempty"`
	ProfileURL   string     `json:"profile_url,omitempty"`
	Department   string     `json:"department,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Filmography is populated on detail reads.
	Filmography []*FilmCredit `json:"filmography,omitempty"`
}

// FilmCredit is one edge of the person's filmography, joined with the film
// it points at.
type FilmCredit struct {
	FilmID     string `json:"film_id"`
	FilmSlug   string `json:"film_slug"`
	FilmTitle  string `json:"film_title"`
	Role       string `json:"role"`
	Department string `json:"department"`
}
