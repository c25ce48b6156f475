// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

/*
Package tmdb is a thin client for The Movie Database REST API.

It exposes just the two lookups the importer needs and maps TMDB's failure
modes onto the application error taxonomy: a payload without a title or
name is NotFound, an unreachable or misbehaving upstream is BadGateway.
*/
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// client timeout for a single upstream call.
const requestTimeout = 15 * time.Second

// Movie is the TMDB movie payload with credits and videos appended.
type Movie struct {
	ID          int64   `json:"id"`
	IMDBID      string  `json:"imdb_id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Runtime     int     `json:"runtime"`
	VoteAverage float64 `json:"vote_average"`

	Genres []Genre `json:"genres"`

	Credits struct {
		Cast []CastMember `json:"cast"`
		Crew []CrewMember `json:"crew"`
	} `json:"credits"`

	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}

// Genre is one TMDB genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CastMember is one acting credit in a movie payload.
type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is one crew credit in a movie payload.
type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Video is one trailer/clip entry in a movie payload.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Person is the TMDB person payload.
type Person struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Biography          string `json:"biography"`
	Birthday           string `json:"birthday"`
	PlaceOfBirth       string `json:"place_of_birth"`
	ProfilePath        string `json:"profile_path"`
	KnownForDepartment string `json:"known_for_department"`
}

// TrailerURL returns the movie's first official YouTube trailer, or "".
func (m *Movie) TrailerURL() string {
	for _, video := range m.Videos.Results {
		if video.Site == "YouTube" && video.Type == "Trailer" {
			return "https://www.youtube.com/watch?v=" + video.Key
		}
	}
	return ""
}

// ProfileURL returns the person's full-size profile image URL, or "".
func (p *Person) ProfileURL() string {
	if p.ProfilePath == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/original" + p.ProfilePath
}

// Client calls the TMDB v3 API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a TMDB client. baseURL has no trailing slash.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

/*
GetMovie fetches a movie with credits and videos appended.

Description: A 404, or a 200 whose payload has no title, both mean TMDB
does not know the movie and map to a miss for the caller. Transport errors
and non-2xx statuses are upstream failures.

Parameters:
  - context: context.Context
  - tmdbID: int64

Returns:
  - *Movie: The decoded payload
  - error: miss or upstream failure as described
*/
func (client *Client) GetMovie(context context.Context, tmdbID int64) (*Movie, error) {
	path := fmt.Sprintf("/movie/%d", tmdbID)
	query := url.Values{"append_to_response": {"credits,videos"}}

	var movie Movie
	if err := client.getJSON(context, path, query, &movie); err != nil {
		return nil, err
	}

	if movie.Title == "" {
		return nil, &MissError{Resource: "movie", TMDBID: tmdbID}
	}
	return &movie, nil
}

// GetPerson fetches a person profile. A payload without a name is a miss.
func (client *Client) GetPerson(context context.Context, tmdbID int64) (*Person, error) {
	path := fmt.Sprintf("/person/%d", tmdbID)

	var person Person
	if err := client.getJSON(context, path, nil, &person); err != nil {
		return nil, err
	}

	if person.Name == "" {
		return nil, &MissError{Resource: "person", TMDBID: tmdbID}
	}
	return &person, nil
}

func (client *Client) getJSON(context context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", client.apiKey)

	endpoint := fmt.Sprintf("%s%s?%s", client.baseURL, path, query.Encode())
	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return &UpstreamError{Operation: path, Cause: err}
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return &UpstreamError{Operation: path, Cause: err}
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusNotFound:
		return &MissError{Resource: path, TMDBID: 0}
	case response.StatusCode < 200 || response.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return &UpstreamError{
			Operation: path,
			Cause:     fmt.Errorf("tmdb status %d: %s", response.StatusCode, string(body)),
		}
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return &UpstreamError{Operation: path, Cause: err}
	}
	return nil
}
