// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananh/movira/internal/catalog/tmdb"
)

/*
TestClient_GetMovie verifies the request shape and payload decoding.
*/
func TestClient_GetMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/movie/949", request.URL.Path)
		assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))
		assert.Equal(t, "credits,videos", request.URL.Query().Get("append_to_response"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"id": 949,
			"title": "Heat",
			"release_date": "1995-12-15",
			"runtime": 170,
			"genres": [{"id": 28, "name": "Action"}],
			"credits": {
				"cast": [{"id": 1158, "name": "Al Pacino", "character": "Vincent Hanna", "order": 0}],
				"crew": [{"id": 638, "name": "Michael Mann", "job": "Director", "department": "Directing"}]
			},
			"videos": {
				"results": [
					{"key": "abc", "site": "Vimeo", "type": "Trailer"},
					{"key": "0xbkviEzU9s", "site": "YouTube", "type": "Trailer"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := tmdb.NewClient(server.URL, "test-key")
	movie, err := client.GetMovie(context.Background(), 949)

	require.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)
	assert.Equal(t, 170, movie.Runtime)
	assert.Len(t, movie.Credits.Cast, 1)
	assert.Len(t, movie.Credits.Crew, 1)

	// First YouTube trailer wins, other sites are skipped.
	assert.Equal(t, "https://www.youtube.com/watch?v=0xbkviEzU9s", movie.TrailerURL())
}

/*
TestClient_GetMovie_Miss verifies that a 404 and an empty payload both
surface as a miss rather than an upstream failure.
*/
func TestClient_GetMovie_Miss(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"not_found", http.StatusNotFound, `{"status_message": "not found"}`},
		{"empty_title", http.StatusOK, `{"id": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(tt.status)
				_, _ = writer.Write([]byte(tt.payload))
			}))
			defer server.Close()

			client := tmdb.NewClient(server.URL, "test-key")
			movie, err := client.GetMovie(context.Background(), 404404)

			require.Error(t, err)
			assert.Nil(t, movie)
			assert.True(t, tmdb.IsMiss(err))
		})
	}
}

/*
TestClient_GetMovie_UpstreamFailure verifies that server errors are not
conflated with misses.
*/
func TestClient_GetMovie_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
		_, _ = writer.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := tmdb.NewClient(server.URL, "test-key")
	_, err := client.GetMovie(context.Background(), 949)

	require.Error(t, err)
	assert.False(t, tmdb.IsMiss(err))
	assert.Contains(t, err.Error(), "500")
}

/*
TestClient_GetPerson verifies person decoding and the profile URL helper.
*/
func TestClient_GetPerson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/person/1158", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"id": 1158,
			"name": "Al Pacino",
			"known_for_department": "Acting",
			"profile_path": "/2dGBb1fOcNdZjtQToVPFxXjm4ke.jpg"
		}`))
	}))
	defer server.Close()

	client := tmdb.NewClient(server.URL, "test-key")
	person, err := client.GetPerson(context.Background(), 1158)

	require.NoError(t, err)
	assert.Equal(t, "Al Pacino", person.Name)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/2dGBb1fOcNdZjtQToVPFxXjm4ke.jpg", person.ProfileURL())
}

/*
TestClient_GetPerson_EmptyName verifies that a nameless payload is a miss.
*/
func TestClient_GetPerson_EmptyName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"id": 99}`))
	}))
	defer server.Close()

	client := tmdb.NewClient(server.URL, "test-key")
	_, err := client.GetPerson(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, tmdb.IsMiss(err))
}
