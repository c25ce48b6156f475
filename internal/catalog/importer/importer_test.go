// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package importer_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananh/movira/internal/catalog/film"
	"github.com/trananh/movira/internal/catalog/importer"
	"github.com/trananh/movira/internal/catalog/person"
	"github.com/trananh/movira/internal/catalog/tmdb"
	"github.com/trananh/movira/internal/platform/apperr"
)

type fakeFilmStore struct {
	films   map[int64]*film.Film
	credits map[string][]film.CreditRow
}

func newFakeFilmStore() *fakeFilmStore {
	return &fakeFilmStore{
		films:   map[int64]*film.Film{},
		credits: map[string][]film.CreditRow{},
	}
}

func (s *fakeFilmStore) FindByTMDBID(_ context.Context, tmdbID int64) (*film.Film, error) {
	f, ok := s.films[tmdbID]
	if !ok {
		return nil, apperr.NotFound("Film")
	}
	return f, nil
}

func (s *fakeFilmStore) Create(_ context.Context, f *film.Film) error {
	s.films[f.TMDBID] = f
	return nil
}

func (s *fakeFilmStore) UpdateMetadata(_ context.Context, f *film.Film) error {
	s.films[f.TMDBID] = f
	return nil
}

func (s *fakeFilmStore) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, f := range s.films {
		if f.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFilmStore) ReplaceCredits(_ context.Context, filmID string, rows []film.CreditRow) error {
	s.credits[filmID] = rows
	return nil
}

type fakePersonStore struct {
	people map[int64]*person.Person
}

func newFakePersonStore() *fakePersonStore {
	return &fakePersonStore{people: map[int64]*person.Person{}}
}

func (s *fakePersonStore) FindByTMDBID(_ context.Context, tmdbID int64) (*person.Person, error) {
	p, ok := s.people[tmdbID]
	if !ok {
		return nil, apperr.NotFound("Person")
	}
	return p, nil
}

func (s *fakePersonStore) Create(_ context.Context, p *person.Person) error {
	s.people[p.TMDBID] = p
	return nil
}

func (s *fakePersonStore) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range s.people {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// fakeProvider serves canned payloads and can fail per person.
type fakeProvider struct {
	movies        map[int64]*tmdb.Movie
	people        map[int64]*tmdb.Person
	failingPeople map[int64]error
	down          bool

	personFetches int
}

func (p *fakeProvider) GetMovie(_ context.Context, tmdbID int64) (*tmdb.Movie, error) {
	if p.down {
		return nil, &tmdb.UpstreamError{Operation: "movie", Cause: errors.New("connection refused")}
	}
	movie, ok := p.movies[tmdbID]
	if !ok {
		return nil, &tmdb.MissError{Resource: "movie", TMDBID: tmdbID}
	}
	return movie, nil
}

func (p *fakeProvider) GetPerson(_ context.Context, tmdbID int64) (*tmdb.Person, error) {
	p.personFetches++
	if err, ok := p.failingPeople[tmdbID]; ok {
		return nil, err
	}
	profile, ok := p.people[tmdbID]
	if !ok {
		return nil, &tmdb.MissError{Resource: "person", TMDBID: tmdbID}
	}
	return profile, nil
}

func heatMovie() *tmdb.Movie {
	movie := &tmdb.Movie{
		ID:          949,
		IMDBID:      "tt0113277",
		Title:       "Heat",
		Overview:    "A major crime squad lieutenant tracks a crew of thieves.",
		ReleaseDate: "1995-12-15",
		Runtime:     170,
		VoteAverage: 7.9,
		Genres:      []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 80, Name: "Crime"}},
	}
	movie.Credits.Cast = []tmdb.CastMember{
		{ID: 1158, Name: "Al Pacino", Character: "Vincent Hanna", Order: 0},
		{ID: 380, Name: "Robert De Niro", Character: "Neil McCauley", Order: 1},
	}
	movie.Credits.Crew = []tmdb.CrewMember{
		{ID: 638, Name: "Michael Mann", Job: "Director", Department: "Directing"},
		{ID: 638, Name: "Michael Mann", Job: "Screenplay", Department: "Writing"},
		// Duplicate entry, as TMDB payloads sometimes carry.
		{ID: 638, Name: "Michael Mann", Job: "Director", Department: "Directing"},
	}
	return movie
}

func personProfiles() map[int64]*tmdb.Person {
	return map[int64]*tmdb.Person{
		1158: {ID: 1158, Name: "Al Pacino", KnownForDepartment: "Acting"},
		380:  {ID: 380, Name: "Robert De Niro", KnownForDepartment: "Acting"},
		638:  {ID: 638, Name: "Michael Mann", KnownForDepartment: "Directing"},
	}
}

func newImporter(films *fakeFilmStore, people *fakePersonStore, provider *fakeProvider) *importer.Service {
	return importer.NewService(films, people, provider, slog.Default())
}

/*
TestImportFilm_CreatesGraph imports a film and verifies the film row, the
people, and the deduplicated credit edges.
*/
func TestImportFilm_CreatesGraph(t *testing.T) {
	films := newFakeFilmStore()
	people := newFakePersonStore()
	provider := &fakeProvider{
		movies: map[int64]*tmdb.Movie{949: heatMovie()},
		people: personProfiles(),
	}
	service := newImporter(films, people, provider)

	result, err := service.ImportFilm(context.Background(), 949)

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "heat", result.Slug)
	assert.Empty(t, result.MissingPeople)

	// Two cast entries plus two distinct crew roles; the duplicate director
	// entry collapses.
	assert.Equal(t, 4, result.CreditCount)
	assert.Len(t, films.credits[result.FilmID], 4)
	assert.Len(t, people.people, 3)
}

/*
TestImportFilm_Idempotent runs the same import twice and verifies nothing
multiplies.
*/
func TestImportFilm_Idempotent(t *testing.T) {
	films := newFakeFilmStore()
	people := newFakePersonStore()
	provider := &fakeProvider{
		movies: map[int64]*tmdb.Movie{949: heatMovie()},
		people: personProfiles(),
	}
	service := newImporter(films, people, provider)

	first, err := service.ImportFilm(context.Background(), 949)
	require.NoError(t, err)
	second, err := service.ImportFilm(context.Background(), 949)
	require.NoError(t, err)

	assert.Equal(t, first.FilmID, second.FilmID)
	assert.Equal(t, first.Slug, second.Slug)
	assert.False(t, second.Created)
	assert.Equal(t, first.CreditCount, second.CreditCount)
	assert.Len(t, people.people, 3)

	// Known people are resolved from the store, not refetched.
	assert.Equal(t, 3, provider.personFetches)
}

/*
TestImportFilm_RefreshKeepsSlug verifies a retitled movie keeps its slug
and id on re-import.
*/
func TestImportFilm_RefreshKeepsSlug(t *testing.T) {
	films := newFakeFilmStore()
	people := newFakePersonStore()
	movie := heatMovie()
	provider := &fakeProvider{
		movies: map[int64]*tmdb.Movie{949: movie},
		people: personProfiles(),
	}
	service := newImporter(films, people, provider)

	first, err := service.ImportFilm(context.Background(), 949)
	require.NoError(t, err)

	movie.Title = "Heat: Definitive Edition"
	second, err := service.ImportFilm(context.Background(), 949)
	require.NoError(t, err)

	assert.Equal(t, first.FilmID, second.FilmID)
	assert.Equal(t, "heat", second.Slug)
	assert.Equal(t, "Heat: Definitive Edition", second.Title)
}

/*
TestImportFilm_MissingPersonIsolated verifies one unfetchable person does
not fail the import and is reported.
*/
func TestImportFilm_MissingPersonIsolated(t *testing.T) {
	films := newFakeFilmStore()
	people := newFakePersonStore()
	provider := &fakeProvider{
		movies:        map[int64]*tmdb.Movie{949: heatMovie()},
		people:        personProfiles(),
		failingPeople: map[int64]error{380: &tmdb.UpstreamError{Operation: "person", Cause: errors.New("timeout")}},
	}
	service := newImporter(films, people, provider)

	result, err := service.ImportFilm(context.Background(), 949)

	require.NoError(t, err)
	assert.Equal(t, []int64{380}, result.MissingPeople)
	// De Niro's credit is dropped; Pacino and both Mann roles survive.
	assert.Equal(t, 3, result.CreditCount)
	assert.Len(t, people.people, 2)
}

/*
TestImportFilm_UnknownMovie writes nothing for a TMDB id the provider does
not know.
*/
func TestImportFilm_UnknownMovie(t *testing.T) {
	films := newFakeFilmStore()
	people := newFakePersonStore()
	provider := &fakeProvider{movies: map[int64]*tmdb.Movie{}}
	service := newImporter(films, people, provider)

	_, err := service.ImportFilm(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Empty(t, films.films)
}

/*
TestImportFilm_ProviderDown maps an unreachable provider to an upstream
error and writes nothing.
*/
func TestImportFilm_ProviderDown(t *testing.T) {
	films := newFakeFilmStore()
	people := newFakePersonStore()
	provider := &fakeProvider{down: true}
	service := newImporter(films, people, provider)

	_, err := service.ImportFilm(context.Background(), 949)

	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_ERROR", apperr.As(err).Code)
	assert.Empty(t, films.films)
	assert.Empty(t, people.people)
}

/*
TestImportFilm_SlugCollision gives the second film with the same title a
suffixed slug.
*/
func TestImportFilm_SlugCollision(t *testing.T) {
	films := newFakeFilmStore()
	people := newFakePersonStore()

	remake := &tmdb.Movie{ID: 617126, Title: "Nosferatu", ReleaseDate: "2024-12-25"}
	original := &tmdb.Movie{ID: 653, Title: "Nosferatu", ReleaseDate: "1922-03-04"}
	provider := &fakeProvider{
		movies: map[int64]*tmdb.Movie{617126: remake, 653: original},
		people: map[int64]*tmdb.Person{},
	}
	service := newImporter(films, people, provider)

	first, err := service.ImportFilm(context.Background(), 617126)
	require.NoError(t, err)
	second, err := service.ImportFilm(context.Background(), 653)
	require.NoError(t, err)

	assert.Equal(t, "nosferatu", first.Slug)
	assert.Equal(t, "nosferatu-1", second.Slug)
}
