// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

/*
Package importer builds the film/person reference graph from TMDB.

One import touches one film: its metadata is upserted by TMDB id, every
credited person is resolved or created, and the film's credit edges are
replaced with the deduplicated set from the payload. Running the same
import twice leaves the graph unchanged.
*/
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/trananh/movira/internal/catalog/film"
	"github.com/trananh/movira/internal/catalog/person"
	"github.com/trananh/movira/internal/catalog/tmdb"
	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/pkg/slug"
	"github.com/trananh/movira/pkg/uuidv7"
)

// MetadataProvider is the upstream the importer reads from.
type MetadataProvider interface {
	GetMovie(context context.Context, tmdbID int64) (*tmdb.Movie, error)
	GetPerson(context context.Context, tmdbID int64) (*tmdb.Person, error)
}

// FilmStore is the film persistence the importer writes through.
type FilmStore interface {
	FindByTMDBID(context context.Context, tmdbID int64) (*film.Film, error)
	Create(context context.Context, f *film.Film) error
	UpdateMetadata(context context.Context, f *film.Film) error
	SlugExists(context context.Context, slug string) (bool, error)
	ReplaceCredits(context context.Context, filmID string, rows []film.CreditRow) error
}

// PersonStore is the person persistence the importer writes through.
type PersonStore interface {
	FindByTMDBID(context context.Context, tmdbID int64) (*person.Person, error)
	Create(context context.Context, p *person.Person) error
	SlugExists(context context.Context, slug string) (bool, error)
}

// Result summarizes one film import.
type Result struct {
	FilmID        string  `json:"film_id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Created       bool    `json:"created"`
	CreditCount   int     `json:"credit_count"`
	MissingPeople []int64 `json:"missing_people,omitempty"`
}

// Service orchestrates film imports.
type Service struct {
	films    FilmStore
	people   PersonStore
	provider MetadataProvider
	logger   *slog.Logger
}

func NewService(films FilmStore, people PersonStore, provider MetadataProvider, logger *slog.Logger) *Service {
	return &Service{
		films:    films,
		people:   people,
		provider: provider,
		logger:   logger,
	}
}

// creditKey identifies one deduplicated credit edge within a payload.
type creditKey struct {
	personTMDBID int64
	role         string
	department   string
}

/*
ImportFilm imports or refreshes one film and its credit graph.

Description: Fetches the movie with credits and videos appended, upserts
the film by TMDB id (a refresh keeps the existing id and slug), resolves
every credited person sequentially, and replaces the film's credit rows
with the deduplicated set. A person whose profile cannot be fetched is
recorded in MissingPeople and skipped; their absence never fails the
import. An unreachable provider or an unknown movie writes nothing.

Parameters:
  - context: context.Context
  - tmdbID: int64

Returns:
  - *Result: Summary of what was written
  - error: BadGateway for provider failures, NotFound for unknown movies
*/
func (service *Service) ImportFilm(context context.Context, tmdbID int64) (*Result, error) {
	movie, err := service.provider.GetMovie(context, tmdbID)
	if err != nil {
		if tmdb.IsMiss(err) {
			return nil, apperr.NotFound("Film")
		}
		return nil, apperr.BadGateway("Metadata provider unavailable", err)
	}

	target, created, err := service.upsertFilm(context, movie)
	if err != nil {
		return nil, err
	}

	rows, missing, err := service.resolveCredits(context, movie)
	if err != nil {
		return nil, err
	}

	if err := service.films.ReplaceCredits(context, target.ID, rows); err != nil {
		return nil, err
	}

	service.logger.Info("film_imported",
		slog.Int64("tmdb_id", tmdbID),
		slog.String("film_id", target.ID),
		slog.Bool("created", created),
		slog.Int("credits", len(rows)),
		slog.Int("missing_people", len(missing)),
	)

	return &Result{
		FilmID:        target.ID,
		Title:         target.Title,
		Slug:          target.Slug,
		Created:       created,
		CreditCount:   len(rows),
		MissingPeople: missing,
	}, nil
}

// upsertFilm inserts a new film or refreshes an existing one in place.
func (service *Service) upsertFilm(context context.Context, movie *tmdb.Movie) (*film.Film, bool, error) {
	genres := make([]string, 0, len(movie.Genres))
	for _, genre := range movie.Genres {
		genres = append(genres, genre.Name)
	}

	existing, err := service.films.FindByTMDBID(context, movie.ID)
	switch {
	case err == nil:
		// Refresh keeps id and slug so bookmarks and like counts survive.
		existing.Title = movie.Title
		existing.Overview = movie.Overview
		existing.ReleaseDate = parseDate(movie.ReleaseDate)
		existing.Runtime = movie.Runtime
		existing.VoteAverage = movie.VoteAverage
		existing.IMDBID = movie.IMDBID
		existing.Genres = genres
		existing.TrailerURL = movie.TrailerURL()
		if err := service.films.UpdateMetadata(context, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil

	case apperr.As(err) != nil && apperr.As(err).Code == "NOT_FOUND":
		fresh := &film.Film{
			ID:          uuidv7.New(),
			TMDBID:      movie.ID,
			Slug:        service.uniqueFilmSlug(context, movie.Title),
			Title:       movie.Title,
			Overview:    movie.Overview,
			ReleaseDate: parseDate(movie.ReleaseDate),
			Runtime:     movie.Runtime,
			VoteAverage: movie.VoteAverage,
			IMDBID:      movie.IMDBID,
			Genres:      genres,
			TrailerURL:  movie.TrailerURL(),
		}
		if err := service.films.Create(context, fresh); err != nil {
			return nil, false, err
		}
		return fresh, true, nil

	default:
		return nil, false, err
	}
}

// resolveCredits turns the payload's cast and crew into deduplicated credit
// rows, creating people on first sight.
func (service *Service) resolveCredits(context context.Context, movie *tmdb.Movie) ([]film.CreditRow, []int64, error) {
	seen := map[creditKey]bool{}
	personIDs := map[int64]string{}
	missed := map[int64]bool{}

	var rows []film.CreditRow
	var missing []int64

	appendCredit := func(personTMDBID int64, personName, role, department string, position int) error {
		key := creditKey{personTMDBID: personTMDBID, role: role, department: department}
		if seen[key] || missed[personTMDBID] {
			return nil
		}

		personID, ok := personIDs[personTMDBID]
		if !ok {
			resolved, err := service.resolvePerson(context, personTMDBID, personName)
			if err != nil {
				return err
			}
			if resolved == "" {
				missed[personTMDBID] = true
				missing = append(missing, personTMDBID)
				return nil
			}
			personID = resolved
			personIDs[personTMDBID] = personID
		}

		seen[key] = true
		rows = append(rows, film.CreditRow{
			PersonID:   personID,
			Role:       role,
			Department: department,
			Position:   position,
		})
		return nil
	}

	for _, cast := range movie.Credits.Cast {
		if err := appendCredit(cast.ID, cast.Name, cast.Character, "Acting", cast.Order); err != nil {
			return nil, nil, err
		}
	}
	for index, crew := range movie.Credits.Crew {
		if err := appendCredit(crew.ID, crew.Name, crew.Job, crew.Department, len(movie.Credits.Cast)+index); err != nil {
			return nil, nil, err
		}
	}

	return rows, missing, nil
}

// resolvePerson finds or creates a person by TMDB id. Returns "" when the
// profile cannot be fetched; the caller records the miss and moves on.
func (service *Service) resolvePerson(context context.Context, tmdbID int64, name string) (string, error) {
	existing, err := service.people.FindByTMDBID(context, tmdbID)
	if err == nil {
		return existing.ID, nil
	}
	if ae := apperr.As(err); ae == nil || ae.Code != "NOT_FOUND" {
		return "", err
	}

	profile, err := service.provider.GetPerson(context, tmdbID)
	if err != nil {
		// A person-level failure is isolated: log it, report the miss.
		service.logger.Warn("import_person_failed",
			slog.Int64("tmdb_id", tmdbID),
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return "", nil
	}

	fresh := &person.Person{
		ID:           uuidv7.New(),
		TMDBID:       profile.ID,
		Slug:         service.uniquePersonSlug(context, profile.Name),
		Name:         profile.Name,
		Biography:    profile.Biography,
		Birthday:     parseDate(profile.Birthday),
		PlaceOfBirth: profile.PlaceOfBirth,
		ProfileURL:   profile.ProfileURL(),
		Department:   profile.KnownForDepartment,
	}
	if err := service.people.Create(context, fresh); err != nil {
		return "", err
	}
	return fresh.ID, nil
}

func (service *Service) uniqueFilmSlug(context context.Context, title string) string {
	return slug.Unique(title, func(candidate string) bool {
		exists, err := service.films.SlugExists(context, candidate)
		return err == nil && exists
	})
}

func (service *Service) uniquePersonSlug(context context.Context, name string) string {
	return slug.Unique(name, func(candidate string) bool {
		exists, err := service.people.SlugExists(context, candidate)
		return err == nil && exists
	})
}

// parseDate parses TMDB's YYYY-MM-DD date strings. Empty or malformed
// values become nil.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
