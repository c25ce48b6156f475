// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package film

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trananh/movira/internal/platform/database/schema"
	"github.com/trananh/movira/internal/platform/dberr"
	"github.com/trananh/movira/pkg/pagination"
)

// PostgresRepository is the pgx-backed implementation of [Repository].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var filmColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.CatalogFilm.ID, schema.CatalogFilm.TMDBID, schema.CatalogFilm.Slug,
	schema.CatalogFilm.Title, schema.CatalogFilm.Overview, schema.CatalogFilm.ReleaseDate,
	schema.CatalogFilm.Runtime, schema.CatalogFilm.VoteAverage, schema.CatalogFilm.IMDBID,
	schema.CatalogFilm.Genres, schema.CatalogFilm.TrailerURL, schema.CatalogFilm.LikeCount,
	schema.CatalogFilm.CreatedAt, schema.CatalogFilm.UpdatedAt,
)

func scanFilm(row interface{ Scan(...any) error }) (*Film, error) {
	f := &Film{}
	err := row.Scan(&f.ID, &f.TMDBID, &f.Slug, &f.Title, &f.Overview, &f.ReleaseDate,
		&f.Runtime, &f.VoteAverage, &f.IMDBID, &f.Genres, &f.TrailerURL, &f.LikeCount,
		&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (repository *PostgresRepository) Create(context context.Context, f *Film) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogFilm.Table, filmColumns,
		schema.CatalogFilm.CreatedAt, schema.CatalogFilm.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		f.ID, f.TMDBID, f.Slug, f.Title, f.Overview, f.ReleaseDate,
		f.Runtime, f.VoteAverage, f.IMDBID, f.Genres, f.TrailerURL,
	).Scan(&f.CreatedAt, &f.UpdatedAt)

	return dberr.Wrap(err, "create_film")
}

func (repository *PostgresRepository) Get(context context.Context, id string) (*Film, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		filmColumns, schema.CatalogFilm.Table, schema.CatalogFilm.ID,
	)

	f, err := scanFilm(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_film")
	}
	return f, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Film, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		filmColumns, schema.CatalogFilm.Table, schema.CatalogFilm.Slug,
	)

	f, err := scanFilm(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_film_by_slug")
	}
	return f, nil
}

func (repository *PostgresRepository) FindByTMDBID(context context.Context, tmdbID int64) (*Film, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		filmColumns, schema.CatalogFilm.Table, schema.CatalogFilm.TMDBID,
	)

	f, err := scanFilm(repository.db.QueryRow(context, query, tmdbID))
	if err != nil {
		return nil, dberr.Wrap(err, "find_film_by_tmdb_id")
	}
	return f, nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogFilm.Table, schema.CatalogFilm.Slug,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "film_slug_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) UpdateMetadata(context context.Context, f *Film) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogFilm.Table,
		schema.CatalogFilm.Title, schema.CatalogFilm.Overview, schema.CatalogFilm.ReleaseDate,
		schema.CatalogFilm.Runtime, schema.CatalogFilm.VoteAverage, schema.CatalogFilm.IMDBID,
		schema.CatalogFilm.Genres, schema.CatalogFilm.TrailerURL, schema.CatalogFilm.UpdatedAt,
		schema.CatalogFilm.ID,
		schema.CatalogFilm.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		f.ID, f.Title, f.Overview, f.ReleaseDate, f.Runtime, f.VoteAverage,
		f.IMDBID, f.Genres, f.TrailerURL,
	).Scan(&f.UpdatedAt)

	return dberr.Wrap(err, "update_film_metadata")
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]*Film, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogFilm.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_films")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC NULLS LAST, %s ASC
		LIMIT $1 OFFSET $2
	`,
		filmColumns, schema.CatalogFilm.Table,
		schema.CatalogFilm.ReleaseDate, schema.CatalogFilm.Title,
	)

	rows, err := repository.db.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_films")
	}
	defer rows.Close()

	var films []*Film
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_film")
		}
		films = append(films, f)
	}

	return films, total, nil
}

func (repository *PostgresRepository) Credits(context context.Context, filmID string) ([]*Credit, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, c.%s, c.%s
		FROM %s c
		JOIN %s p ON p.%s = c.%s
		WHERE c.%s = $1
		ORDER BY c.%s ASC
	`,
		schema.CatalogPerson.ID, schema.CatalogPerson.Slug, schema.CatalogPerson.Name,
		schema.CatalogCredit.Role, schema.CatalogCredit.Department,
		schema.CatalogCredit.Table,
		schema.CatalogPerson.Table, schema.CatalogPerson.ID, schema.CatalogCredit.PersonID,
		schema.CatalogCredit.FilmID,
		schema.CatalogCredit.Position,
	)

	rows, err := repository.db.Query(context, query, filmID)
	if err != nil {
		return nil, dberr.Wrap(err, "film_credits")
	}
	defer rows.Close()

	var credits []*Credit
	for rows.Next() {
		credit := &Credit{}
		if err := rows.Scan(&credit.PersonID, &credit.PersonSlug, &credit.PersonName, &credit.Role, &credit.Department); err != nil {
			return nil, dberr.Wrap(err, "scan_film_credit")
		}
		credits = append(credits, credit)
	}

	return credits, nil
}

/*
ReplaceCredits swaps the film's credit rows for the given set.

Description: Delete-then-insert in one transaction. Re-importing a film
replaces stale roles instead of accumulating them, and the junction
table's unique constraint backstops any duplicate the caller missed.

Parameters:
  - context: context.Context
  - filmID: string
  - rows: []CreditRow

Returns:
  - error: Execution errors, rolled back on failure
*/
func (repository *PostgresRepository) ReplaceCredits(context context.Context, filmID string, rows []CreditRow) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_replace_credits")
	}
	defer func() { _ = tx.Rollback(context) }()

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogCredit.Table, schema.CatalogCredit.FilmID,
	)
	if _, err := tx.Exec(context, deleteQuery, filmID); err != nil {
		return dberr.Wrap(err, "delete_film_credits")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`,
		schema.CatalogCredit.Table,
		schema.CatalogCredit.FilmID, schema.CatalogCredit.PersonID,
		schema.CatalogCredit.Role, schema.CatalogCredit.Department,
		schema.CatalogCredit.Position, schema.CatalogCredit.CreatedAt,
	)

	for _, row := range rows {
		if _, err := tx.Exec(context, insertQuery, filmID, row.PersonID, row.Role, row.Department, row.Position); err != nil {
			return dberr.Wrap(err, "insert_film_credit")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_replace_credits")
	}

	return nil
}
