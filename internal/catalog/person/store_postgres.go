// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package person

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

var personColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.CatalogPerson.ID, schema.CatalogPerson.TMDBID, schema.CatalogPerson.Slug,
	schema.CatalogPerson.Name, schema.CatalogPerson.Biography, schema.CatalogPerson.Birthday,
	schema.CatalogPerson.PlaceOfBirth, schema.CatalogPerson.ProfileURL,
	schema.CatalogPerson.Department, schema.CatalogPerson.CreatedAt, schema.CatalogPerson.UpdatedAt,
)

func scanPerson(row interface{ Scan(...any) error }) (*Person, error) {
	p := &Person{}
	err := row.Scan(&p.ID, &p.TMDBID, &p.Slug, &p.Name, &p.Biography, &p.Birthday,
		&p.PlaceOfBirth, &p.ProfileURL, &p.Department, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, p *Person) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogPerson.Table, personColumns,
		schema.CatalogPerson.CreatedAt, schema.CatalogPerson.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.TMDBID, p.Slug, p.Name, p.Biography, p.Birthday,
		p.PlaceOfBirth, p.ProfileURL, p.Department,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_person")
}

func (repository *PostgresRepository) Get(context context.Context, id string) (*Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		personColumns, schema.CatalogPerson.Table, schema.CatalogPerson.ID,
	)

	p, err := scanPerson(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_person")
	}
	return p, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		personColumns, schema.CatalogPerson.Table, schema.CatalogPerson.Slug,
	)

	p, err := scanPerson(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_person_by_slug")
	}
	return p, nil
}

func (repository *PostgresRepository) FindByTMDBID(context context.Context, tmdbID int64) (*Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		personColumns, schema.CatalogPerson.Table, schema.CatalogPerson.TMDBID,
	)

	p, err := scanPerson(repository.db.QueryRow(context, query, tmdbID))
	if err != nil {
		return nil, dberr.Wrap(err, "find_person_by_tmdb_id")
	}
	return p, nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogPerson.Table, schema.CatalogPerson.Slug,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "person_slug_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) UpdateProfile(context context.Context, p *Person) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogPerson.Table,
		schema.CatalogPerson.Name, schema.CatalogPerson.Biography, schema.CatalogPerson.Birthday,
		schema.CatalogPerson.PlaceOfBirth, schema.CatalogPerson.ProfileURL,
		schema.CatalogPerson.Department, schema.CatalogPerson.UpdatedAt,
		schema.CatalogPerson.ID,
		schema.CatalogPerson.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.Biography, p.Birthday, p.PlaceOfBirth, p.ProfileURL, p.Department,
	).Scan(&p.UpdatedAt)

	return dberr.Wrap(err, "update_person_profile")
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]*Person, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogPerson.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_people")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`,
		personColumns, schema.CatalogPerson.Table, schema.CatalogPerson.Name,
	)

	rows, err := repository.db.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_people")
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_person")
		}
		people = append(people, p)
	}

	return people, total, nil
}

func (repository *PostgresRepository) Filmography(context context.Context, personID string) ([]*FilmCredit, error) {
	query := fmt.Sprintf(`
		SELECT f.%s, f.%s, f.%s, c.%s, c.%s
		FROM %s c
		JOIN %s f ON f.%s = c.%s
		WHERE c.%s = $1
		ORDER BY f.%s DESC NULLS LAST, c.%s ASC
	`,
		schema.CatalogFilm.ID, schema.CatalogFilm.Slug, schema.CatalogFilm.Title,
		schema.CatalogCredit.Role, schema.CatalogCredit.Department,
		schema.CatalogCredit.Table,
		schema.CatalogFilm.Table, schema.CatalogFilm.ID, schema.CatalogCredit.FilmID,
		schema.CatalogCredit.PersonID,
		schema.CatalogFilm.ReleaseDate, schema.CatalogCredit.Position,
	)

	rows, err := repository.db.Query(context, query, personID)
	if err != nil {
		return nil, dberr.Wrap(err, "person_filmography")
	}
	defer rows.Close()

	var credits []*FilmCredit
	for rows.Next() {
		credit := &FilmCredit{}
		if err := rows.Scan(&credit.FilmID, &credit.FilmSlug, &credit.FilmTitle, &credit.Role, &credit.Department); err != nil {
			return nil, dberr.Wrap(err, "scan_filmography")
		}
		credits = append(credits, credit)
	}

	return credits, nil
}
