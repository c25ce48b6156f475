// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trananh/movira/internal/platform/database/schema"
	"github.com/trananh/movira/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements UserRepository using pgx.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new Postgres-backed UserRepository.
func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var userColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.Email,
	schema.UsersAccount.PasswordHash, schema.UsersAccount.DisplayName,
	schema.UsersAccount.AvatarURL, schema.UsersAccount.Role,
	schema.UsersAccount.CreatedAt, schema.UsersAccount.UpdatedAt,
)

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.DisplayName, &user.AvatarURL, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresUserRepository) findBy(context context.Context, column, value string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		userColumns, schema.UsersAccount.Table, column, schema.UsersAccount.DeletedAt,
	)

	user, err := scanUser(repository.db.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.ID, id)
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.Email, email)
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.Username, username)
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.UsersAccount.Table, userColumns,
		schema.UsersAccount.CreatedAt, schema.UsersAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.DisplayName, user.AvatarURL, user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.DisplayName, schema.UsersAccount.AvatarURL,
		schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID, schema.UsersAccount.DeletedAt,
		schema.UsersAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, user.ID, user.DisplayName, user.AvatarURL).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID, schema.UsersAccount.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_user_password")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Session Repository

// PostgresSessionRepository implements SessionRepository using pgx.
type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new Postgres-backed SessionRepository.
func NewSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

var sessionColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
	schema.UsersSession.ID, schema.UsersSession.UserID, schema.UsersSession.TokenHash,
	schema.UsersSession.UserAgent, schema.UsersSession.IPAddress,
	schema.UsersSession.ExpiresAt, schema.UsersSession.IsRevoked, schema.UsersSession.CreatedAt,
)

func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING %s
	`,
		schema.UsersSession.Table, sessionColumns, schema.UsersSession.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		session.ID, session.UserID, session.TokenHash,
		session.UserAgent, session.IPAddress, session.ExpiresAt,
	).Scan(&session.CreatedAt)

	return dberr.Wrap(err, "create_session")
}

func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > NOW()
	`,
		sessionColumns, schema.UsersSession.Table,
		schema.UsersSession.TokenHash, schema.UsersSession.IsRevoked,
		schema.UsersSession.ExpiresAt,
	)

	session := &Session{}
	err := repository.db.QueryRow(context, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.UserAgent, &session.IPAddress,
		&session.ExpiresAt, &session.IsRevoked, &session.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_session")
	}

	return session, nil
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.UsersSession.Table, schema.UsersSession.IsRevoked, schema.UsersSession.ID,
	)

	if _, err := repository.db.Exec(context, query, sessionID); err != nil {
		return dberr.Wrap(err, "revoke_session")
	}
	return nil
}

func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1 AND %s = FALSE`,
		schema.UsersSession.Table, schema.UsersSession.IsRevoked,
		schema.UsersSession.UserID, schema.UsersSession.IsRevoked,
	)

	if _, err := repository.db.Exec(context, query, userID); err != nil {
		return dberr.Wrap(err, "revoke_all_sessions")
	}
	return nil
}
