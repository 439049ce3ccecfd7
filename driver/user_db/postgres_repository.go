package user_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"quill/domain"
	"quill/port/user_repository_port"
)

const uniqueViolationCode = "23505"

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    password_hash TEXT NOT NULL DEFAULT '',
    provider      TEXT NOT NULL DEFAULT '',
    avatar        TEXT NOT NULL DEFAULT '',
    bio           TEXT NOT NULL DEFAULT '',
    collection_id TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_login    TIMESTAMPTZ,
    login_count   INTEGER NOT NULL DEFAULT 0
)`

const userColumns = `id, email, name, password_hash, provider, avatar, bio, collection_id, created_at, last_login, login_count`

// PostgresUserRepository persists users in postgres. Selected when
// DATABASE_URL is set.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

var _ user_repository_port.UserRepositoryPort = (*PostgresUserRepository)(nil)

func NewPostgresUserRepository(ctx context.Context, databaseURL string) (*PostgresUserRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if _, err := pool.Exec(ctx, createUsersTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure users table: %w", err)
	}

	return &PostgresUserRepository{pool: pool}, nil
}

func (r *PostgresUserRepository) Close() {
	r.pool.Close()
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, provider, avatar, bio, collection_id, created_at, login_count)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Provider,
		user.Avatar, user.Bio, user.CollectionID, createdAt, user.LoginCount)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = lower($1)`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) SetCollectionID(ctx context.Context, email string, collectionID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET collection_id = $2 WHERE email = lower($1)`, email, collectionID)
	if err != nil {
		return fmt.Errorf("failed to set collection id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) RecordLogin(ctx context.Context, email string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = now(), login_count = login_count + 1 WHERE email = lower($1)`, email)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) ListCollections(ctx context.Context) ([]domain.UserCollection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT email, collection_id, name FROM users WHERE collection_id <> '' ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var collections []domain.UserCollection
	for rows.Next() {
		var collection domain.UserCollection
		if err := rows.Scan(&collection.Email, &collection.CollectionID, &collection.Name); err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		collections = append(collections, collection)
	}
	return collections, rows.Err()
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Provider, &user.Avatar, &user.Bio, &user.CollectionID,
		&user.CreatedAt, &user.LastLogin, &user.LoginCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return user, nil
}
