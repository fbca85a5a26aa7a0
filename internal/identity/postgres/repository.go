// Package postgres provides the PostgreSQL implementation of the identity repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/identity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Repository implements the identity.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user. The unique index on email is the
// authority on duplicates; a violation maps to identity.ErrEmailExists.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.Role,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return identity.ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// ListUsers retrieves all users ordered by creation time.
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at, updated_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.Role,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// UpdateUserRole sets a user's role and returns matched/modified counts.
// Matched and modified differ when the user already holds the role.
func (r *Repository) UpdateUserRole(ctx context.Context, id string, role domain.Role) (int64, int64, error) {
	var matched int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE id = $1`, id).Scan(&matched)
	if err != nil {
		return 0, 0, fmt.Errorf("count user: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE users SET role = $2, updated_at = NOW()
		WHERE id = $1 AND role <> $2
	`, id, role)
	if err != nil {
		return 0, 0, fmt.Errorf("update user role: %w", err)
	}

	return matched, tag.RowsAffected(), nil
}

// DeleteUser removes a user by id and returns the deleted row count.
func (r *Repository) DeleteUser(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected(), nil
}
