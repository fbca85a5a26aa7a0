// Package postgres provides the PostgreSQL implementation of the menu repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/menu"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the menu.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateItem inserts a new menu item.
func (r *Repository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, category, price, recipe, image)
		VALUES ($1, $2, $3::numeric, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		item.Name,
		item.Category,
		item.Price,
		item.Recipe,
		item.Image,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create menu item: %w", err)
	}
	return nil
}

// GetItemByID retrieves a menu item by id.
func (r *Repository) GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, category, price::text, recipe, image, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`
	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.Recipe,
		&item.Image,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, menu.ErrItemNotFound
		}
		return nil, fmt.Errorf("get menu item by id: %w", err)
	}

	return &item, nil
}

// ListItems retrieves menu items, optionally filtered by category.
func (r *Repository) ListItems(ctx context.Context, filter menu.Filter) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, category, price::text, recipe, image, created_at, updated_at
		FROM menu_items
	`
	args := []interface{}{}
	if filter.Category != "" {
		query += " WHERE category = $1"
		args = append(args, filter.Category)
	}
	query += " ORDER BY category, name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.Recipe,
			&item.Image,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}

	return items, nil
}

// UpdateItem replaces the editable field set of a menu item.
func (r *Repository) UpdateItem(ctx context.Context, item *domain.MenuItem) (int64, int64, error) {
	var matched int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items WHERE id = $1`, item.ID).Scan(&matched)
	if err != nil {
		return 0, 0, fmt.Errorf("count menu item: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, category = $3, price = $4::numeric, recipe = $5, image = $6, updated_at = NOW()
		WHERE id = $1
	`,
		item.ID,
		item.Name,
		item.Category,
		item.Price,
		item.Recipe,
		item.Image,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("update menu item: %w", err)
	}

	return matched, tag.RowsAffected(), nil
}

// DeleteItem removes a menu item and returns the deleted row count.
func (r *Repository) DeleteItem(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return tag.RowsAffected(), nil
}
