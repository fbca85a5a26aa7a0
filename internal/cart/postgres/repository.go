// Package postgres provides the PostgreSQL implementation of the cart repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/cart"
	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the cart.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateItem inserts a new cart item.
func (r *Repository) CreateItem(ctx context.Context, item *domain.CartItem) error {
	query := `
		INSERT INTO cart_items (email, menu_item_id, name, image, price)
		VALUES ($1, $2, $3, $4, $5::numeric)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		item.Email,
		item.MenuItemID,
		item.Name,
		item.Image,
		item.Price,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return fmt.Errorf("create cart item: %w", err)
	}
	return nil
}

// GetItemByID retrieves a cart item by id.
func (r *Repository) GetItemByID(ctx context.Context, id string) (*domain.CartItem, error) {
	query := `
		SELECT id, email, menu_item_id, name, image, price::text, created_at
		FROM cart_items
		WHERE id = $1
	`
	var item domain.CartItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Email,
		&item.MenuItemID,
		&item.Name,
		&item.Image,
		&item.Price,
		&item.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrItemNotFound
		}
		return nil, fmt.Errorf("get cart item by id: %w", err)
	}

	return &item, nil
}

// ListItemsByEmail retrieves all cart items owned by the email.
func (r *Repository) ListItemsByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	query := `
		SELECT id, email, menu_item_id, name, image, price::text, created_at
		FROM cart_items
		WHERE email = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(
			&item.ID,
			&item.Email,
			&item.MenuItemID,
			&item.Name,
			&item.Image,
			&item.Price,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}

	return items, nil
}

// DeleteItem removes a cart item and returns the deleted row count.
func (r *Repository) DeleteItem(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return tag.RowsAffected(), nil
}
