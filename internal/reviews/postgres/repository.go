// Package postgres provides the PostgreSQL implementation of the reviews repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the reviews.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateReview inserts a new review.
func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (name, details, rating)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		review.Name,
		review.Details,
		review.Rating,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// ListReviews retrieves all reviews, newest first.
func (r *Repository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, name, details, rating, created_at
		FROM reviews
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.Name,
			&review.Details,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// DeleteReview removes a review and returns the deleted row count.
func (r *Repository) DeleteReview(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete review: %w", err)
	}
	return tag.RowsAffected(), nil
}
