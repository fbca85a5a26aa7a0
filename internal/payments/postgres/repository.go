// Package postgres provides the PostgreSQL implementation of the payments repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the payments.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// SettlePayment inserts the payment record and deletes the settled cart
// items in a single transaction. Cart deletion is scoped to the payment
// owner's email so a forged id list cannot purge someone else's cart.
func (r *Repository) SettlePayment(ctx context.Context, payment *domain.Payment) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin settlement tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO payments (id, email, amount, currency, transaction_id, cart_item_ids, status)
		VALUES ($1, $2, $3::numeric, $4, $5, $6::uuid[], $7)
		RETURNING created_at
	`,
		payment.ID,
		payment.Email,
		payment.Amount,
		payment.Currency,
		payment.TransactionID,
		payment.CartItemIDs,
		payment.Status,
	).Scan(&payment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert payment: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM cart_items
		WHERE id = ANY($1::uuid[]) AND email = $2
	`, payment.CartItemIDs, payment.Email)
	if err != nil {
		return 0, fmt.Errorf("purge cart items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit settlement tx: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListPaymentsByEmail retrieves the owner's payment records, newest first.
func (r *Repository) ListPaymentsByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	query := `
		SELECT id, email, amount::text, currency, transaction_id, cart_item_ids::text[], status, created_at
		FROM payments
		WHERE email = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID,
			&p.Email,
			&p.Amount,
			&p.Currency,
			&p.TransactionID,
			&p.CartItemIDs,
			&p.Status,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	return records, nil
}
