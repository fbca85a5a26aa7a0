package payments

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Repository defines the interface for payment data operations.
type Repository interface {
	// SettlePayment inserts the payment record and deletes the settled
	// cart items in one transaction. Returns the number of cart rows
	// deleted. Either both effects happen or neither.
	SettlePayment(ctx context.Context, payment *domain.Payment) (int64, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]domain.Payment, error)
}
