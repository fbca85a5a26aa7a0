package cart

import (
	"context"
	"errors"

	"github.com/bistroboss/bistro-api/internal/domain"
)

var (
	ErrItemNotFound = errors.New("cart item not found")
	ErrNotOwner     = errors.New("cart item belongs to another user")
)

// Repository defines the interface for cart data operations.
type Repository interface {
	CreateItem(ctx context.Context, item *domain.CartItem) error
	GetItemByID(ctx context.Context, id string) (*domain.CartItem, error)
	ListItemsByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	// DeleteItem returns the number of deleted rows.
	DeleteItem(ctx context.Context, id string) (int64, error)
}
