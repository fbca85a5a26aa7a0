package menu

import (
	"context"
	"errors"

	"github.com/bistroboss/bistro-api/internal/domain"
)

var ErrItemNotFound = errors.New("menu item not found")

// Repository defines the interface for menu data operations.
type Repository interface {
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error)
	ListItems(ctx context.Context, filter Filter) ([]domain.MenuItem, error)
	// UpdateItem replaces the full editable field set and returns
	// matched/modified counts.
	UpdateItem(ctx context.Context, item *domain.MenuItem) (int64, int64, error)
	// DeleteItem returns the number of deleted rows.
	DeleteItem(ctx context.Context, id string) (int64, error)
}

// Filter narrows menu listings.
type Filter struct {
	Category string
}
