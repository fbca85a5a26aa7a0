// Package cart manages per-user shopping carts.
package cart

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Service implements cart business logic. Every operation is scoped to the
// verified owner email; clients cannot read or delete another user's cart.
type Service struct {
	repo Repository
}

// NewService creates a new cart service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem puts a menu item snapshot into the owner's cart.
func (s *Service) AddItem(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: &item.ID}, nil
}

// ListItems returns the owner's cart items.
func (s *Service) ListItems(ctx context.Context, email string) ([]domain.CartItem, error) {
	items, err := s.repo.ListItemsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	return items, nil
}

// DeleteItem removes a cart item after checking the caller owns it.
func (s *Service) DeleteItem(ctx context.Context, ownerEmail, id string) (*domain.DeleteResult, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Email != ownerEmail {
		return nil, ErrNotOwner
	}

	deleted, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	return &domain.DeleteResult{DeletedCount: deleted}, nil
}
