// Package menu provides HTTP handlers and business logic for the public menu.
package menu

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Service implements menu business logic.
type Service struct {
	repo Repository
}

// NewService creates a new menu service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateItem inserts a menu item and returns the insert outcome.
func (s *Service) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.InsertResult, error) {
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: &item.ID}, nil
}

// GetItem returns a single menu item.
func (s *Service) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns menu items, optionally filtered by category.
func (s *Service) ListItems(ctx context.Context, filter Filter) ([]domain.MenuItem, error) {
	items, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// UpdateItem replaces the editable fields of a menu item.
func (s *Service) UpdateItem(ctx context.Context, item *domain.MenuItem) (*domain.UpdateResult, error) {
	matched, modified, err := s.repo.UpdateItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return &domain.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

// DeleteItem removes a menu item.
func (s *Service) DeleteItem(ctx context.Context, id string) (*domain.DeleteResult, error) {
	deleted, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete menu item: %w", err)
	}
	return &domain.DeleteResult{DeletedCount: deleted}, nil
}
