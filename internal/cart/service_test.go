package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	items         map[string]*domain.CartItem
	createItemErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{items: make(map[string]*domain.CartItem)}
}

func (m *mockRepository) CreateItem(_ context.Context, item *domain.CartItem) error {
	if m.createItemErr != nil {
		return m.createItemErr
	}
	item.ID = "test-item-id"
	m.items[item.ID] = item
	return nil
}

func (m *mockRepository) GetItemByID(_ context.Context, id string) (*domain.CartItem, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, ErrItemNotFound
}

func (m *mockRepository) ListItemsByEmail(_ context.Context, email string) ([]domain.CartItem, error) {
	items := make([]domain.CartItem, 0)
	for _, item := range m.items {
		if item.Email == email {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (m *mockRepository) DeleteItem(_ context.Context, id string) (int64, error) {
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	delete(m.items, id)
	return 1, nil
}

func TestAddItem(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := NewService(repo)

	// Act
	result, err := service.AddItem(context.Background(), &domain.CartItem{
		Email:      "user@example.com",
		MenuItemID: "menu-1",
		Name:       "Roast Duck Breast",
		Price:      "14.50",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	require.NotNil(t, result.InsertedID)
	assert.Equal(t, "test-item-id", *result.InsertedID)
}

func TestAddItem_RepoFailure(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.createItemErr = errors.New("database error")
	service := NewService(repo)

	// Act
	result, err := service.AddItem(context.Background(), &domain.CartItem{Email: "user@example.com"})

	// Assert
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestListItems_OnlyOwnItems(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.items["a"] = &domain.CartItem{ID: "a", Email: "alice@example.com"}
	repo.items["b"] = &domain.CartItem{ID: "b", Email: "bob@example.com"}
	service := NewService(repo)

	// Act
	items, err := service.ListItems(context.Background(), "alice@example.com")

	// Assert
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestDeleteItem_Owner(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.items["a"] = &domain.CartItem{ID: "a", Email: "alice@example.com"}
	service := NewService(repo)

	// Act
	result, err := service.DeleteItem(context.Background(), "alice@example.com", "a")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Empty(t, repo.items)
}

func TestDeleteItem_NotOwner(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.items["a"] = &domain.CartItem{ID: "a", Email: "alice@example.com"}
	service := NewService(repo)

	// Act
	result, err := service.DeleteItem(context.Background(), "bob@example.com", "a")

	// Assert — the item survives
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Contains(t, repo.items, "a")
}

func TestDeleteItem_NotFound(t *testing.T) {
	// Arrange
	service := NewService(newMockRepository())

	// Act
	result, err := service.DeleteItem(context.Background(), "alice@example.com", "missing")

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
