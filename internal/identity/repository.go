package identity

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Repository defines the interface for user data operations.
type Repository interface {
	// CreateUser inserts a new user. Returns ErrEmailExists if the email
	// is already taken (unique constraint, not a pre-check).
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// UpdateUserRole returns matched and modified counts.
	UpdateUserRole(ctx context.Context, id string, role domain.Role) (int64, int64, error)
	// DeleteUser returns the number of deleted rows.
	DeleteUser(ctx context.Context, id string) (int64, error)
}
