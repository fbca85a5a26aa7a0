// Package identity provides user registration, token issuance and the
// role checks behind privileged routes.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// TokenSigner issues a signed bearer token for an email.
type TokenSigner interface {
	Sign(email string) (string, error)
}

// Service implements identity business logic.
type Service struct {
	repo   Repository
	signer TokenSigner
}

// NewService creates a new identity service.
func NewService(repo Repository, signer TokenSigner) *Service {
	return &Service{repo: repo, signer: signer}
}

// RegisterInput contains registration data. Password is optional: users
// arriving through a federated login have no server-side password.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterResult mirrors the store outcome the storefront expects: an
// inserted id on success, or the duplicate sentinel with a null id.
type RegisterResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// Register creates a user unless the email is already taken. A duplicate
// is a business outcome, not an error: the caller gets the sentinel
// response either from the pre-check or from the unique constraint, so
// two concurrent registrations can never both insert.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if _, err := s.repo.GetUserByEmail(ctx, input.Email); err == nil {
		return &RegisterResult{Message: "User Already Exists"}, nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	user := &domain.User{
		Email: input.Email,
		Name:  input.Name,
		Role:  domain.RoleUser,
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailExists) {
			// Lost the check-then-act race; same sentinel as the pre-check.
			return &RegisterResult{Message: "User Already Exists"}, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &RegisterResult{InsertedID: &user.ID}, nil
}

// IssueToken signs a bearer token for the email. If the stored user
// carries a password hash the password must match; password-less records
// (federated logins) are issued a token on email alone.
func (s *Service) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("look up user: %w", err)
	}

	if user != nil && user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return "", ErrInvalidCredentials
		}
	}

	tok, err := s.signer.Sign(email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}

// IsAdmin reports whether the email belongs to an admin user. A missing
// user is not an error here; it simply isn't an admin.
// Implements httputil.AdminChecker.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up user: %w", err)
	}
	return user.Role.IsAdmin(), nil
}

// ListUsers returns all users.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// PromoteToAdmin sets the user's role to admin.
func (s *Service) PromoteToAdmin(ctx context.Context, id string) (*domain.UpdateResult, error) {
	matched, modified, err := s.repo.UpdateUserRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	return &domain.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

// DeleteUser removes a user by id.
func (s *Service) DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error) {
	deleted, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return &domain.DeleteResult{DeletedCount: deleted}, nil
}
