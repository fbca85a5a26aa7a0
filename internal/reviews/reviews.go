// Package reviews serves customer testimonials.
package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Repository defines the interface for review data operations.
type Repository interface {
	CreateReview(ctx context.Context, review *domain.Review) error
	ListReviews(ctx context.Context) ([]domain.Review, error)
	DeleteReview(ctx context.Context, id string) (int64, error)
}

// Handler handles HTTP requests for the reviews module.
type Handler struct {
	repo      Repository
	validator *validator.Validate
}

// NewHandler creates a new reviews handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo:      repo,
		validator: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only surface.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/reviews", h.ListReviews)
}

// RegisterProtectedRoutes registers routes behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/reviews", h.CreateReview)
}

// RegisterAdminRoutes registers routes behind the admin gate.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Delete("/reviews/{id}", h.DeleteReview)
}

// CreateReviewRequest is the testimonial body.
type CreateReviewRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Details string  `json:"details" validate:"required"`
	Rating  float64 `json:"rating" validate:"required,gte=0,lte=5"`
}

// ListReviews handles GET /reviews.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.ListReviews(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, fmt.Errorf("list reviews: %w", err), nil)
		return
	}

	httputil.JSON(w, http.StatusOK, reviews)
}

// CreateReview handles POST /reviews.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	review := &domain.Review{
		Name:    req.Name,
		Details: req.Details,
		Rating:  req.Rating,
	}
	if err := h.repo.CreateReview(r.Context(), review); err != nil {
		httputil.HandleError(r.Context(), w, fmt.Errorf("create review: %w", err), nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, domain.InsertResult{Acknowledged: true, InsertedID: &review.ID})
}

// DeleteReview handles DELETE /reviews/{id}.
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.repo.DeleteReview(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, fmt.Errorf("delete review: %w", err), nil)
		return
	}

	httputil.JSON(w, http.StatusOK, domain.DeleteResult{DeletedCount: deleted})
}
