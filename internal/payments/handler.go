package payments

import (
	"encoding/json"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the payments module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new payments handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterPublicRoutes registers the intent endpoint. The storefront calls
// it before the buyer authenticates with the gateway, so it takes no token.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/create-payment-intent", h.CreateIntent)
}

// RegisterProtectedRoutes registers routes behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/payments", h.Settle)
	r.Get("/payments/{email}", h.ListPayments)
}

// CreateIntentRequest carries the checkout total.
type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreateIntentResponse carries the gateway confirmation secret.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent.
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	secret, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, CreateIntentResponse{ClientSecret: secret})
}

// SettleRequest is the post-confirmation callback body.
type SettleRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartItemIDs   []string `json:"cartIds" validate:"required,min=1,dive,uuid"`
}

// Settle handles POST /payments. The body email must match the token
// subject; users settle only their own carts.
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	var req SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	if req.Email != httputil.GetEmail(r.Context()) {
		httputil.Error(w, http.StatusForbidden, "forbidden access")
		return
	}

	result, err := h.service.Settle(r.Context(), SettleInput(req))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, result)
}

// ListPayments handles GET /payments/{email}. Callers may only read their
// own records.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if email != httputil.GetEmail(r.Context()) {
		httputil.Error(w, http.StatusForbidden, "forbidden access")
		return
	}

	records, err := h.service.ListPayments(r.Context(), email)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, records)
}
