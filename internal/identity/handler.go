package identity

import (
	"encoding/json"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the identity module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new identity handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterProtectedRoutes registers routes behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/users/admin/{email}", h.AdminStatus)
}

// RegisterAdminRoutes registers routes behind the admin gate.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/users", h.ListUsers)
	r.Patch("/users/admin/{id}", h.PromoteToAdmin)
	r.Delete("/users/{id}", h.DeleteUser)
}

// TokenRequest represents the token issue request body.
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// TokenResponse carries the signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /jwt.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	tok, err := h.service.IssueToken(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrInvalidCredentials, Status: http.StatusUnauthorized},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, TokenResponse{Token: tok})
}

// RegisterUserRequest represents the registration request body.
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// Register handles POST /users.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	result, err := h.service.Register(r.Context(), RegisterInput(req))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// AdminStatusResponse reports whether the queried user is an admin.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// AdminStatus handles GET /users/admin/{email}. Callers may only query
// their own email.
func (h *Handler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if email != httputil.GetEmail(r.Context()) {
		httputil.Error(w, http.StatusForbidden, "forbidden access")
		return
	}

	admin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, AdminStatusResponse{Admin: admin})
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, users)
}

// PromoteToAdmin handles PATCH /users/admin/{id}.
func (h *Handler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.service.PromoteToAdmin(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}
