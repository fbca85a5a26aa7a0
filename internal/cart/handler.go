package cart

import (
	"encoding/json"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the cart module. All routes sit
// behind the auth middleware; the owner is always the token subject.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new cart handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: httputil.NewValidator(),
	}
}

// RegisterProtectedRoutes registers cart routes.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/carts", h.ListItems)
	r.Post("/carts", h.AddItem)
	r.Delete("/carts/{id}", h.DeleteItem)
}

// AddItemRequest is the add-to-cart body. Name, image and price are the
// menu snapshot taken by the storefront at add time.
type AddItemRequest struct {
	MenuItemID string `json:"menuId" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,min=1,max=255"`
	Image      string `json:"image"`
	Price      string `json:"price" validate:"required,price"`
}

// ListItems handles GET /carts?email=. The email parameter must match the
// token subject.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	owner := httputil.GetEmail(r.Context())

	if email := r.URL.Query().Get("email"); email != "" && email != owner {
		httputil.Error(w, http.StatusForbidden, "forbidden access")
		return
	}

	items, err := h.service.ListItems(r.Context(), owner)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// AddItem handles POST /carts.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	item := &domain.CartItem{
		Email:      httputil.GetEmail(r.Context()),
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}

	result, err := h.service.AddItem(r.Context(), item)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, result)
}

// DeleteItem handles DELETE /carts/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.service.DeleteItem(r.Context(), httputil.GetEmail(r.Context()), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrItemNotFound, Status: http.StatusNotFound},
			{Error: ErrNotOwner, Status: http.StatusForbidden},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}
