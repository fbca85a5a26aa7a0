package menu

import (
	"encoding/json"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the menu module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new menu handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: httputil.NewValidator(),
	}
}

// RegisterPublicRoutes registers the read-only menu surface.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/menu", h.ListItems)
	r.Get("/menu/{id}", h.GetItem)
}

// RegisterAdminRoutes registers routes behind the admin gate.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/menu", h.CreateItem)
	r.Patch("/menu/{id}", h.UpdateItem)
	r.Delete("/menu/{id}", h.DeleteItem)
}

// ItemRequest is the create/update body. The same fixed field set is
// replaced on update.
type ItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"required,min=1,max=100"`
	Price    string `json:"price" validate:"required,price"`
	Recipe   string `json:"recipe"`
	Image    string `json:"image"`
}

// ToDomain converts the request to a domain model.
func (r *ItemRequest) ToDomain() *domain.MenuItem {
	return &domain.MenuItem{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Recipe:   r.Recipe,
		Image:    r.Image,
	}
}

// ListItems handles GET /menu.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter := Filter{Category: r.URL.Query().Get("category")}

	items, err := h.service.ListItems(r.Context(), filter)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// GetItem handles GET /menu/{id}.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrItemNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, item)
}

// CreateItem handles POST /menu.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	result, err := h.service.CreateItem(r.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, result)
}

// UpdateItem handles PATCH /menu/{id}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	item := req.ToDomain()
	item.ID = id

	result, err := h.service.UpdateItem(r.Context(), item)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// DeleteItem handles DELETE /menu/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.service.DeleteItem(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}
