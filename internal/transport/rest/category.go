package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/category"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)
	ListCategories(ctx context.Context, input category.ListCategoriesInput) (*category.CategoryList, error)
	UpdateCategory(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}

// CategoryHandler serves category REST endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), category.CreateCategoryInput{Name: req.Name})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(*c))
}

// List handles GET /categories?limit=&offset=&sort=&order=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	q := r.URL.Query()
	list, err := h.svc.ListCategories(r.Context(), category.ListCategoriesInput{
		Limit:  limit,
		Offset: offset,
		Sort:   domain.CategorySort(q.Get("sort")),
		Order:  q.Get("order"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if limit == 0 {
		limit = category.DefaultListLimit
	}
	data := make([]categoryResponse, len(list.Categories))
	for i, c := range list.Categories {
		data[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, listResponse[categoryResponse]{
		Data:       data,
		Pagination: newPagination(list.Total, limit, offset),
	})
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// Update handles PATCH /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), category.UpdateCategoryInput{
		CategoryID: id,
		Name:       req.Name,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// Delete handles DELETE /categories/{id}. Flashcards in the category are kept.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
