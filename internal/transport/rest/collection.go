package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/collection"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
)

// collectionService defines the minimal interface needed by CollectionHandler.
type collectionService interface {
	CreateCollection(ctx context.Context, input collection.CreateCollectionInput) (*domain.Collection, error)
	GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	ListCollections(ctx context.Context, input collection.ListCollectionsInput) (*collection.CollectionList, error)
	UpdateCollection(ctx context.Context, input collection.UpdateCollectionInput) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error
}

// collectionCardLister lists the cards of a single collection.
type collectionCardLister interface {
	ListByCollection(ctx context.Context, input flashcard.ListInput) (*flashcard.FlashcardList, error)
}

// CollectionHandler serves collection REST endpoints.
type CollectionHandler struct {
	svc   collectionService
	cards collectionCardLister
	log   *slog.Logger
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc collectionService, cards collectionCardLister, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{svc: svc, cards: cards, log: logger.With("handler", "collection")}
}

type createCollectionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateCollectionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Create handles POST /collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.CreateCollection(r.Context(), collection.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCollectionResponse(*c))
}

// List handles GET /collections?limit=&offset=&sort=&order=.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
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
	list, err := h.svc.ListCollections(r.Context(), collection.ListCollectionsInput{
		Limit:  limit,
		Offset: offset,
		Sort:   domain.CollectionSort(q.Get("sort")),
		Order:  q.Get("order"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if limit == 0 {
		limit = collection.DefaultListLimit
	}
	data := make([]collectionResponse, len(list.Collections))
	for i, c := range list.Collections {
		data[i] = toCollectionResponse(c)
	}
	writeJSON(w, http.StatusOK, listResponse[collectionResponse]{
		Data:       data,
		Pagination: newPagination(list.Total, limit, offset),
	})
}

// Get handles GET /collections/{id}.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCollectionResponse(*c))
}

// Update handles PATCH /collections/{id}. An empty description clears it.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateCollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.UpdateCollection(r.Context(), collection.UpdateCollectionInput{
		CollectionID: id,
		Name:         req.Name,
		Description:  req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCollectionResponse(*c))
}

// Delete handles DELETE /collections/{id}. The collection's cards and sessions go with it.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.DeleteCollection(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Flashcards handles GET /collections/{id}/flashcards?limit=&offset=&category_id=.
func (h *CollectionHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
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
	categoryID, err := queryUUID(r, "category_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	list, err := h.cards.ListByCollection(r.Context(), flashcard.ListInput{
		CollectionID: id,
		CategoryID:   categoryID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if limit == 0 {
		limit = flashcard.DefaultListLimit
	}
	writeJSON(w, http.StatusOK, listResponse[flashcardResponse]{
		Data:       toFlashcardResponses(list.Flashcards),
		Pagination: newPagination(list.Total, limit, offset),
	})
}

func (h *CollectionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
