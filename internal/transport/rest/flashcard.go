package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
)

// flashcardService defines the minimal interface needed by FlashcardHandler.
type flashcardService interface {
	CreateFlashcard(ctx context.Context, input flashcard.CreateFlashcardInput) (*domain.Flashcard, error)
	CreateBulk(ctx context.Context, input flashcard.CreateBulkInput) ([]domain.Flashcard, error)
	UpdateFlashcard(ctx context.Context, input flashcard.UpdateFlashcardInput) (*domain.Flashcard, error)
	DeleteFlashcard(ctx context.Context, flashcardID uuid.UUID) error
}

// FlashcardHandler serves flashcard REST endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type createFlashcardRequest struct {
	CollectionID uuid.UUID  `json:"collection_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	Source       string     `json:"source"`
}

type bulkCardDTO struct {
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	CategoryID *uuid.UUID `json:"category_id"`
}

type bulkFlashcardsRequest struct {
	CollectionID uuid.UUID     `json:"collection_id"`
	Source       string        `json:"source"`
	Flashcards   []bulkCardDTO `json:"flashcards"`
}

type bulkFlashcardsResponse struct {
	Created    int                 `json:"created"`
	Flashcards []flashcardResponse `json:"flashcards"`
}

// updateFlashcardRequest.CategoryID is a UUID to move the card, or "" to unlink it.
type updateFlashcardRequest struct {
	Front      *string `json:"front"`
	Back       *string `json:"back"`
	CategoryID *string `json:"category_id"`
}

// Create handles POST /flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFlashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	card, err := h.svc.CreateFlashcard(r.Context(), flashcard.CreateFlashcardInput{
		CollectionID: req.CollectionID,
		CategoryID:   req.CategoryID,
		Front:        req.Front,
		Back:         req.Back,
		Source:       domain.FlashcardSource(upperEnum(req.Source)),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlashcardResponse(*card))
}

// CreateBulk handles POST /flashcards/bulk.
func (h *FlashcardHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkFlashcardsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	cards := make([]flashcard.CardText, len(req.Flashcards))
	for i, c := range req.Flashcards {
		cards[i] = flashcard.CardText{Front: c.Front, Back: c.Back, CategoryID: c.CategoryID}
	}

	created, err := h.svc.CreateBulk(r.Context(), flashcard.CreateBulkInput{
		CollectionID: req.CollectionID,
		Cards:        cards,
		Source:       domain.FlashcardSource(upperEnum(req.Source)),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bulkFlashcardsResponse{
		Created:    len(created),
		Flashcards: toFlashcardResponses(created),
	})
}

// Update handles PATCH /flashcards/{id}. An empty category_id unlinks the card.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateFlashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	input := flashcard.UpdateFlashcardInput{
		FlashcardID: id,
		Front:       req.Front,
		Back:        req.Back,
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			input.ClearCategory = true
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				h.handleError(w, r, domain.NewValidationError("category_id", "must be a valid UUID or empty"))
				return
			}
			input.CategoryID = &categoryID
		}
	}

	card, err := h.svc.UpdateFlashcard(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(*card))
}

// Delete handles DELETE /flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.DeleteFlashcard(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FlashcardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
