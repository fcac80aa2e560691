package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

// generationService defines the minimal interface needed by GenerationHandler.
type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (*generation.GenerateResult, error)
	Accept(ctx context.Context, input generation.AcceptInput) (*generation.AcceptResult, error)
	GetStats(ctx context.Context) (*domain.GenerationStats, error)
}

// GenerationHandler serves AI generation REST endpoints.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type generateRequest struct {
	Text         string    `json:"text"`
	CollectionID uuid.UUID `json:"collection_id"`
	MaxCards     int       `json:"max_cards"`
}

type generateResponse struct {
	GenerationID string         `json:"generation_id"`
	Candidates   []candidateDTO `json:"candidates"`
	TextLength   int            `json:"text_length"`
	MaxCards     int            `json:"max_cards"`
	ExpiresAt    time.Time      `json:"expires_at"`
}

type acceptedCardDTO struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	Edited bool   `json:"edited"`
}

type acceptRequest struct {
	CollectionID  uuid.UUID         `json:"collection_id"`
	AcceptedCards []acceptedCardDTO `json:"accepted_cards"`
}

type acceptResponse struct {
	Created      int                 `json:"created"`
	Flashcards   []flashcardResponse `json:"flashcards"`
	StatsUpdated bool                `json:"stats_updated"`
}

// Generate handles POST /generate/flashcards.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.Generate(r.Context(), generation.GenerateInput{
		Text:         req.Text,
		CollectionID: req.CollectionID,
		MaxCards:     req.MaxCards,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	candidates := make([]candidateDTO, len(result.Candidates))
	for i, c := range result.Candidates {
		candidates[i] = candidateDTO{Front: c.Front, Back: c.Back}
	}
	writeJSON(w, http.StatusOK, generateResponse{
		GenerationID: result.GenerationID.String(),
		Candidates:   candidates,
		TextLength:   result.TextLength,
		MaxCards:     result.MaxCards,
		ExpiresAt:    result.ExpiresAt,
	})
}

// Accept handles POST /generate/flashcards/{id}/accept.
func (h *GenerationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	generationID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req acceptRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	cards := make([]generation.AcceptedCard, len(req.AcceptedCards))
	for i, c := range req.AcceptedCards {
		cards[i] = generation.AcceptedCard{Front: c.Front, Back: c.Back, Edited: c.Edited}
	}

	result, err := h.svc.Accept(r.Context(), generation.AcceptInput{
		GenerationID: generationID,
		CollectionID: req.CollectionID,
		Cards:        cards,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, acceptResponse{
		Created:      result.Created,
		Flashcards:   toFlashcardResponses(result.Flashcards),
		StatsUpdated: true,
	})
}

// Stats handles GET /generate/stats.
func (h *GenerationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenerationStatsResponse(*stats))
}

func (h *GenerationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
