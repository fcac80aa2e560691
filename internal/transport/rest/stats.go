package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/stats"
)

type statsService interface {
	GetLearningStats(ctx context.Context, input stats.LearningStatsInput) (*domain.LearningStats, error)
}

// StatsHandler serves learning statistics.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Learning handles GET /stats/learning?collection_id=&period=.
func (h *StatsHandler) Learning(w http.ResponseWriter, r *http.Request) {
	collectionID, err := queryUUID(r, "collection_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.GetLearningStats(r.Context(), stats.LearningStatsInput{
		CollectionID: collectionID,
		Period:       domain.StatsPeriod(upperEnum(r.URL.Query().Get("period"))),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLearningStatsResponse(*result))
}
