// Package stats reports learning progress: card counts by scheduling state and
// study session history.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

//go:generate moq -out stats_repo_mock_test.go -pkg stats . statsRepo
//go:generate moq -out collection_repo_mock_test.go -pkg stats . collectionRepo

type statsRepo interface {
	CardCounts(ctx context.Context, userID uuid.UUID, scope domain.StatsScope, now time.Time) (domain.CardCounts, error)
	SessionAggregates(ctx context.Context, userID uuid.UUID, scope domain.StatsScope) (domain.SessionAggregates, error)
	DailyReviews(ctx context.Context, userID uuid.UUID, scope domain.StatsScope) ([]domain.DailyReviews, error)
}

type collectionRepo interface {
	GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
}

// Service computes learning statistics.
type Service struct {
	stats       statsRepo
	collections collectionRepo
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, stats statsRepo, collections collectionRepo) *Service {
	return &Service{
		stats:       stats,
		collections: collections,
		log:         log.With("service", "stats"),
		now:         time.Now,
	}
}

// LearningStatsInput selects the collection and period to report on.
// A nil CollectionID covers all of the caller's collections; an empty Period means ALL.
type LearningStatsInput struct {
	CollectionID *uuid.UUID
	Period       domain.StatsPeriod
}

// Validate checks all fields and collects all errors.
func (i LearningStatsInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID != nil && *i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "invalid"})
	}
	if i.Period != "" && !i.Period.IsValid() {
		errs = append(errs, domain.FieldError{Field: "period", Message: "must be week, month, year or all"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetLearningStats returns card counts as of now and session statistics for the
// requested period. Card counts are not bounded by the period.
func (s *Service) GetLearningStats(ctx context.Context, input LearningStatsInput) (*domain.LearningStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.CollectionID != nil {
		if _, err := s.collections.GetByID(ctx, userID, *input.CollectionID); err != nil {
			return nil, fmt.Errorf("get collection: %w", err)
		}
	}

	period := input.Period
	if period == "" {
		period = domain.StatsPeriodAll
	}

	now := s.now()
	scope := domain.StatsScope{CollectionID: input.CollectionID, Since: period.Since(now)}

	cards, err := s.stats.CardCounts(ctx, userID, scope, now)
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}

	sessions, err := s.stats.SessionAggregates(ctx, userID, scope)
	if err != nil {
		return nil, fmt.Errorf("aggregate sessions: %w", err)
	}

	byDay, err := s.stats.DailyReviews(ctx, userID, scope)
	if err != nil {
		return nil, fmt.Errorf("daily reviews: %w", err)
	}

	s.log.InfoContext(ctx, "learning stats loaded",
		slog.String("user_id", userID.String()),
		slog.String("period", period.String()),
		slog.Int("total_cards", cards.Total),
		slog.Int("sessions", sessions.Sessions),
	)

	return &domain.LearningStats{
		Period:   period,
		Cards:    cards,
		Sessions: sessions,
		ByDay:    byDay,
	}, nil
}
