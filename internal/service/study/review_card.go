package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study/sm2"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// ReviewCard applies one SM-2 review to a card of the session's collection
// and bumps the session counter. Card, counter and audit record are written
// in one transaction.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*ReviewResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	ctx = ctxutil.WithStudySessionID(ctx, input.SessionID)

	var result ReviewResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.activeSessionForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return err
		}

		cards, err := s.cards.GetByIDs(txCtx, userID, session.CollectionID, []uuid.UUID{input.Review.FlashcardID})
		if err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}
		if len(cards) == 0 {
			return fmt.Errorf("flashcard %s not in collection: %w", input.Review.FlashcardID, domain.ErrNotFound)
		}
		card := cards[0]

		outcome := sm2.Calculate(card.Scheduling, input.Review.Quality, s.clock.Now())

		if _, err := s.cards.UpdateScheduling(txCtx, userID, card.ID, outcome.State); err != nil {
			return fmt.Errorf("update flashcard: %w", err)
		}

		count := session.CardsReviewedCount + 1
		if _, err := s.sessions.Update(txCtx, userID, session.ID, domain.SessionPatch{CardsReviewedCount: &count}); err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		if err := s.audit.Log(txCtx, reviewAudit(userID, card, input.Review, outcome)); err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		result = ReviewResult{
			FlashcardID:    card.ID,
			State:          outcome.State,
			NextReviewDate: outcome.State.NextReviewDate,
			RepeatToday:    outcome.RepeatToday,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("review card: %w", err)
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("user_id", userID.String()),
		slog.String("session_id", input.SessionID.String()),
		slog.String("flashcard_id", result.FlashcardID.String()),
		slog.Int("quality", input.Review.Quality),
		slog.Int("interval_days", result.State.IntervalDays),
	)

	return &result, nil
}

// ReviewBatch applies several reviews against one snapshot of the cards.
// Reviews of cards outside the session's collection are skipped, not fatal.
func (s *Service) ReviewBatch(ctx context.Context, input ReviewBatchInput) (*BatchReviewResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	ctx = ctxutil.WithStudySessionID(ctx, input.SessionID)

	ids := make([]uuid.UUID, len(input.Reviews))
	for i, r := range input.Reviews {
		ids[i] = r.FlashcardID
	}

	var result *BatchReviewResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.activeSessionForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return err
		}

		cards, err := s.cards.GetByIDs(txCtx, userID, session.CollectionID, ids)
		if err != nil {
			return fmt.Errorf("get flashcards: %w", err)
		}
		byID := make(map[uuid.UUID]domain.Flashcard, len(cards))
		for _, c := range cards {
			byID[c.ID] = c
		}

		now := s.clock.Now()
		updates := make([]domain.SchedulingUpdate, 0, len(input.Reviews))
		results := make([]ReviewResult, 0, len(input.Reviews))
		var skipped []uuid.UUID

		for _, review := range input.Reviews {
			card, found := byID[review.FlashcardID]
			if !found {
				skipped = append(skipped, review.FlashcardID)
				continue
			}

			outcome := sm2.Calculate(card.Scheduling, review.Quality, now)
			updates = append(updates, domain.SchedulingUpdate{FlashcardID: card.ID, State: outcome.State})
			results = append(results, ReviewResult{
				FlashcardID:    card.ID,
				State:          outcome.State,
				NextReviewDate: outcome.State.NextReviewDate,
				RepeatToday:    outcome.RepeatToday,
			})
		}

		if len(updates) == 0 {
			result = &BatchReviewResult{Skipped: skipped}
			return nil
		}

		if _, err := s.cards.BatchUpdateScheduling(txCtx, userID, updates); err != nil {
			return fmt.Errorf("batch update flashcards: %w", err)
		}

		count := session.CardsReviewedCount + len(updates)
		if _, err := s.sessions.Update(txCtx, userID, session.ID, domain.SessionPatch{CardsReviewedCount: &count}); err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStudySession,
			EntityID:   &session.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"reviewed": len(updates),
				"skipped":  len(skipped),
			},
		}); err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		result = &BatchReviewResult{Processed: len(updates), Results: results, Skipped: skipped}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("review batch: %w", err)
	}

	for _, id := range result.Skipped {
		s.log.WarnContext(ctx, "review skipped: flashcard not in session collection",
			slog.String("session_id", input.SessionID.String()),
			slog.String("flashcard_id", id.String()),
		)
	}

	s.log.InfoContext(ctx, "batch reviewed",
		slog.String("user_id", userID.String()),
		slog.String("session_id", input.SessionID.String()),
		slog.Int("processed", result.Processed),
		slog.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func reviewAudit(userID uuid.UUID, card domain.Flashcard, review domain.ReviewEvent, outcome sm2.Result) domain.AuditRecord {
	changes := map[string]any{
		"quality": review.Quality,
		"repetitions": map[string]any{
			"old": card.Scheduling.Repetitions,
			"new": outcome.State.Repetitions,
		},
		"interval_days": map[string]any{
			"old": card.Scheduling.IntervalDays,
			"new": outcome.State.IntervalDays,
		},
	}
	if review.ResponseTimeMs != nil {
		changes["response_time_ms"] = *review.ResponseTimeMs
	}
	if review.DifficultyFelt != nil {
		changes["difficulty_felt"] = review.DifficultyFelt.String()
	}

	return domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeFlashcard,
		EntityID:   &card.ID,
		Action:     domain.AuditActionUpdate,
		Changes:    changes,
	}
}
