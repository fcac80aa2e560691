package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Generate asks the generator for candidates and stores them until they are
// accepted or the generation expires. Each user is subject to a request quota.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.quota.Allow(userID.String()) {
		return nil, domain.ErrRateLimited
	}

	if _, err := s.collections.GetByID(ctx, userID, input.CollectionID); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	maxCards := input.MaxCards
	if maxCards == 0 {
		maxCards = DefaultMaxCards
	}
	text := strings.TrimSpace(input.Text)

	candidates, err := s.gen.Generate(ctx, text, maxCards)
	if err != nil {
		return nil, fmt.Errorf("generate candidates: %w", err)
	}
	if len(candidates) > maxCards {
		candidates = candidates[:maxCards]
	}

	now := s.now()
	gen := &domain.GenerationSession{
		ID:           uuid.New(),
		UserID:       userID,
		CollectionID: input.CollectionID,
		Candidates:   candidates,
		TextLength:   utf8.RuneCountInString(text),
		MaxCards:     maxCards,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	var stored *domain.GenerationSession
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		stored, createErr = s.generations.Create(txCtx, gen)
		if createErr != nil {
			return fmt.Errorf("store generation: %w", createErr)
		}

		if statsErr := s.generations.AddStats(txCtx, userID, domain.GenerationStatsDelta{Generated: len(candidates)}); statsErr != nil {
			return fmt.Errorf("update stats: %w", statsErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flashcards generated",
		slog.String("user_id", userID.String()),
		slog.String("generation_id", stored.ID.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("text_length", stored.TextLength),
	)

	return &GenerateResult{
		GenerationID: stored.ID,
		Candidates:   stored.Candidates,
		TextLength:   stored.TextLength,
		MaxCards:     stored.MaxCards,
		ExpiresAt:    stored.ExpiresAt,
	}, nil
}

// Accept creates AI_GENERATED flashcards from the accepted candidates and
// consumes the generation. An expired generation is removed and reported as ErrExpired.
func (s *Service) Accept(ctx context.Context, input AcceptInput) (*AcceptResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	gen, err := s.generations.GetByID(ctx, userID, input.GenerationID)
	if err != nil {
		return nil, fmt.Errorf("get generation: %w", err)
	}

	now := s.now()
	if gen.IsExpired(now) {
		if delErr := s.generations.Delete(ctx, userID, gen.ID); delErr != nil {
			s.log.WarnContext(ctx, "delete expired generation",
				slog.String("generation_id", gen.ID.String()),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, domain.ErrExpired
	}

	if _, err := s.collections.GetByID(ctx, userID, input.CollectionID); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	cards := make([]domain.Flashcard, len(input.Cards))
	var delta domain.GenerationStatsDelta
	for i, c := range input.Cards {
		cards[i] = domain.Flashcard{
			ID:           uuid.New(),
			UserID:       userID,
			CollectionID: input.CollectionID,
			Front:        strings.TrimSpace(c.Front),
			Back:         strings.TrimSpace(c.Back),
			Source:       domain.FlashcardSourceAIGenerated,
			Scheduling:   domain.NewSchedulingState(now),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if c.Edited {
			delta.AcceptedEdited++
		} else {
			delta.AcceptedDirect++
		}
	}

	var created []domain.Flashcard
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.cards.CreateBulk(txCtx, cards)
		if createErr != nil {
			return fmt.Errorf("create flashcards: %w", createErr)
		}

		if statsErr := s.generations.AddStats(txCtx, userID, delta); statsErr != nil {
			return fmt.Errorf("update stats: %w", statsErr)
		}

		if delErr := s.generations.Delete(txCtx, userID, gen.ID); delErr != nil {
			return fmt.Errorf("delete generation: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &input.CollectionID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"flashcards_added": len(created),
				"source":           domain.FlashcardSourceAIGenerated.String(),
				"generation_id":    gen.ID.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "generated flashcards accepted",
		slog.String("user_id", userID.String()),
		slog.String("generation_id", gen.ID.String()),
		slog.Int("direct", delta.AcceptedDirect),
		slog.Int("edited", delta.AcceptedEdited),
	)

	return &AcceptResult{Created: len(created), Flashcards: created}, nil
}

// GetStats returns the caller's generation counters. A user who never generated
// anything gets zeroed stats.
func (s *Service) GetStats(ctx context.Context) (*domain.GenerationStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.generations.GetStats(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.GenerationStats{UserID: userID}, nil
		}
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

// PurgeExpired deletes every generation past its expiry and returns how many were removed.
func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	n, err := s.generations.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired generations: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired generations purged", slog.Int("count", n))
	}
	return n, nil
}
