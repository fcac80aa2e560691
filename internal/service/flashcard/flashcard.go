package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateFlashcard adds one card to a collection owned by the caller.
func (s *Service) CreateFlashcard(ctx context.Context, input CreateFlashcardInput) (*domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.CreateBulk(ctx, CreateBulkInput{
		CollectionID: input.CollectionID,
		Cards:        []CardText{{Front: input.Front, Back: input.Back, CategoryID: input.CategoryID}},
		Source:       input.Source,
	})
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

// CreateBulk adds several cards to one collection in a single transaction.
// Every new card starts with the default scheduling state, due immediately.
func (s *Service) CreateBulk(ctx context.Context, input CreateBulkInput) ([]domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.collections.GetByID(ctx, userID, input.CollectionID); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	if err := s.checkCategories(ctx, userID, input.Cards); err != nil {
		return nil, err
	}

	source := input.Source
	if source == "" {
		source = domain.FlashcardSourceManual
	}

	now := s.now()
	cards := make([]domain.Flashcard, len(input.Cards))
	for i, c := range input.Cards {
		cards[i] = domain.Flashcard{
			ID:           uuid.New(),
			UserID:       userID,
			CollectionID: input.CollectionID,
			CategoryID:   c.CategoryID,
			Front:        strings.TrimSpace(c.Front),
			Back:         strings.TrimSpace(c.Back),
			Source:       source,
			Scheduling:   domain.NewSchedulingState(now),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	var created []domain.Flashcard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.cards.CreateBulk(txCtx, cards)
		if createErr != nil {
			return fmt.Errorf("create flashcards: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &input.CollectionID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"flashcards_added": len(created),
				"source":           source.String(),
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

	s.log.InfoContext(ctx, "flashcards created",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", input.CollectionID.String()),
		slog.Int("count", len(created)),
		slog.String("source", source.String()),
	)

	return created, nil
}

// ListByCollection returns a page of cards in one of the caller's collections,
// oldest first. A category filter must name one of the caller's categories.
func (s *Service) ListByCollection(ctx context.Context, input ListInput) (*FlashcardList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.collections.GetByID(ctx, userID, input.CollectionID); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	filter := domain.FlashcardFilter{CategoryID: input.CategoryID}
	cards, total, err := s.cards.ListPage(ctx, userID, input.CollectionID, filter, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return &FlashcardList{Flashcards: cards, Total: total}, nil
}

// UpdateFlashcard edits a card's text or category. Scheduling state is left untouched.
func (s *Service) UpdateFlashcard(ctx context.Context, input UpdateFlashcardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.FlashcardUpdateParams{}
	changes := map[string]any{}
	if input.Front != nil {
		front := strings.TrimSpace(*input.Front)
		params.Front = &front
		changes["front"] = map[string]any{"new": front}
	}
	if input.Back != nil {
		back := strings.TrimSpace(*input.Back)
		params.Back = &back
		changes["back"] = map[string]any{"new": back}
	}
	switch {
	case input.ClearCategory:
		params.ClearCategory = true
		changes["category_id"] = map[string]any{"new": nil}
	case input.CategoryID != nil:
		if _, err := s.categories.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
		params.CategoryID = input.CategoryID
		changes["category_id"] = map[string]any{"new": input.CategoryID.String()}
	}

	var updated *domain.Flashcard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.cards.Update(txCtx, userID, input.FlashcardID, params)
		if updateErr != nil {
			return fmt.Errorf("update flashcard: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeFlashcard,
			EntityID:   &input.FlashcardID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flashcard updated",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", input.FlashcardID.String()),
	)

	return updated, nil
}

// DeleteFlashcard removes one of the caller's cards.
func (s *Service) DeleteFlashcard(ctx context.Context, flashcardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if flashcardID == uuid.Nil {
		return domain.NewValidationError("flashcard_id", "required")
	}

	card, err := s.cards.GetByID(ctx, userID, flashcardID)
	if err != nil {
		return fmt.Errorf("get flashcard: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.cards.Delete(txCtx, userID, flashcardID); deleteErr != nil {
			return fmt.Errorf("delete flashcard: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeFlashcard,
			EntityID:   &flashcardID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"front":         map[string]any{"old": card.Front},
				"collection_id": card.CollectionID.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "flashcard deleted",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", flashcardID.String()),
	)

	return nil
}

// checkCategories verifies that every category referenced by the new cards
// belongs to the caller. Each distinct category is looked up once.
func (s *Service) checkCategories(ctx context.Context, userID uuid.UUID, cards []CardText) error {
	seen := make(map[uuid.UUID]bool)
	for _, c := range cards {
		if c.CategoryID == nil || seen[*c.CategoryID] {
			continue
		}
		seen[*c.CategoryID] = true
		if _, err := s.categories.GetByID(ctx, userID, *c.CategoryID); err != nil {
			return fmt.Errorf("get category: %w", err)
		}
	}
	return nil
}
