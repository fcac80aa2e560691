package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateCollection creates a new collection for the authenticated user.
func (s *Service) CreateCollection(ctx context.Context, input CreateCollectionInput) (*domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	description := trimOrNil(input.Description)

	count, err := s.collections.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count collections: %w", err)
	}
	if count >= MaxCollectionsPerUser {
		return nil, domain.NewValidationError("collections", fmt.Sprintf("limit reached (max %d)", MaxCollectionsPerUser))
	}

	var created *domain.Collection
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.collections.Create(txCtx, userID, &domain.Collection{
			Name:        name,
			Description: description,
		})
		if createErr != nil {
			return fmt.Errorf("create collection: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
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

	s.log.InfoContext(ctx, "collection created",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", created.ID.String()),
		slog.String("name", name),
	)

	return created, nil
}

// GetCollection returns one of the caller's collections with its card count.
func (s *Service) GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if collectionID == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}

	c, err := s.collections.GetByID(ctx, userID, collectionID)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return c, nil
}

// ListCollections returns a page of the caller's collections.
func (s *Service) ListCollections(ctx context.Context, input ListCollectionsInput) (*CollectionList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CollectionListParams{
		Limit:  input.Limit,
		Offset: input.Offset,
		Sort:   input.Sort,
		Desc:   input.Order != "asc",
	}
	if params.Limit == 0 {
		params.Limit = DefaultListLimit
	}
	if params.Sort == "" {
		params.Sort = domain.CollectionSortCreatedAt
	}

	items, total, err := s.collections.List(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	return &CollectionList{Collections: items, Total: total}, nil
}

// UpdateCollection changes a collection's name or description.
func (s *Service) UpdateCollection(ctx context.Context, input UpdateCollectionInput) (*domain.Collection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.collections.GetByID(ctx, userID, input.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	params := domain.CollectionUpdateParams{}
	changes := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
		changes["name"] = map[string]any{"old": old.Name, "new": name}
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		params.Description = &desc
		changes["description"] = map[string]any{"new": desc}
	}

	var updated *domain.Collection
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.collections.Update(txCtx, userID, input.CollectionID, params)
		if updateErr != nil {
			return fmt.Errorf("update collection: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &input.CollectionID,
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

	s.log.InfoContext(ctx, "collection updated",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", input.CollectionID.String()),
	)

	return updated, nil
}

// DeleteCollection deletes a collection and, through the foreign key, its flashcards
// and study sessions.
func (s *Service) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if collectionID == uuid.Nil {
		return domain.NewValidationError("collection_id", "required")
	}

	c, err := s.collections.GetByID(ctx, userID, collectionID)
	if err != nil {
		return fmt.Errorf("get collection: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.collections.Delete(txCtx, userID, collectionID); deleteErr != nil {
			return fmt.Errorf("delete collection: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCollection,
			EntityID:   &collectionID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":       map[string]any{"old": c.Name},
				"card_count": c.CardCount,
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

	s.log.InfoContext(ctx, "collection deleted",
		slog.String("user_id", userID.String()),
		slog.String("collection_id", collectionID.String()),
		slog.String("name", c.Name),
	)

	return nil
}
