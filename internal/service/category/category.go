package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateCategory creates a new category for the authenticated user.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.categories.Create(txCtx, userID, name)
		if createErr != nil {
			return fmt.Errorf("create category: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
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

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("name", name),
	)

	return created, nil
}

// GetCategory returns one of the caller's categories with its flashcard count.
func (s *Service) GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}

	c, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListCategories returns a page of the caller's categories, newest first by default.
func (s *Service) ListCategories(ctx context.Context, input ListCategoriesInput) (*CategoryList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CategoryListParams{
		Limit:  input.Limit,
		Offset: input.Offset,
		Sort:   input.Sort,
		Desc:   input.Order != "asc",
	}
	if params.Limit == 0 {
		params.Limit = DefaultListLimit
	}
	if params.Sort == "" {
		params.Sort = domain.CategorySortCreatedAt
	}

	items, total, err := s.categories.List(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return &CategoryList{Categories: items, Total: total}, nil
}

// UpdateCategory renames a category.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.categories.GetByID(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	name := strings.TrimSpace(input.Name)

	var updated *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var renameErr error
		updated, renameErr = s.categories.Rename(txCtx, userID, input.CategoryID, name)
		if renameErr != nil {
			return fmt.Errorf("rename category: %w", renameErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &input.CategoryID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name, "new": name},
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

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.String("category_id", input.CategoryID.String()),
	)

	return updated, nil
}

// DeleteCategory deletes a category. Its flashcards are kept and lose the link.
func (s *Service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if categoryID == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}

	c, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.categories.Delete(txCtx, userID, categoryID); deleteErr != nil {
			return fmt.Errorf("delete category: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &categoryID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":            map[string]any{"old": c.Name},
				"flashcard_count": c.FlashcardCount,
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

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.Int("unlinked_flashcards", c.FlashcardCount),
	)

	return nil
}
