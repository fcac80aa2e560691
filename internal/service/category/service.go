// Package category manages user-defined categories that group flashcards
// across collections.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

//go:generate moq -out category_repo_mock_test.go -pkg category . categoryRepo
//go:generate moq -out audit_logger_mock_test.go -pkg category . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg category . txManager

type categoryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*domain.Category, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params domain.CategoryListParams) ([]domain.Category, int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	MaxNameLength    = 100
)

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}

// CategoryList is one page of categories plus the unpaged total.
type CategoryList struct {
	Categories []domain.Category
	Total      int
}
