package collection

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

//go:generate moq -out collection_repo_mock_test.go -pkg collection . collectionRepo
//go:generate moq -out audit_logger_mock_test.go -pkg collection . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg collection . txManager

type collectionRepo interface {
	Create(ctx context.Context, userID uuid.UUID, c *domain.Collection) (*domain.Collection, error)
	GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
	Update(ctx context.Context, userID, collectionID uuid.UUID, params domain.CollectionUpdateParams) (*domain.Collection, error)
	Delete(ctx context.Context, userID, collectionID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params domain.CollectionListParams) ([]domain.Collection, int, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxCollectionsPerUser = 200
	DefaultListLimit      = 50
	MaxListLimit          = 100
)

// Service provides collection management operations.
type Service struct {
	collections collectionRepo
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Collection service.
func NewService(
	log *slog.Logger,
	collections collectionRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		collections: collections,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "collection"),
	}
}

// CollectionList is one page of collections plus the unpaged total.
type CollectionList struct {
	Collections []domain.Collection
	Total       int
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
