package flashcard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

//go:generate moq -out flashcard_repo_mock_test.go -pkg flashcard . flashcardRepo
//go:generate moq -out collection_repo_mock_test.go -pkg flashcard . collectionRepo
//go:generate moq -out category_repo_mock_test.go -pkg flashcard . categoryRepo
//go:generate moq -out audit_logger_mock_test.go -pkg flashcard . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg flashcard . txManager

type flashcardRepo interface {
	CreateBulk(ctx context.Context, cards []domain.Flashcard) ([]domain.Flashcard, error)
	GetByID(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.Flashcard, error)
	ListPage(ctx context.Context, userID, collectionID uuid.UUID, filter domain.FlashcardFilter, limit, offset int) ([]domain.Flashcard, int, error)
	Update(ctx context.Context, userID, flashcardID uuid.UUID, params domain.FlashcardUpdateParams) (*domain.Flashcard, error)
	Delete(ctx context.Context, userID, flashcardID uuid.UUID) error
}

type collectionRepo interface {
	GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxFrontLength   = 200
	MaxBackLength    = 500
	MaxBulkCards     = 50
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Service manages flashcards inside the caller's collections.
type Service struct {
	cards       flashcardRepo
	collections collectionRepo
	categories  categoryRepo
	audit       auditLogger
	tx          txManager
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new Flashcard service.
func NewService(
	log *slog.Logger,
	cards flashcardRepo,
	collections collectionRepo,
	categories categoryRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		cards:       cards,
		collections: collections,
		categories:  categories,
		audit:       audit,
		tx:          tx,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With("service", "flashcard"),
	}
}

// FlashcardList is one page of flashcards plus the unpaged total.
type FlashcardList struct {
	Flashcards []domain.Flashcard
	Total      int
}
