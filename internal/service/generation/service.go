package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

//go:generate moq -out generator_mock_test.go -pkg generation . generator
//go:generate moq -out generation_repo_mock_test.go -pkg generation . generationRepo
//go:generate moq -out collection_repo_mock_test.go -pkg generation . collectionRepo
//go:generate moq -out flashcard_repo_mock_test.go -pkg generation . flashcardRepo
//go:generate moq -out quota_mock_test.go -pkg generation . quota
//go:generate moq -out audit_logger_mock_test.go -pkg generation . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg generation . txManager

// generator turns source text into flashcard candidates.
type generator interface {
	Generate(ctx context.Context, text string, maxCards int) ([]domain.FlashcardCandidate, error)
}

type generationRepo interface {
	Create(ctx context.Context, gen *domain.GenerationSession) (*domain.GenerationSession, error)
	GetByID(ctx context.Context, userID, generationID uuid.UUID) (*domain.GenerationSession, error)
	Delete(ctx context.Context, userID, generationID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	AddStats(ctx context.Context, userID uuid.UUID, delta domain.GenerationStatsDelta) error
	GetStats(ctx context.Context, userID uuid.UUID) (*domain.GenerationStats, error)
}

type collectionRepo interface {
	GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
}

type flashcardRepo interface {
	CreateBulk(ctx context.Context, cards []domain.Flashcard) ([]domain.Flashcard, error)
}

// quota admits or rejects a generation request for a key.
type quota interface {
	Allow(key string) bool
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MinTextLength   = 100
	MaxTextLength   = 10_000
	DefaultMaxCards = 10
	MaxCards        = 20
	MaxAccepted     = 20
	DefaultTTL      = 30 * time.Minute
)

// Service generates flashcard candidates from text and turns accepted ones into cards.
type Service struct {
	gen         generator
	generations generationRepo
	collections collectionRepo
	cards       flashcardRepo
	quota       quota
	audit       auditLogger
	tx          txManager
	ttl         time.Duration
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new Generation service. A non-positive ttl uses DefaultTTL.
func NewService(
	log *slog.Logger,
	gen generator,
	generations generationRepo,
	collections collectionRepo,
	cards flashcardRepo,
	quota quota,
	audit auditLogger,
	tx txManager,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		gen:         gen,
		generations: generations,
		collections: collections,
		cards:       cards,
		quota:       quota,
		audit:       audit,
		tx:          tx,
		ttl:         ttl,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With("service", "generation"),
	}
}

// GenerateResult is a stored generation awaiting acceptance.
type GenerateResult struct {
	GenerationID uuid.UUID
	Candidates   []domain.FlashcardCandidate
	TextLength   int
	MaxCards     int
	ExpiresAt    time.Time
}

// AcceptResult reports the cards created from accepted candidates.
type AcceptResult struct {
	Created    int
	Flashcards []domain.Flashcard
}
