package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study/selector"
)

//go:generate moq -out flashcard_repo_mock_test.go -pkg study . flashcardRepo
//go:generate moq -out collection_repo_mock_test.go -pkg study . collectionRepo
//go:generate moq -out session_repo_mock_test.go -pkg study . sessionRepo
//go:generate moq -out audit_logger_mock_test.go -pkg study . auditLogger
//go:generate moq -out tx_manager_mock_test.go -pkg study . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	ListByCollection(ctx context.Context, userID, collectionID uuid.UUID) ([]domain.Flashcard, error)
	GetByIDs(ctx context.Context, userID, collectionID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)
	UpdateScheduling(ctx context.Context, userID, flashcardID uuid.UUID, state domain.SchedulingState) (*domain.Flashcard, error)
	BatchUpdateScheduling(ctx context.Context, userID uuid.UUID, updates []domain.SchedulingUpdate) (int, error)
}

type collectionRepo interface {
	GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	Update(ctx context.Context, userID, sessionID uuid.UUID, patch domain.SessionPatch) (*domain.StudySession, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.StudySession, int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs study sessions: card selection, SM-2 reviews and session lifecycle.
type Service struct {
	cards           flashcardRepo
	collections     collectionRepo
	sessions        sessionRepo
	audit           auditLogger
	tx              txManager
	selector        *selector.Selector
	clock           clock
	log             *slog.Logger
	defaultMaxCards int
}

// NewService creates a new Study service.
// A nil selector gets the default MIXED ratio and a process-global random source.
func NewService(
	log *slog.Logger,
	cards flashcardRepo,
	collections collectionRepo,
	sessions sessionRepo,
	audit auditLogger,
	tx txManager,
	sel *selector.Selector,
	defaultMaxCards int,
) *Service {
	if sel == nil {
		sel = selector.New()
	}
	if defaultMaxCards <= 0 || defaultMaxCards > MaxCardsLimit {
		defaultMaxCards = DefaultMaxCards
	}

	return &Service{
		cards:           cards,
		collections:     collections,
		sessions:        sessions,
		audit:           audit,
		tx:              tx,
		selector:        sel,
		clock:           systemClock{},
		log:             log.With("service", "study"),
		defaultMaxCards: defaultMaxCards,
	}
}
