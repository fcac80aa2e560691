package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// StartSessionResult is a freshly created session with the cards selected for it.
type StartSessionResult struct {
	Session *domain.StudySession
	Cards   []domain.Flashcard
}

// ReviewResult is the scheduling outcome of a single review.
type ReviewResult struct {
	FlashcardID    uuid.UUID
	State          domain.SchedulingState
	NextReviewDate time.Time
	RepeatToday    bool
}

// BatchReviewResult summarizes a batch review.
// Skipped lists flashcards that are not part of the session's collection.
type BatchReviewResult struct {
	Processed int
	Results   []ReviewResult
	Skipped   []uuid.UUID
}

// SessionList is one page of sessions plus the unpaged total.
type SessionList struct {
	Sessions []domain.StudySession
	Total    int
}
