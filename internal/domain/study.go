package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudySession tracks a user's study session from start to completion.
// A COMPLETED session is immutable.
type StudySession struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CollectionID       uuid.UUID
	Mode               StudyMode
	Status             SessionStatus
	StartedAt          time.Time
	EndedAt            *time.Time
	CardsReviewedCount int
	DurationMs         *int64
	AccuracyRate       *float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsActive reports whether the session accepts reviews.
func (s *StudySession) IsActive() bool {
	return s.Status == SessionStatusActive
}

// ReviewEvent is a single graded recall of a flashcard. It is consumed by the
// scheduler and never persisted on its own.
type ReviewEvent struct {
	FlashcardID    uuid.UUID
	Quality        int
	ResponseTimeMs *int
	DifficultyFelt *DifficultyFelt
}

// SessionPatch lists the session fields a single update may change.
// Nil fields are left untouched.
type SessionPatch struct {
	Status             *SessionStatus
	EndedAt            *time.Time
	CardsReviewedCount *int
	DurationMs         *int64
	AccuracyRate       *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p SessionPatch) IsEmpty() bool {
	return p.Status == nil && p.EndedAt == nil && p.CardsReviewedCount == nil &&
		p.DurationMs == nil && p.AccuracyRate == nil
}

// SessionFilter narrows a session listing. Results are newest first.
type SessionFilter struct {
	CollectionID *uuid.UUID
	Mode         *StudyMode
	Limit        int
	Offset       int
}
