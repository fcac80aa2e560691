package domain

import (
	"time"

	"github.com/google/uuid"
)

// FlashcardCandidate is a front/back pair proposed by the generator and not yet saved.
type FlashcardCandidate struct {
	Front string
	Back  string
}

// GenerationSession keeps generated candidates until the user accepts them or
// the session expires.
type GenerationSession struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CollectionID uuid.UUID
	Candidates   []FlashcardCandidate
	TextLength   int
	MaxCards     int
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// IsExpired reports whether the session can no longer be accepted.
func (s *GenerationSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// GenerationStats holds per-user counters of generated and accepted candidates.
type GenerationStats struct {
	UserID              uuid.UUID
	TotalGenerated      int
	TotalAcceptedDirect int
	TotalAcceptedEdited int
	UpdatedAt           time.Time
}

// AcceptedTotal is the number of candidates turned into flashcards.
func (s GenerationStats) AcceptedTotal() int {
	return s.TotalAcceptedDirect + s.TotalAcceptedEdited
}

// AcceptanceRate is the share of generated candidates that were accepted, 0..1.
// It is zero until something was generated.
func (s GenerationStats) AcceptanceRate() float64 {
	if s.TotalGenerated == 0 {
		return 0
	}
	return float64(s.AcceptedTotal()) / float64(s.TotalGenerated)
}

// EditRate is the share of accepted candidates that were edited first, 0..1.
// It is zero until something was accepted.
func (s GenerationStats) EditRate() float64 {
	accepted := s.AcceptedTotal()
	if accepted == 0 {
		return 0
	}
	return float64(s.TotalAcceptedEdited) / float64(accepted)
}

// GenerationStatsDelta is added to the stored counters.
type GenerationStatsDelta struct {
	Generated      int
	AcceptedDirect int
	AcceptedEdited int
}
