package study

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	DefaultMaxCards   = 20
	MaxCardsLimit     = 50
	MaxBatchReviews   = 20
	DefaultListLimit  = 20
	MaxListLimit      = 100
	MaxQuality        = 5
	maxResponseTimeMs = 600_000
)

// StartSessionInput holds the parameters for starting a study session.
// Zero Mode means MIXED, zero MaxCards means the service default.
type StartSessionInput struct {
	CollectionID uuid.UUID
	Mode         domain.StudyMode
	MaxCards     int
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "session_type", Message: "must be REVIEW, LEARN, or MIXED"})
	}
	if i.MaxCards < 0 || i.MaxCards > MaxCardsLimit {
		errs = append(errs, domain.FieldError{Field: "max_cards", Message: fmt.Sprintf("must be between 1 and %d", MaxCardsLimit)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewCardInput holds a single review within a session.
type ReviewCardInput struct {
	SessionID uuid.UUID
	Review    domain.ReviewEvent
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	errs = append(errs, validateReview("", i.Review)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewBatchInput holds several reviews submitted together.
type ReviewBatchInput struct {
	SessionID uuid.UUID
	Reviews   []domain.ReviewEvent
}

// Validate checks all fields and collects all errors.
// A flashcard reviewed twice in one batch is a conflict, not a field error.
func (i *ReviewBatchInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if len(i.Reviews) == 0 {
		errs = append(errs, domain.FieldError{Field: "reviews", Message: "at least one review required"})
	}
	if len(i.Reviews) > MaxBatchReviews {
		errs = append(errs, domain.FieldError{Field: "reviews", Message: fmt.Sprintf("max %d reviews", MaxBatchReviews)})
	}
	for idx, r := range i.Reviews {
		errs = append(errs, validateReview(fmt.Sprintf("reviews[%d].", idx), r)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	seen := make(map[uuid.UUID]struct{}, len(i.Reviews))
	for _, r := range i.Reviews {
		if _, dup := seen[r.FlashcardID]; dup {
			return fmt.Errorf("flashcard %s reviewed twice in one batch: %w", r.FlashcardID, domain.ErrConflict)
		}
		seen[r.FlashcardID] = struct{}{}
	}
	return nil
}

func validateReview(prefix string, r domain.ReviewEvent) []domain.FieldError {
	var errs []domain.FieldError

	if r.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: prefix + "flashcard_id", Message: "required"})
	}
	if r.Quality < 0 || r.Quality > MaxQuality {
		errs = append(errs, domain.FieldError{Field: prefix + "quality", Message: "must be between 0 and 5"})
	}
	if r.ResponseTimeMs != nil && (*r.ResponseTimeMs < 0 || *r.ResponseTimeMs > maxResponseTimeMs) {
		errs = append(errs, domain.FieldError{Field: prefix + "response_time_ms", Message: "must be between 0 and 600000"})
	}
	if r.DifficultyFelt != nil && !r.DifficultyFelt.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "difficulty_felt", Message: "invalid value"})
	}
	return errs
}

// CompleteSessionInput holds the client-reported totals for a finished session.
type CompleteSessionInput struct {
	SessionID     uuid.UUID
	DurationMs    int64
	CardsReviewed int
	AccuracyRate  *float64
}

// Validate checks all fields and collects all errors.
func (i *CompleteSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.DurationMs < 0 {
		errs = append(errs, domain.FieldError{Field: "session_duration_ms", Message: "must be non-negative"})
	}
	if i.CardsReviewed < 0 {
		errs = append(errs, domain.FieldError{Field: "cards_reviewed", Message: "must be non-negative"})
	}
	if i.AccuracyRate != nil && (*i.AccuracyRate < 0 || *i.AccuracyRate > 1) {
		errs = append(errs, domain.FieldError{Field: "accuracy_rate", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListSessionsInput holds the parameters for listing recent sessions.
type ListSessionsInput struct {
	CollectionID *uuid.UUID
	Mode         *domain.StudyMode
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i *ListSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Mode != nil && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "session_type", Message: "must be REVIEW, LEARN, or MIXED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
