package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default SM-2 scheduling values for a card that has never been reviewed.
const (
	DefaultEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	DefaultIntervalDays = 1
)

// SchedulingState is the SM-2 state embedded in every flashcard.
type SchedulingState struct {
	Repetitions    int
	EaseFactor     float64
	IntervalDays   int
	NextReviewDate time.Time
}

// NewSchedulingState returns the state assigned to a freshly created card.
func NewSchedulingState(now time.Time) SchedulingState {
	return SchedulingState{
		Repetitions:    0,
		EaseFactor:     DefaultEaseFactor,
		IntervalDays:   DefaultIntervalDays,
		NextReviewDate: now,
	}
}

// Flashcard is a front/back card belonging to a collection.
type Flashcard struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CollectionID uuid.UUID
	CategoryID   *uuid.UUID
	Front        string
	Back         string
	Source       FlashcardSource
	Scheduling   SchedulingState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsNew reports whether the card has never been successfully reviewed.
func (c *Flashcard) IsNew() bool {
	return c.Scheduling.Repetitions == 0
}

// IsDue returns true if the card was reviewed before and its next review date has arrived.
// NEW cards are never due; they are selected through the learn policy instead.
func (c *Flashcard) IsDue(now time.Time) bool {
	return c.Scheduling.Repetitions > 0 && !c.Scheduling.NextReviewDate.After(now)
}

// SchedulingUpdate pairs a flashcard with its recomputed scheduling state.
type SchedulingUpdate struct {
	FlashcardID uuid.UUID
	State       SchedulingState
}

// Collection groups flashcards owned by a single user.
type Collection struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CardCount   int // computed field, not stored in DB
}

// CollectionUpdateParams holds the collection fields to change. Nil means unchanged;
// an empty Description clears it.
type CollectionUpdateParams struct {
	Name        *string
	Description *string
}

// CollectionSort is the column a collection listing is ordered by.
type CollectionSort string

const (
	CollectionSortName      CollectionSort = "name"
	CollectionSortCreatedAt CollectionSort = "created_at"
)

// CollectionListParams pages and orders a collection listing.
type CollectionListParams struct {
	Limit  int
	Offset int
	Sort   CollectionSort
	Desc   bool
}

// FlashcardUpdateParams holds the flashcard fields to change. Nil means unchanged;
// ClearCategory unlinks the card from its category.
type FlashcardUpdateParams struct {
	Front         *string
	Back          *string
	CategoryID    *uuid.UUID
	ClearCategory bool
}

// FlashcardFilter narrows a collection's card listing.
type FlashcardFilter struct {
	CategoryID *uuid.UUID
}
