package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined label that can be attached to flashcards across
// collections. Deleting a category unlinks its cards but keeps them.
type Category struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	FlashcardCount int // computed field, not stored in DB
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CategorySort is the column a category listing is ordered by.
type CategorySort string

const (
	CategorySortName      CategorySort = "name"
	CategorySortCreatedAt CategorySort = "created_at"
	CategorySortUpdatedAt CategorySort = "updated_at"
)

// IsValid reports whether s names a sortable column.
func (s CategorySort) IsValid() bool {
	switch s {
	case CategorySortName, CategorySortCreatedAt, CategorySortUpdatedAt:
		return true
	}
	return false
}

// CategoryListParams pages and orders a category listing.
type CategoryListParams struct {
	Limit  int
	Offset int
	Sort   CategorySort
	Desc   bool
}
