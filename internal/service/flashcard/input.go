package flashcard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// CardText is the content of a new card. CategoryID is optional.
type CardText struct {
	Front      string
	Back       string
	CategoryID *uuid.UUID
}

// CreateFlashcardInput holds the parameters for creating a single flashcard.
type CreateFlashcardInput struct {
	CollectionID uuid.UUID
	CategoryID   *uuid.UUID
	Front        string
	Back         string
	Source       domain.FlashcardSource
}

// Validate checks all fields and collects all errors.
func (i CreateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	errs = append(errs, ValidateText("", i.Front, i.Back)...)
	if i.Source != "" && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be MANUAL or AI_GENERATED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateBulkInput holds cards created together in one collection.
type CreateBulkInput struct {
	CollectionID uuid.UUID
	Cards        []CardText
	Source       domain.FlashcardSource
}

// Validate checks all fields and collects all errors.
func (i CreateBulkInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if len(i.Cards) == 0 {
		errs = append(errs, domain.FieldError{Field: "flashcards", Message: "at least one flashcard is required"})
	}
	if len(i.Cards) > MaxBulkCards {
		errs = append(errs, domain.FieldError{Field: "flashcards", Message: fmt.Sprintf("max %d flashcards", MaxBulkCards)})
	}
	for idx, c := range i.Cards {
		errs = append(errs, ValidateText(fmt.Sprintf("flashcards[%d].", idx), c.Front, c.Back)...)
	}
	if i.Source != "" && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be MANUAL or AI_GENERATED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateFlashcardInput holds the parameters for editing a flashcard.
// CategoryID moves the card to another category; ClearCategory unlinks it.
type UpdateFlashcardInput struct {
	FlashcardID   uuid.UUID
	Front         *string
	Back          *string
	CategoryID    *uuid.UUID
	ClearCategory bool
}

// Validate checks all fields and collects all errors.
func (i UpdateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}
	if i.Front == nil && i.Back == nil && i.CategoryID == nil && !i.ClearCategory {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.CategoryID != nil && i.ClearCategory {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "cannot set and clear at once"})
	}
	if i.CategoryID != nil && *i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "invalid"})
	}
	if i.Front != nil {
		errs = append(errs, validateSide("front", *i.Front, MaxFrontLength)...)
	}
	if i.Back != nil {
		errs = append(errs, validateSide("back", *i.Back, MaxBackLength)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput pages through a collection's flashcards, optionally only those
// in one category.
type ListInput struct {
	CollectionID uuid.UUID
	CategoryID   *uuid.UUID
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ValidateText checks the front and back of a card. prefix is prepended to field names.
func ValidateText(prefix, front, back string) []domain.FieldError {
	var errs []domain.FieldError
	errs = append(errs, validateSide(prefix+"front", front, MaxFrontLength)...)
	errs = append(errs, validateSide(prefix+"back", back, MaxBackLength)...)
	return errs
}

func validateSide(field, value string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if utf8.RuneCountInString(v) > maxLen {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)}}
	}
	return nil
}
