package generation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
)

// GenerateInput holds the source text and target collection for a generation.
type GenerateInput struct {
	Text         string
	CollectionID uuid.UUID
	MaxCards     int
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	n := utf8.RuneCountInString(strings.TrimSpace(i.Text))
	if n < MinTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("must be at least %d characters", MinTextLength)})
	}
	if n > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("must be at most %d characters", MaxTextLength)})
	}
	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.MaxCards < 0 || i.MaxCards > MaxCards {
		errs = append(errs, domain.FieldError{Field: "max_cards", Message: fmt.Sprintf("must be between 1 and %d", MaxCards)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AcceptedCard is a candidate the user kept, possibly after editing it.
type AcceptedCard struct {
	Front  string
	Back   string
	Edited bool
}

// AcceptInput holds the candidates accepted from one generation.
type AcceptInput struct {
	GenerationID uuid.UUID
	CollectionID uuid.UUID
	Cards        []AcceptedCard
}

// Validate checks all fields and collects all errors.
func (i AcceptInput) Validate() error {
	var errs []domain.FieldError

	if i.GenerationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "generation_id", Message: "required"})
	}
	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if len(i.Cards) == 0 {
		errs = append(errs, domain.FieldError{Field: "accepted_cards", Message: "at least one card must be accepted"})
	}
	if len(i.Cards) > MaxAccepted {
		errs = append(errs, domain.FieldError{Field: "accepted_cards", Message: fmt.Sprintf("max %d cards", MaxAccepted)})
	}
	for idx, c := range i.Cards {
		errs = append(errs, flashcard.ValidateText(fmt.Sprintf("accepted_cards[%d].", idx), c.Front, c.Back)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
