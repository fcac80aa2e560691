package collection

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// CreateCollectionInput holds the parameters for creating a collection.
type CreateCollectionInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCollectionInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCollectionInput holds the parameters for updating a collection.
type UpdateCollectionInput struct {
	CollectionID uuid.UUID
	Name         *string
	Description  *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateCollectionInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCollectionsInput holds paging and ordering for a collection listing.
type ListCollectionsInput struct {
	Limit  int
	Offset int
	Sort   domain.CollectionSort
	Order  string
}

// Validate checks all fields and collects all errors.
func (i ListCollectionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	switch i.Sort {
	case "", domain.CollectionSortName, domain.CollectionSortCreatedAt:
	default:
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be name or created_at"})
	}
	switch i.Order {
	case "", "asc", "desc":
	default:
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(raw string) []domain.FieldError {
	name := strings.TrimSpace(raw)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > 100 {
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}
