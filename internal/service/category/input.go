package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	if errs := validateName(i.Name); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCategoryInput renames a category.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCategoriesInput holds paging and ordering for a category listing.
// Order defaults to descending.
type ListCategoriesInput struct {
	Limit  int
	Offset int
	Sort   domain.CategorySort
	Order  string
}

// Validate checks all fields and collects all errors.
func (i ListCategoriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be name, created_at or updated_at"})
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
	if utf8.RuneCountInString(name) > MaxNameLength {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)}}
	}
	return nil
}
