// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const flashcardCountExpr = `(SELECT count(*) FROM flashcards WHERE flashcards.category_id = categories.id)`

const categoryColumns = `id, user_id, name, created_at, updated_at, ` + flashcardCountExpr + ` AS flashcard_count`

const createSQL = `
INSERT INTO categories (id, user_id, name, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
RETURNING ` + categoryColumns

const getByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1 AND user_id = $2`

const renameSQL = `
UPDATE categories
SET name = $3, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + categoryColumns

const deleteSQL = `
DELETE FROM categories
WHERE id = $1 AND user_id = $2`

const countSQL = `
SELECT count(*) FROM categories WHERE user_id = $1`

var sortColumns = map[domain.CategorySort]string{
	domain.CategorySortName:      "name",
	domain.CategorySortCreatedAt: "created_at",
	domain.CategorySortUpdatedAt: "updated_at",
}

// Create inserts a category for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	created, err := scanCategory(querier.QueryRow(ctx, createSQL, id, userID, name))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return created, nil
}

// Rename changes the category's name.
// Returns domain.ErrNotFound if the category does not belong to the user.
func (r *Repo) Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCategory(querier.QueryRow(ctx, renameSQL, categoryID, userID, name))
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}

	return updated, nil
}

// Delete removes a category. Its flashcards stay and lose the link through
// the ON DELETE SET NULL foreign key.
func (r *Repo) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, categoryID, userID)
	if err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}

	return nil
}

// GetByID returns a category with its flashcard count.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(querier.QueryRow(ctx, getByIDSQL, categoryID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}

	return c, nil
}

// List returns a page of the user's categories and the total number they own.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, params domain.CategoryListParams) ([]domain.Category, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	sortColumn, ok := sortColumns[params.Sort]
	if !ok {
		sortColumn = "created_at"
	}
	direction := " ASC"
	if params.Desc {
		direction = " DESC"
	}

	sql, args, err := postgres.Builder().
		Select(categoryColumns).
		From("categories").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(sortColumn+direction, "id"+direction).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list categories query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0, params.Limit)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, total, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.FlashcardCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
