// Package collection implements the Collection repository using PostgreSQL.
// Static queries are raw SQL; listing and partial updates are built with squirrel.
package collection

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

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const cardCountExpr = `(SELECT count(*) FROM flashcards WHERE flashcards.collection_id = collections.id)`

const collectionColumns = `id, user_id, name, description, created_at, updated_at, ` + cardCountExpr + ` AS card_count`

const createSQL = `
INSERT INTO collections (id, user_id, name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + collectionColumns

const getByIDSQL = `
SELECT ` + collectionColumns + `
FROM collections
WHERE id = $1 AND user_id = $2`

const deleteSQL = `
DELETE FROM collections
WHERE id = $1 AND user_id = $2`

const countSQL = `
SELECT count(*) FROM collections WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a collection for the user. A nil ID is replaced by a fresh UUID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, c *domain.Collection) (*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createSQL, id, userID, c.Name, c.Description)

	created, err := scanCollection(row)
	if err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}

	return created, nil
}

// Update applies the non-nil fields of params. An empty description clears it.
// Returns domain.ErrNotFound if the collection does not belong to the user.
func (r *Repo) Update(ctx context.Context, userID, collectionID uuid.UUID, params domain.CollectionUpdateParams) (*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := postgres.Builder().
		Update("collections").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": collectionID, "user_id": userID}).
		Suffix("RETURNING " + collectionColumns)

	if params.Name != nil {
		q = q.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			q = q.Set("description", nil)
		} else {
			q = q.Set("description", *params.Description)
		}
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update collection query: %w", err)
	}

	updated, err := scanCollection(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collection", collectionID)
	}

	return updated, nil
}

// Delete removes a collection and, through the foreign keys, its flashcards,
// study sessions and pending generations.
func (r *Repo) Delete(ctx context.Context, userID, collectionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, collectionID, userID)
	if err != nil {
		return postgres.MapError(err, "collection", collectionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection %s: %w", collectionID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a collection with its card count.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCollection(querier.QueryRow(ctx, getByIDSQL, collectionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "collection", collectionID)
	}

	return c, nil
}

// List returns a page of the user's collections and the total number they own.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, params domain.CollectionListParams) ([]domain.Collection, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	total, err := r.Count(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	sortColumn := "created_at"
	if params.Sort == domain.CollectionSortName {
		sortColumn = "name"
	}
	direction := " ASC"
	if params.Desc {
		direction = " DESC"
	}

	sql, args, err := postgres.Builder().
		Select(collectionColumns).
		From("collections").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(sortColumn+direction, "id"+direction).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list collections query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	collections := make([]domain.Collection, 0, params.Limit)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate collections: %w", err)
	}

	return collections, total, nil
}

// Count returns how many collections the user owns.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count collections: %w", err)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var c domain.Collection
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.CardCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
