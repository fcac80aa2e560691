// Package flashcard implements the Flashcard repository using PostgreSQL.
// Scheduling state lives in the flashcards row itself.
package flashcard

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

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const flashcardColumns = `id, user_id, collection_id, category_id, front, back, source,
	repetitions, ease_factor, interval_days, next_review_date, created_at, updated_at`

var insertColumns = []string{
	"id", "user_id", "collection_id", "category_id", "front", "back", "source",
	"repetitions", "ease_factor", "interval_days", "next_review_date", "created_at", "updated_at",
}

const getByIDSQL = `
SELECT ` + flashcardColumns + `
FROM flashcards
WHERE id = $1 AND user_id = $2`

const listByCollectionSQL = `
SELECT ` + flashcardColumns + `
FROM flashcards
WHERE user_id = $1 AND collection_id = $2
ORDER BY created_at, id`

const getByIDsSQL = `
SELECT ` + flashcardColumns + `
FROM flashcards
WHERE user_id = $1 AND collection_id = $2 AND id = ANY($3)`

const updateSchedulingSQL = `
UPDATE flashcards
SET repetitions = $3, ease_factor = $4, interval_days = $5, next_review_date = $6, updated_at = now()
WHERE id = $1 AND user_id = $2`

const updateSchedulingReturningSQL = updateSchedulingSQL + `
RETURNING ` + flashcardColumns

const deleteSQL = `
DELETE FROM flashcards
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBulk inserts all cards in one statement and returns the stored rows.
func (r *Repo) CreateBulk(ctx context.Context, cards []domain.Flashcard) ([]domain.Flashcard, error) {
	if len(cards) == 0 {
		return nil, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := postgres.Builder().
		Insert("flashcards").
		Columns(insertColumns...).
		Suffix("RETURNING " + flashcardColumns)

	for _, c := range cards {
		q = q.Values(
			c.ID, c.UserID, c.CollectionID, c.CategoryID, c.Front, c.Back, string(c.Source),
			c.Scheduling.Repetitions, c.Scheduling.EaseFactor, c.Scheduling.IntervalDays,
			c.Scheduling.NextReviewDate, c.CreatedAt, c.UpdatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert flashcards query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "collection", cards[0].CollectionID)
	}

	created, err := collectFlashcards(rows, len(cards))
	if err != nil {
		return nil, postgres.MapError(err, "collection", cards[0].CollectionID)
	}

	return created, nil
}

// Update applies the non-nil fields and the category change. Scheduling
// columns are not touched.
func (r *Repo) Update(ctx context.Context, userID, flashcardID uuid.UUID, params domain.FlashcardUpdateParams) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := postgres.Builder().
		Update("flashcards").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": flashcardID, "user_id": userID}).
		Suffix("RETURNING " + flashcardColumns)

	if params.Front != nil {
		q = q.Set("front", *params.Front)
	}
	if params.Back != nil {
		q = q.Set("back", *params.Back)
	}
	switch {
	case params.ClearCategory:
		q = q.Set("category_id", nil)
	case params.CategoryID != nil:
		q = q.Set("category_id", *params.CategoryID)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update flashcard query: %w", err)
	}

	card, err := scanFlashcard(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", flashcardID)
	}

	return card, nil
}

// UpdateScheduling stores a recomputed SM-2 state and returns the updated card.
func (r *Repo) UpdateScheduling(ctx context.Context, userID, flashcardID uuid.UUID, state domain.SchedulingState) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSchedulingReturningSQL,
		flashcardID, userID,
		state.Repetitions, state.EaseFactor, state.IntervalDays, state.NextReviewDate,
	)

	card, err := scanFlashcard(row)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", flashcardID)
	}

	return card, nil
}

// BatchUpdateScheduling stores several states in one round trip using pgx.Batch.
// Returns domain.ErrNotFound if any card was not updated.
func (r *Repo) BatchUpdateScheduling(ctx context.Context, userID uuid.UUID, updates []domain.SchedulingUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(updateSchedulingSQL,
			u.FlashcardID, userID,
			u.State.Repetitions, u.State.EaseFactor, u.State.IntervalDays, u.State.NextReviewDate,
		)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	var updated int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return updated, postgres.MapError(err, "flashcard", updates[i].FlashcardID)
		}
		if tag.RowsAffected() == 0 {
			return updated, fmt.Errorf("flashcard %s: %w", updates[i].FlashcardID, domain.ErrNotFound)
		}
		updated += int(tag.RowsAffected())
	}

	return updated, nil
}

// Delete removes one of the user's cards.
func (r *Repo) Delete(ctx context.Context, userID, flashcardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, flashcardID, userID)
	if err != nil {
		return postgres.MapError(err, "flashcard", flashcardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", flashcardID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	card, err := scanFlashcard(querier.QueryRow(ctx, getByIDSQL, flashcardID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", flashcardID)
	}

	return card, nil
}

// ListByCollection returns every card of the collection, oldest first.
func (r *Repo) ListByCollection(ctx context.Context, userID, collectionID uuid.UUID) ([]domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCollectionSQL, userID, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards by collection: %w", err)
	}

	return collectFlashcards(rows, 0)
}

// ListPage returns a page of the collection's cards matching the filter,
// oldest first, and the filtered total.
func (r *Repo) ListPage(ctx context.Context, userID, collectionID uuid.UUID, filter domain.FlashcardFilter, limit, offset int) ([]domain.Flashcard, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.Eq{"user_id": userID, "collection_id": collectionID}
	if filter.CategoryID != nil {
		where["category_id"] = *filter.CategoryID
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("flashcards").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count flashcards query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count flashcards: %w", err)
	}

	pageSQL, pageArgs, err := postgres.Builder().
		Select(flashcardColumns).
		From("flashcards").
		Where(where).
		OrderBy("created_at", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list flashcards query: %w", err)
	}

	rows, err := querier.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list flashcards page: %w", err)
	}

	cards, err := collectFlashcards(rows, limit)
	if err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

// GetByIDs returns the cards of the collection whose IDs are listed. Unknown IDs
// and cards from other collections are silently omitted.
func (r *Repo) GetByIDs(ctx context.Context, userID, collectionID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	if len(ids) == 0 {
		return []domain.Flashcard{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, userID, collectionID, ids)
	if err != nil {
		return nil, fmt.Errorf("get flashcards by ids: %w", err)
	}

	return collectFlashcards(rows, len(ids))
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanFlashcard(row pgx.Row) (*domain.Flashcard, error) {
	var (
		c      domain.Flashcard
		source string
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.CollectionID, &c.CategoryID, &c.Front, &c.Back, &source,
		&c.Scheduling.Repetitions, &c.Scheduling.EaseFactor, &c.Scheduling.IntervalDays,
		&c.Scheduling.NextReviewDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Source = domain.FlashcardSource(source)
	return &c, nil
}

func collectFlashcards(rows pgx.Rows, capacity int) ([]domain.Flashcard, error) {
	defer rows.Close()

	cards := make([]domain.Flashcard, 0, capacity)
	for rows.Next() {
		c, err := scanFlashcard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}

	return cards, nil
}
