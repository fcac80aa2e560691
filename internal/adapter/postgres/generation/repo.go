// Package generation stores pending AI generation sessions and per-user
// generation counters in PostgreSQL. Candidates are kept as JSONB.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides generation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new generation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const generationColumns = `id, user_id, collection_id, candidates, text_length, max_cards, created_at, expires_at`

const createSQL = `
INSERT INTO generation_sessions (id, user_id, collection_id, candidates, text_length, max_cards, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + generationColumns

const getByIDSQL = `
SELECT ` + generationColumns + `
FROM generation_sessions
WHERE id = $1 AND user_id = $2`

const deleteSQL = `
DELETE FROM generation_sessions
WHERE id = $1 AND user_id = $2`

const deleteExpiredSQL = `
DELETE FROM generation_sessions
WHERE expires_at <= $1`

const getStatsSQL = `
SELECT user_id, total_generated, total_accepted_direct, total_accepted_edited, updated_at
FROM generation_stats
WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Generation sessions
// ---------------------------------------------------------------------------

// Create stores a generation session with its candidates.
func (r *Repo) Create(ctx context.Context, gen *domain.GenerationSession) (*domain.GenerationSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	candidates, err := marshalCandidates(gen.Candidates)
	if err != nil {
		return nil, fmt.Errorf("generation %s: %w", gen.ID, err)
	}

	row := querier.QueryRow(ctx, createSQL,
		gen.ID,
		gen.UserID,
		gen.CollectionID,
		candidates,
		gen.TextLength,
		gen.MaxCards,
		gen.CreatedAt.UTC().Truncate(time.Microsecond),
		gen.ExpiresAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanGeneration(row)
	if err != nil {
		return nil, postgres.MapError(err, "generation", gen.ID)
	}

	return created, nil
}

// GetByID returns a generation session owned by the user, expired or not.
func (r *Repo) GetByID(ctx context.Context, userID, generationID uuid.UUID) (*domain.GenerationSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	gen, err := scanGeneration(querier.QueryRow(ctx, getByIDSQL, generationID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "generation", generationID)
	}

	return gen, nil
}

// Delete removes a generation session owned by the user.
func (r *Repo) Delete(ctx context.Context, userID, generationID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, generationID, userID)
	if err != nil {
		return postgres.MapError(err, "generation", generationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("generation %s: %w", generationID, domain.ErrNotFound)
	}

	return nil
}

// DeleteExpired removes every session whose expiry is at or before now.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired generations: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

// AddStats adds delta to the user's counters, creating the row on first use.
func (r *Repo) AddStats(ctx context.Context, userID uuid.UUID, delta domain.GenerationStatsDelta) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("generation_stats").
		Columns("user_id", "total_generated", "total_accepted_direct", "total_accepted_edited", "updated_at").
		Values(userID, delta.Generated, delta.AcceptedDirect, delta.AcceptedEdited, squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			total_generated = generation_stats.total_generated + EXCLUDED.total_generated,
			total_accepted_direct = generation_stats.total_accepted_direct + EXCLUDED.total_accepted_direct,
			total_accepted_edited = generation_stats.total_accepted_edited + EXCLUDED.total_accepted_edited,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert generation stats query: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "generation_stats", userID)
	}

	return nil
}

// GetStats returns the user's counters. Returns domain.ErrNotFound if the user
// never generated anything.
func (r *Repo) GetStats(ctx context.Context, userID uuid.UUID) (*domain.GenerationStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.GenerationStats
	err := querier.QueryRow(ctx, getStatsSQL, userID).Scan(
		&s.UserID, &s.TotalGenerated, &s.TotalAcceptedDirect, &s.TotalAcceptedEdited, &s.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "generation_stats", userID)
	}

	return &s, nil
}

// ---------------------------------------------------------------------------
// Row scanning and JSONB helpers
// ---------------------------------------------------------------------------

// candidateJSON is the stored form of domain.FlashcardCandidate.
type candidateJSON struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

func marshalCandidates(candidates []domain.FlashcardCandidate) ([]byte, error) {
	out := make([]candidateJSON, len(candidates))
	for i, c := range candidates {
		out[i] = candidateJSON{Front: c.Front, Back: c.Back}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal candidates: %w", err)
	}
	return data, nil
}

func unmarshalCandidates(data []byte) ([]domain.FlashcardCandidate, error) {
	if len(data) == 0 {
		return []domain.FlashcardCandidate{}, nil
	}

	var stored []candidateJSON
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal candidates: %w", err)
	}

	candidates := make([]domain.FlashcardCandidate, len(stored))
	for i, c := range stored {
		candidates[i] = domain.FlashcardCandidate{Front: c.Front, Back: c.Back}
	}
	return candidates, nil
}

func scanGeneration(row pgx.Row) (*domain.GenerationSession, error) {
	var (
		g          domain.GenerationSession
		candidates []byte
	)

	err := row.Scan(&g.ID, &g.UserID, &g.CollectionID, &candidates, &g.TextLength, &g.MaxCards, &g.CreatedAt, &g.ExpiresAt)
	if err != nil {
		return nil, err
	}

	g.Candidates, err = unmarshalCandidates(candidates)
	if err != nil {
		return nil, fmt.Errorf("generation %s: %w", g.ID, err)
	}

	return &g, nil
}
