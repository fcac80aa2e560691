// Package session implements the StudySession repository using PostgreSQL.
// Partial updates and filtered listings are built with squirrel; the rest is raw SQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, collection_id, mode, status, started_at, ended_at,
	cards_reviewed_count, duration_ms, accuracy_rate, created_at, updated_at`

const createSQL = `
INSERT INTO study_sessions (id, user_id, collection_id, mode, status, started_at, cards_reviewed_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND user_id = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return session, nil
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Reviews on the same session are serialized by it.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByIDForUpdateSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return session, nil
}

// List returns the user's sessions, newest first, with the total matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.StudySession, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.Eq{"user_id": userID}
	if filter.CollectionID != nil {
		where["collection_id"] = *filter.CollectionID
	}
	if filter.Mode != nil {
		where["mode"] = string(*filter.Mode)
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("study_sessions").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count sessions query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(sessionColumns).
		From("study_sessions").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list sessions query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]domain.StudySession, 0, filter.Limit)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new study session and returns the persisted domain.StudySession.
func (r *Repo) Create(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	startedAt := session.StartedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		session.ID,
		session.UserID,
		session.CollectionID,
		string(session.Mode),
		string(session.Status),
		startedAt,
		session.CardsReviewedCount,
		now,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", session.ID)
	}

	return created, nil
}

// Update writes the non-nil fields of patch. A COMPLETED session is never
// modified: the update matches no row and domain.ErrNotFound is returned.
func (r *Repo) Update(ctx context.Context, userID, sessionID uuid.UUID, patch domain.SessionPatch) (*domain.StudySession, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, userID, sessionID)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := postgres.Builder().
		Update("study_sessions").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
		Where(squirrel.NotEq{"status": string(domain.SessionStatusCompleted)}).
		Suffix("RETURNING " + sessionColumns)

	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
	}
	if patch.EndedAt != nil {
		q = q.Set("ended_at", patch.EndedAt.UTC())
	}
	if patch.CardsReviewedCount != nil {
		q = q.Set("cards_reviewed_count", *patch.CardsReviewedCount)
	}
	if patch.DurationMs != nil {
		q = q.Set("duration_ms", *patch.DurationMs)
	}
	if patch.AccuracyRate != nil {
		q = q.Set("accuracy_rate", *patch.AccuracyRate)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update session query: %w", err)
	}

	updated, err := scanSession(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanSession scans a single session row.
func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var (
		s      domain.StudySession
		mode   string
		status string
	)

	err := row.Scan(
		&s.ID, &s.UserID, &s.CollectionID, &mode, &status, &s.StartedAt, &s.EndedAt,
		&s.CardsReviewedCount, &s.DurationMs, &s.AccuracyRate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Mode = domain.StudyMode(mode)
	s.Status = domain.SessionStatus(status)
	return &s, nil
}
