// Package stats implements the read-only learning statistics queries over
// flashcards and study sessions.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides learning statistics backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CardCounts splits the user's flashcards by scheduling state as of now.
// Only the collection part of the scope applies; cards are not bounded by period.
func (r *Repo) CardCounts(ctx context.Context, userID uuid.UUID, scope domain.StatsScope, now time.Time) (domain.CardCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := postgres.Builder().
		Select("count(*)", "count(*) FILTER (WHERE repetitions = 0)").
		Column(squirrel.Expr("count(*) FILTER (WHERE repetitions > 0 AND next_review_date <= ?)", now)).
		Column("count(*) FILTER (WHERE repetitions > 0)").
		From("flashcards").
		Where(squirrel.Eq{"user_id": userID})
	if scope.CollectionID != nil {
		q = q.Where(squirrel.Eq{"collection_id": *scope.CollectionID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return domain.CardCounts{}, fmt.Errorf("build card counts query: %w", err)
	}

	var c domain.CardCounts
	if err := querier.QueryRow(ctx, sql, args...).Scan(&c.Total, &c.New, &c.Due, &c.Reviewed); err != nil {
		return domain.CardCounts{}, fmt.Errorf("count cards: %w", err)
	}

	return c, nil
}

// SessionAggregates summarizes the user's study sessions within the scope.
func (r *Repo) SessionAggregates(ctx context.Context, userID uuid.UUID, scope domain.StatsScope) (domain.SessionAggregates, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sessionsQuery(userID, scope,
		"count(*)",
		"count(*) FILTER (WHERE status = 'COMPLETED')",
		"coalesce(sum(cards_reviewed_count), 0)",
		"avg(accuracy_rate) FILTER (WHERE status = 'COMPLETED')",
		"round(avg(duration_ms) FILTER (WHERE status = 'COMPLETED'))::bigint",
	).ToSql()
	if err != nil {
		return domain.SessionAggregates{}, fmt.Errorf("build session aggregates query: %w", err)
	}

	var a domain.SessionAggregates
	err = querier.QueryRow(ctx, sql, args...).Scan(&a.Sessions, &a.Completed, &a.Reviews, &a.AccuracyRate, &a.AverageDurationMs)
	if err != nil {
		return domain.SessionAggregates{}, fmt.Errorf("aggregate sessions: %w", err)
	}

	return a, nil
}

// DailyReviews returns review volume per UTC day of session start, oldest first.
// Days without sessions are omitted.
func (r *Repo) DailyReviews(ctx context.Context, userID uuid.UUID, scope domain.StatsScope) ([]domain.DailyReviews, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sessionsQuery(userID, scope,
		"(started_at AT TIME ZONE 'UTC')::date AS day",
		"sum(cards_reviewed_count)",
		"avg(accuracy_rate)",
	).
		GroupBy("day").
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily reviews query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("daily reviews: %w", err)
	}
	defer rows.Close()

	days := []domain.DailyReviews{}
	for rows.Next() {
		var d domain.DailyReviews
		if err := rows.Scan(&d.Date, &d.Reviews, &d.AccuracyRate); err != nil {
			return nil, fmt.Errorf("scan daily reviews: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily reviews: %w", err)
	}

	return days, nil
}

func sessionsQuery(userID uuid.UUID, scope domain.StatsScope, columns ...string) squirrel.SelectBuilder {
	q := postgres.Builder().
		Select(columns...).
		From("study_sessions").
		Where(squirrel.Eq{"user_id": userID})
	if scope.CollectionID != nil {
		q = q.Where(squirrel.Eq{"collection_id": *scope.CollectionID})
	}
	if scope.Since != nil {
		q = q.Where(squirrel.GtOrEq{"started_at": *scope.Since})
	}
	return q
}
