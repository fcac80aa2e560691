package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCollection creates an empty collection owned by userID.
func SeedCollection(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Collection {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Collection{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Collection " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collections (id, user_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.UserID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection insert: %v", err)
	}

	return c
}

// SeedFlashcard creates a card in the collection with the given scheduling state.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, c domain.Collection, state domain.SchedulingState) domain.Flashcard {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Flashcard{
		ID:           uuid.New(),
		UserID:       c.UserID,
		CollectionID: c.ID,
		Front:        "front " + suffix,
		Back:         "back " + suffix,
		Source:       domain.FlashcardSourceManual,
		Scheduling:   state,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	card.Scheduling.NextReviewDate = state.NextReviewDate.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, user_id, collection_id, front, back, source,
		     repetitions, ease_factor, interval_days, next_review_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		card.ID, card.UserID, card.CollectionID, card.Front, card.Back, string(card.Source),
		card.Scheduling.Repetitions, card.Scheduling.EaseFactor, card.Scheduling.IntervalDays,
		card.Scheduling.NextReviewDate, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard insert: %v", err)
	}

	return card
}

// SeedSession creates an ACTIVE study session over the collection.
func SeedSession(t *testing.T, pool *pgxpool.Pool, c domain.Collection, mode domain.StudyMode) domain.StudySession {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.StudySession{
		ID:           uuid.New(),
		UserID:       c.UserID,
		CollectionID: c.ID,
		Mode:         mode,
		Status:       domain.SessionStatusActive,
		StartedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_sessions (id, user_id, collection_id, mode, status, started_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.UserID, s.CollectionID, string(s.Mode), string(s.Status), s.StartedAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}

// SeedCategory creates a category owned by userID.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Category {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Category " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, user_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.UserID, c.Name, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return c
}

// AssignCategory links an existing flashcard to a category.
func AssignCategory(t *testing.T, pool *pgxpool.Pool, cardID, categoryID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE flashcards SET category_id = $2 WHERE id = $1`, cardID, categoryID)
	if err != nil {
		t.Fatalf("testhelper: AssignCategory update: %v", err)
	}
}

// SeedCompletedSession creates a COMPLETED session with the given statistics.
func SeedCompletedSession(t *testing.T, pool *pgxpool.Pool, c domain.Collection, startedAt time.Time, reviewed int, accuracy float64, durationMs int64) domain.StudySession {
	t.Helper()

	startedAt = startedAt.UTC().Truncate(time.Microsecond)
	endedAt := startedAt.Add(time.Duration(durationMs) * time.Millisecond)
	s := domain.StudySession{
		ID:                 uuid.New(),
		UserID:             c.UserID,
		CollectionID:       c.ID,
		Mode:               domain.StudyModeReview,
		Status:             domain.SessionStatusCompleted,
		StartedAt:          startedAt,
		EndedAt:            &endedAt,
		CardsReviewedCount: reviewed,
		DurationMs:         &durationMs,
		AccuracyRate:       &accuracy,
		CreatedAt:          startedAt,
		UpdatedAt:          endedAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_sessions (id, user_id, collection_id, mode, status, started_at, ended_at,
		     cards_reviewed_count, duration_ms, accuracy_rate, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.UserID, s.CollectionID, string(s.Mode), string(s.Status), s.StartedAt, s.EndedAt,
		s.CardsReviewedCount, s.DurationMs, s.AccuracyRate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedSession insert: %v", err)
	}

	return s
}
