package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatsPeriod bounds the session history that learning statistics look at.
type StatsPeriod string

const (
	StatsPeriodWeek  StatsPeriod = "WEEK"
	StatsPeriodMonth StatsPeriod = "MONTH"
	StatsPeriodYear  StatsPeriod = "YEAR"
	StatsPeriodAll   StatsPeriod = "ALL"
)

func (p StatsPeriod) String() string { return string(p) }

func (p StatsPeriod) IsValid() bool {
	switch p {
	case StatsPeriodWeek, StatsPeriodMonth, StatsPeriodYear, StatsPeriodAll:
		return true
	}
	return false
}

// Since returns the start of the period ending at now, or nil for ALL.
func (p StatsPeriod) Since(now time.Time) *time.Time {
	var since time.Time
	switch p {
	case StatsPeriodWeek:
		since = now.AddDate(0, 0, -7)
	case StatsPeriodMonth:
		since = now.AddDate(0, -1, 0)
	case StatsPeriodYear:
		since = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &since
}

// StatsScope narrows learning statistics to one collection and to sessions
// started at or after Since. Nil fields do not filter.
type StatsScope struct {
	CollectionID *uuid.UUID
	Since        *time.Time
}

// CardCounts splits a set of flashcards by scheduling state.
type CardCounts struct {
	Total    int
	New      int // never successfully reviewed
	Due      int // reviewed before and due at the reference time
	Reviewed int // repetitions > 0
}

// SessionAggregates summarizes study sessions.
type SessionAggregates struct {
	Sessions  int
	Completed int
	Reviews   int
	// AccuracyRate averages the accuracy reported by completed sessions, 0..1.
	AccuracyRate *float64
	// AverageDurationMs averages the duration reported by completed sessions.
	AverageDurationMs *int64
}

// DailyReviews is the review volume of one calendar day (UTC).
type DailyReviews struct {
	Date         time.Time
	Reviews      int
	AccuracyRate *float64
}

// LearningStats is the learning progress of a user, optionally narrowed to one collection.
type LearningStats struct {
	Period   StatsPeriod
	Cards    CardCounts
	Sessions SessionAggregates
	ByDay    []DailyReviews
}
