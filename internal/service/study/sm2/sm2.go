// Package sm2 implements the SuperMemo SM-2 review scheduler.
//
// Calculate is a pure function: no DB, no context, no logger. It never
// mutates its input and cannot fail for a quality in [0, 5]; range checks
// belong to the caller.
package sm2

import (
	"math"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// PassingQuality is the lowest quality counted as a successful recall.
const PassingQuality = 3

// MaxIntervalDays caps the review interval at roughly one hundred years so
// the next review date stays representable in the database.
const MaxIntervalDays = 36500

// Result is the outcome of a single review.
type Result struct {
	State domain.SchedulingState
	// RepeatToday is set for failed reviews: the card should come back
	// within the current session.
	RepeatToday bool
}

// Calculate returns the scheduling state that follows a review of the given quality.
func Calculate(state domain.SchedulingState, quality int, now time.Time) Result {
	if quality < PassingQuality {
		return Result{
			State: domain.SchedulingState{
				Repetitions:    0,
				EaseFactor:     math.Max(domain.MinEaseFactor, state.EaseFactor),
				IntervalDays:   1,
				NextReviewDate: now.AddDate(0, 0, 1),
			},
			RepeatToday: true,
		}
	}

	ease := NextEaseFactor(state.EaseFactor, quality)
	reps := state.Repetitions + 1

	var interval int
	switch reps {
	case 1:
		interval = 1
	case 2:
		interval = 6
	default:
		interval = int(math.Min(math.Round(float64(state.IntervalDays)*ease), MaxIntervalDays))
	}

	return Result{
		State: domain.SchedulingState{
			Repetitions:    reps,
			EaseFactor:     ease,
			IntervalDays:   interval,
			NextReviewDate: now.AddDate(0, 0, interval),
		},
	}
}

// NextEaseFactor applies the SM-2 ease adjustment for a passing quality,
// clamped at domain.MinEaseFactor.
func NextEaseFactor(ease float64, quality int) float64 {
	q := float64(5 - quality)
	return math.Max(domain.MinEaseFactor, ease+(0.1-q*(0.08+q*0.02)))
}
