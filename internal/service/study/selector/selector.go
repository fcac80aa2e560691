// Package selector picks the batch of flashcards shown in a study session.
package selector

import (
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// DefaultNewCardRatio is the share of a MIXED batch reserved for new cards.
const DefaultNewCardRatio = 0.3

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// lockedShuffler makes a seeded source safe for concurrent sessions.
type lockedShuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (l *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rnd.Shuffle(n, swap)
}

// Selector implements the session card-selection policy.
// It only reads scheduling state; cards are never modified.
type Selector struct {
	shuffler     Shuffler
	newCardRatio float64
}

// Option configures a Selector.
type Option func(*Selector)

// WithShuffler replaces the random source used for MIXED batches.
// Pass a seeded *rand.Rand for reproducible output.
func WithShuffler(s Shuffler) Option {
	return func(sel *Selector) {
		if s != nil {
			sel.shuffler = s
		}
	}
}

// WithSeed seeds the MIXED shuffle so a process produces a reproducible
// sequence of batches. Zero keeps the process-global random source.
func WithSeed(seed uint64) Option {
	return func(sel *Selector) {
		if seed != 0 {
			sel.shuffler = &lockedShuffler{rnd: rand.New(rand.NewPCG(seed, seed))}
		}
	}
}

// WithNewCardRatio overrides the share of MIXED slots reserved for new cards.
// Values outside (0, 1) are ignored.
func WithNewCardRatio(r float64) Option {
	return func(sel *Selector) {
		if r > 0 && r < 1 {
			sel.newCardRatio = r
		}
	}
}

// New creates a Selector.
func New(opts ...Option) *Selector {
	s := &Selector{
		shuffler:     globalShuffler{},
		newCardRatio: DefaultNewCardRatio,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns at most maxCards distinct cards from pool for the given mode.
//
// When the mode policy yields nothing, new cards are tried across the whole
// pool, then every previously reviewed card regardless of its due date.
// An empty result therefore means the pool itself was empty (or maxCards <= 0);
// the caller decides how to report that.
func (s *Selector) Select(pool []domain.Flashcard, mode domain.StudyMode, maxCards int, now time.Time) []domain.Flashcard {
	if maxCards <= 0 || len(pool) == 0 {
		return []domain.Flashcard{}
	}

	var selected []domain.Flashcard
	switch mode {
	case domain.StudyModeReview:
		selected = DueCards(pool, now, maxCards)
	case domain.StudyModeLearn:
		selected = NewCards(pool, maxCards)
	default:
		selected = s.mixed(pool, maxCards, now)
	}

	if len(selected) == 0 {
		selected = Fallback(pool, maxCards)
	}
	return selected
}

func (s *Selector) mixed(pool []domain.Flashcard, maxCards int, now time.Time) []domain.Flashcard {
	maxNew := int(math.Ceil(float64(maxCards) * s.newCardRatio))
	maxDue := max(0, maxCards-maxNew)

	due := DueCards(pool, now, maxDue)
	fresh := NewCards(pool, maxNew)

	combined := make([]domain.Flashcard, 0, maxCards)
	combined = append(combined, due...)
	combined = append(combined, fresh...)

	if remaining := maxCards - len(combined); remaining > 0 {
		used := make(map[uuid.UUID]struct{}, len(combined))
		for _, c := range combined {
			used[c.ID] = struct{}{}
		}
		for _, c := range pool {
			if remaining == 0 {
				break
			}
			if _, ok := used[c.ID]; ok {
				continue
			}
			used[c.ID] = struct{}{}
			combined = append(combined, c)
			remaining--
		}
	}

	s.shuffler.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})

	if len(combined) > maxCards {
		combined = combined[:maxCards]
	}
	return combined
}

// DueCards returns previously reviewed cards whose next review date is not after now,
// earliest first. Ties keep pool order.
func DueCards(pool []domain.Flashcard, now time.Time, limit int) []domain.Flashcard {
	return pick(pool, limit, func(c *domain.Flashcard) bool { return c.IsDue(now) })
}

// NewCards returns never-reviewed cards ordered by next review date.
func NewCards(pool []domain.Flashcard, limit int) []domain.Flashcard {
	return pick(pool, limit, func(c *domain.Flashcard) bool { return c.IsNew() })
}

// Fallback is the emergency policy: new cards first, otherwise every reviewed
// card ignoring the due-date gate.
func Fallback(pool []domain.Flashcard, limit int) []domain.Flashcard {
	if fresh := NewCards(pool, limit); len(fresh) > 0 {
		return fresh
	}
	return pick(pool, limit, func(c *domain.Flashcard) bool { return c.Scheduling.Repetitions > 0 })
}

func pick(pool []domain.Flashcard, limit int, keep func(*domain.Flashcard) bool) []domain.Flashcard {
	if limit <= 0 {
		return []domain.Flashcard{}
	}

	out := make([]domain.Flashcard, 0, min(limit, len(pool)))
	for i := range pool {
		if keep(&pool[i]) {
			out = append(out, pool[i])
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Flashcard) int {
		return a.Scheduling.NextReviewDate.Compare(b.Scheduling.NextReviewDate)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
