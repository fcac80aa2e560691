package rest

import (
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Shared
// ---------------------------------------------------------------------------

type paginationResponse struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

func newPagination(total, limit, offset int) paginationResponse {
	return paginationResponse{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasNext: offset+limit < total,
		HasPrev: offset > 0,
	}
}

type listResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// ---------------------------------------------------------------------------
// Collections & flashcards
// ---------------------------------------------------------------------------

type collectionResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	FlashcardCount int       `json:"flashcard_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCollectionResponse(c domain.Collection) collectionResponse {
	return collectionResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Description:    c.Description,
		FlashcardCount: c.CardCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type flashcardResponse struct {
	ID             string    `json:"id"`
	CollectionID   string    `json:"collection_id"`
	CategoryID     *string   `json:"category_id"`
	Front          string    `json:"front"`
	Back           string    `json:"back"`
	Source         string    `json:"source"`
	Repetitions    int       `json:"repetitions"`
	EaseFactor     float64   `json:"ease_factor"`
	IntervalDays   int       `json:"interval_days"`
	NextReviewDate time.Time `json:"next_review_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toFlashcardResponse(c domain.Flashcard) flashcardResponse {
	var categoryID *string
	if c.CategoryID != nil {
		id := c.CategoryID.String()
		categoryID = &id
	}
	return flashcardResponse{
		ID:             c.ID.String(),
		CollectionID:   c.CollectionID.String(),
		CategoryID:     categoryID,
		Front:          c.Front,
		Back:           c.Back,
		Source:         lowerEnum(c.Source.String()),
		Repetitions:    c.Scheduling.Repetitions,
		EaseFactor:     c.Scheduling.EaseFactor,
		IntervalDays:   c.Scheduling.IntervalDays,
		NextReviewDate: c.Scheduling.NextReviewDate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toFlashcardResponses(cards []domain.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, len(cards))
	for i, c := range cards {
		out[i] = toFlashcardResponse(c)
	}
	return out
}

type categoryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	FlashcardCount int       `json:"flashcard_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		FlashcardCount: c.FlashcardCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Study
// ---------------------------------------------------------------------------

type sessionResponse struct {
	ID            string     `json:"id"`
	CollectionID  string     `json:"collection_id"`
	SessionType   string     `json:"session_type"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at"`
	CardsReviewed int        `json:"cards_reviewed"`
	DurationMs    *int64     `json:"session_duration_ms"`
	AccuracyRate  *float64   `json:"accuracy_rate"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toSessionResponse(s domain.StudySession) sessionResponse {
	return sessionResponse{
		ID:            s.ID.String(),
		CollectionID:  s.CollectionID.String(),
		SessionType:   lowerEnum(s.Mode.String()),
		Status:        lowerEnum(s.Status.String()),
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		CardsReviewed: s.CardsReviewedCount,
		DurationMs:    s.DurationMs,
		AccuracyRate:  s.AccuracyRate,
		CreatedAt:     s.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Generation
// ---------------------------------------------------------------------------

type candidateDTO struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type generationStatsResponse struct {
	TotalGenerated      int     `json:"total_generated"`
	TotalAcceptedDirect int     `json:"total_accepted_direct"`
	TotalAcceptedEdited int     `json:"total_accepted_edited"`
	AcceptanceRate      float64 `json:"acceptance_rate"`
	EditRate            float64 `json:"edit_rate"`
}

func toGenerationStatsResponse(s domain.GenerationStats) generationStatsResponse {
	return generationStatsResponse{
		TotalGenerated:      s.TotalGenerated,
		TotalAcceptedDirect: s.TotalAcceptedDirect,
		TotalAcceptedEdited: s.TotalAcceptedEdited,
		AcceptanceRate:      s.AcceptanceRate(),
		EditRate:            s.EditRate(),
	}
}

// ---------------------------------------------------------------------------
// Learning stats
// ---------------------------------------------------------------------------

type cardCountsResponse struct {
	Total    int `json:"total"`
	New      int `json:"new"`
	Due      int `json:"due"`
	Reviewed int `json:"reviewed"`
}

type sessionAggregatesResponse struct {
	Total             int      `json:"total"`
	Completed         int      `json:"completed"`
	CardsReviewed     int      `json:"cards_reviewed"`
	AccuracyRate      *float64 `json:"accuracy_rate"`
	AverageDurationMs *int64   `json:"average_duration_ms"`
}

type dailyReviewsResponse struct {
	Date          string   `json:"date"`
	CardsReviewed int      `json:"cards_reviewed"`
	AccuracyRate  *float64 `json:"accuracy_rate"`
}

type learningStatsResponse struct {
	Period   string                    `json:"period"`
	Cards    cardCountsResponse        `json:"cards"`
	Sessions sessionAggregatesResponse `json:"sessions"`
	ByDay    []dailyReviewsResponse    `json:"by_day"`
}

func toLearningStatsResponse(s domain.LearningStats) learningStatsResponse {
	byDay := make([]dailyReviewsResponse, len(s.ByDay))
	for i, d := range s.ByDay {
		byDay[i] = dailyReviewsResponse{
			Date:          d.Date.Format(time.DateOnly),
			CardsReviewed: d.Reviews,
			AccuracyRate:  d.AccuracyRate,
		}
	}
	return learningStatsResponse{
		Period: lowerEnum(s.Period.String()),
		Cards: cardCountsResponse{
			Total:    s.Cards.Total,
			New:      s.Cards.New,
			Due:      s.Cards.Due,
			Reviewed: s.Cards.Reviewed,
		},
		Sessions: sessionAggregatesResponse{
			Total:             s.Sessions.Sessions,
			Completed:         s.Sessions.Completed,
			CardsReviewed:     s.Sessions.Reviews,
			AccuracyRate:      s.Sessions.AccuracyRate,
			AverageDurationMs: s.Sessions.AverageDurationMs,
		},
		ByDay: byDay,
	}
}
