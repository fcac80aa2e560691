package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	StartSession(ctx context.Context, input study.StartSessionInput) (*study.StartSessionResult, error)
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (*study.ReviewResult, error)
	ReviewBatch(ctx context.Context, input study.ReviewBatchInput) (*study.BatchReviewResult, error)
	CompleteSession(ctx context.Context, input study.CompleteSessionInput) (*domain.StudySession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.StudySession, error)
	ListSessions(ctx context.Context, input study.ListSessionsInput) (*study.SessionList, error)
	PauseSession(ctx context.Context, sessionID uuid.UUID) (*domain.StudySession, error)
	ResumeSession(ctx context.Context, sessionID uuid.UUID) (*domain.StudySession, error)
}

// StudyHandler serves study session REST endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type startSessionRequest struct {
	CollectionID uuid.UUID `json:"collection_id"`
	SessionType  string    `json:"session_type"`
	MaxCards     int       `json:"max_cards"`
}

type startSessionResponse struct {
	Session sessionResponse     `json:"session"`
	Cards   []flashcardResponse `json:"cards"`
}

type reviewItem struct {
	FlashcardID    uuid.UUID `json:"flashcard_id"`
	Quality        *int      `json:"quality"`
	ResponseTimeMs *int      `json:"response_time_ms"`
	DifficultyFelt *string   `json:"difficulty_felt"`
}

// reviewRequest is either a single review or a batch. Type selects the shape;
// without it a non-empty reviews array means batch.
type reviewRequest struct {
	Type string `json:"type"`
	reviewItem
	Reviews []reviewItem `json:"reviews"`
}

const (
	reviewTypeSingle = "single"
	reviewTypeBatch  = "batch"
)

type reviewOutcome struct {
	FlashcardID    string    `json:"flashcard_id"`
	NextReviewDate time.Time `json:"next_review_date"`
	Repetitions    int       `json:"repetitions"`
	EaseFactor     float64   `json:"ease_factor"`
	IntervalDays   int       `json:"interval_days"`
	RepeatToday    bool      `json:"repeat_today"`
}

type singleReviewResponse struct {
	Success bool `json:"success"`
	reviewOutcome
}

type batchReviewResponse struct {
	Success        bool            `json:"success"`
	ProcessedCount int             `json:"processed_count"`
	Results        []reviewOutcome `json:"results"`
	Skipped        []string        `json:"skipped"`
}

type completeSessionRequest struct {
	SessionDurationMs int64    `json:"session_duration_ms"`
	CardsReviewed     int      `json:"cards_reviewed"`
	AccuracyRate      *float64 `json:"accuracy_rate"`
}

// Next handles POST /study/next. It starts a session and returns the cards to study.
func (h *StudyHandler) Next(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.StartSession(r.Context(), study.StartSessionInput{
		CollectionID: req.CollectionID,
		Mode:         domain.StudyMode(upperEnum(req.SessionType)),
		MaxCards:     req.MaxCards,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, startSessionResponse{
		Session: toSessionResponse(*result.Session),
		Cards:   toFlashcardResponses(result.Cards),
	})
}

// Review handles POST /study/sessions/{id}/review for both single and batch reviews.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	kind := req.Type
	if kind == "" {
		kind = reviewTypeSingle
		if len(req.Reviews) > 0 {
			kind = reviewTypeBatch
		}
	}

	switch kind {
	case reviewTypeSingle:
		h.reviewSingle(w, r, sessionID, req.reviewItem)
	case reviewTypeBatch:
		h.reviewBatch(w, r, sessionID, req.Reviews)
	default:
		h.handleError(w, r, domain.NewValidationError("type", "must be single or batch"))
	}
}

func (h *StudyHandler) reviewSingle(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, item reviewItem) {
	event, verr := toReviewEvent("", item)
	if verr != nil {
		h.handleError(w, r, verr)
		return
	}

	result, err := h.svc.ReviewCard(r.Context(), study.ReviewCardInput{SessionID: sessionID, Review: event})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, singleReviewResponse{Success: true, reviewOutcome: toReviewOutcome(*result)})
}

func (h *StudyHandler) reviewBatch(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, items []reviewItem) {
	events := make([]domain.ReviewEvent, 0, len(items))
	var fieldErrs []domain.FieldError
	for i, item := range items {
		event, err := toReviewEvent(reviewPrefix(i), item)
		if err != nil {
			fieldErrs = append(fieldErrs, err.Errors...)
			continue
		}
		events = append(events, event)
	}
	if len(fieldErrs) > 0 {
		h.handleError(w, r, domain.NewValidationErrors(fieldErrs))
		return
	}

	result, err := h.svc.ReviewBatch(r.Context(), study.ReviewBatchInput{SessionID: sessionID, Reviews: events})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := batchReviewResponse{
		Success:        true,
		ProcessedCount: result.Processed,
		Results:        make([]reviewOutcome, len(result.Results)),
		Skipped:        make([]string, len(result.Skipped)),
	}
	for i, res := range result.Results {
		resp.Results[i] = toReviewOutcome(res)
	}
	for i, id := range result.Skipped {
		resp.Skipped[i] = id.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Complete handles PUT /study/sessions/{id}/complete.
func (h *StudyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req completeSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.svc.CompleteSession(r.Context(), study.CompleteSessionInput{
		SessionID:     sessionID,
		DurationMs:    req.SessionDurationMs,
		CardsReviewed: req.CardsReviewed,
		AccuracyRate:  req.AccuracyRate,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(*session))
}

// Get handles GET /study/sessions/{id}.
func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(*session))
}

// List handles GET /study/sessions.
func (h *StudyHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListSessions(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	list, err := h.svc.ListSessions(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	limit := input.Limit
	if limit == 0 {
		limit = study.DefaultListLimit
	}
	data := make([]sessionResponse, len(list.Sessions))
	for i, s := range list.Sessions {
		data[i] = toSessionResponse(s)
	}
	writeJSON(w, http.StatusOK, listResponse[sessionResponse]{
		Data:       data,
		Pagination: newPagination(list.Total, limit, input.Offset),
	})
}

// Pause handles POST /study/sessions/{id}/pause.
func (h *StudyHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.PauseSession)
}

// Resume handles POST /study/sessions/{id}/resume.
func (h *StudyHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.ResumeSession)
}

func (h *StudyHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*domain.StudySession, error),
) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := fn(r.Context(), sessionID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(*session))
}

func (h *StudyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func parseListSessions(r *http.Request) (study.ListSessionsInput, error) {
	var input study.ListSessionsInput
	var err error

	if input.CollectionID, err = queryUUID(r, "collection_id"); err != nil {
		return input, err
	}
	if raw := r.URL.Query().Get("session_type"); raw != "" {
		mode := domain.StudyMode(upperEnum(raw))
		input.Mode = &mode
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		return input, err
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		return input, err
	}
	return input, nil
}

// toReviewEvent maps a wire review to the domain. Quality is required, so a
// missing value is reported here rather than silently treated as 0.
func toReviewEvent(prefix string, item reviewItem) (domain.ReviewEvent, *domain.ValidationError) {
	if item.Quality == nil {
		return domain.ReviewEvent{}, domain.NewValidationError(prefix+"quality", "required")
	}

	event := domain.ReviewEvent{
		FlashcardID:    item.FlashcardID,
		Quality:        *item.Quality,
		ResponseTimeMs: item.ResponseTimeMs,
	}
	if item.DifficultyFelt != nil {
		d := domain.DifficultyFelt(upperEnum(*item.DifficultyFelt))
		event.DifficultyFelt = &d
	}
	return event, nil
}

func toReviewOutcome(res study.ReviewResult) reviewOutcome {
	return reviewOutcome{
		FlashcardID:    res.FlashcardID.String(),
		NextReviewDate: res.NextReviewDate,
		Repetitions:    res.State.Repetitions,
		EaseFactor:     res.State.EaseFactor,
		IntervalDays:   res.State.IntervalDays,
		RepeatToday:    res.RepeatToday,
	}
}

func reviewPrefix(i int) string {
	return fmt.Sprintf("reviews[%d].", i)
}
