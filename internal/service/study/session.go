package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// StartSession selects a batch of cards from the collection and opens an ACTIVE session.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*StartSessionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = domain.StudyModeMixed
	}
	maxCards := input.MaxCards
	if maxCards == 0 {
		maxCards = s.defaultMaxCards
	}

	if _, err := s.collections.GetByID(ctx, userID, input.CollectionID); err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	pool, err := s.cards.ListByCollection(ctx, userID, input.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	if len(pool) == 0 {
		return nil, domain.ErrEmptyCollection
	}

	now := s.clock.Now()
	selected := s.selector.Select(pool, mode, maxCards, now)
	if len(selected) == 0 {
		return nil, domain.ErrEmptyCollection
	}

	session := &domain.StudySession{
		ID:           uuid.New(),
		UserID:       userID,
		CollectionID: input.CollectionID,
		Mode:         mode,
		Status:       domain.SessionStatusActive,
		StartedAt:    now,
	}

	var created *domain.StudySession
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.sessions.Create(txCtx, session)
		if createErr != nil {
			return fmt.Errorf("create session: %w", createErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStudySession,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"collection_id": input.CollectionID.String(),
				"mode":          mode.String(),
				"cards":         len(selected),
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("mode", mode.String()),
		slog.Int("cards", len(selected)),
	)

	return &StartSessionResult{Session: created, Cards: selected}, nil
}

// CompleteSession closes an ACTIVE session. The stored review counter is kept
// when the client reports fewer cards than the server has already counted.
func (s *Service) CompleteSession(ctx context.Context, input CompleteSessionInput) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var completed *domain.StudySession
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.activeSessionForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		status := domain.SessionStatusCompleted
		count := max(session.CardsReviewedCount, input.CardsReviewed)
		duration := input.DurationMs

		completed, err = s.sessions.Update(txCtx, userID, session.ID, domain.SessionPatch{
			Status:             &status,
			EndedAt:            &now,
			CardsReviewedCount: &count,
			DurationMs:         &duration,
			AccuracyRate:       input.AccuracyRate,
		})
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStudySession,
			EntityID:   &session.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"status":         map[string]any{"old": session.Status.String(), "new": status.String()},
				"cards_reviewed": count,
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	s.log.InfoContext(ctx, "session completed",
		slog.String("user_id", userID.String()),
		slog.String("session_id", completed.ID.String()),
		slog.Int("cards_reviewed", completed.CardsReviewedCount),
	)

	return completed, nil
}

// GetSession returns a session owned by the caller.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// ListSessions returns the caller's sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) (*SessionList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	sessions, total, err := s.sessions.List(ctx, userID, domain.SessionFilter{
		CollectionID: input.CollectionID,
		Mode:         input.Mode,
		Limit:        limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &SessionList{Sessions: sessions, Total: total}, nil
}

// PauseSession moves an ACTIVE session to PAUSED. Reviews are rejected until it is resumed.
func (s *Service) PauseSession(ctx context.Context, sessionID uuid.UUID) (*domain.StudySession, error) {
	return s.transition(ctx, sessionID, domain.SessionStatusActive, domain.SessionStatusPaused)
}

// ResumeSession moves a PAUSED session back to ACTIVE.
func (s *Service) ResumeSession(ctx context.Context, sessionID uuid.UUID) (*domain.StudySession, error) {
	return s.transition(ctx, sessionID, domain.SessionStatusPaused, domain.SessionStatusActive)
}

func (s *Service) transition(ctx context.Context, sessionID uuid.UUID, from, to domain.SessionStatus) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}

	var updated *domain.StudySession
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByIDForUpdate(txCtx, userID, sessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if session.Status != from {
			return fmt.Errorf("session is %s, want %s: %w", session.Status, from, domain.ErrConflict)
		}

		updated, err = s.sessions.Update(txCtx, userID, sessionID, domain.SessionPatch{Status: &to})
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStudySession,
			EntityID:   &sessionID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"status": map[string]any{"old": from.String(), "new": to.String()},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s session: %w", to, err)
	}

	s.log.InfoContext(ctx, "session status changed",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
		slog.String("status", to.String()),
	)

	return updated, nil
}

// activeSessionForUpdate locks the session row. A session that is missing,
// owned by someone else, or not ACTIVE is reported as not found.
func (s *Service) activeSessionForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	session, err := s.sessions.GetByIDForUpdate(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.IsActive() {
		return nil, fmt.Errorf("session %s is %s: %w", sessionID, session.Status, domain.ErrNotFound)
	}
	return session, nil
}
