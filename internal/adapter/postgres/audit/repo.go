// Package audit implements the append-only audit log repository using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, entity_type, entity_id, action, changes, created_at`

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	var (
		out        domain.AuditRecord
		entityType string
		action     string
		stored     []byte
	)
	err = querier.QueryRow(ctx, createSQL,
		record.ID,
		record.UserID,
		string(record.EntityType),
		record.EntityID,
		string(record.Action),
		changesJSON,
		record.CreatedAt.UTC().Truncate(time.Microsecond),
	).Scan(&out.ID, &out.UserID, &entityType, &out.EntityID, &action, &stored, &out.CreatedAt)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	out.EntityType = domain.EntityType(entityType)
	out.Action = domain.AuditAction(action)
	if err := json.Unmarshal(stored, &out.Changes); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", out.ID, err)
	}

	return out, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interface of the study, collection, flashcard and generation services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}
