package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sokoni/internal/audit"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/tx"
)

// Store persists audit events to the audit_events table. The entity snapshot
// is stored as jsonb. Writes honor the caller's ambient transaction so the
// trail rolls back with a failed provisioning run.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("marshal audit data: %w", err)
	}
	category := audit.AuditEvent(event.Action).Category()

	q := tx.Resolve(ctx, s.db)
	_, err = q.ExecContext(ctx, `
		INSERT INTO audit_events (id, category, tenant_id, entity_type, entity_id, action, request_id, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.New().String(), string(category), event.TenantID.String(),
		event.EntityType, event.EntityID, event.Action, event.RequestID,
		data, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *Store) ListByTenant(ctx context.Context, tenantID id.TenantID) ([]audit.Event, error) {
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `
		SELECT category, tenant_id, entity_type, entity_id, action, request_id, data, created_at
		FROM audit_events
		WHERE tenant_id = $1
		ORDER BY created_at`,
		tenantID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("select audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			event       audit.Event
			rawTenantID string
			rawData     []byte
			createdAt   time.Time
		)
		err := rows.Scan((*string)(&event.Category), &rawTenantID,
			&event.EntityType, &event.EntityID, &event.Action,
			&event.RequestID, &rawData, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Timestamp = createdAt
		event.TenantID, err = id.ParseTenantID(rawTenantID)
		if err != nil {
			return nil, fmt.Errorf("parse audit tenant id: %w", err)
		}
		if len(rawData) > 0 {
			if err := json.Unmarshal(rawData, &event.Data); err != nil {
				return nil, fmt.Errorf("unmarshal audit data: %w", err)
			}
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
