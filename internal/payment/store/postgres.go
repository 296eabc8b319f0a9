package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"sokoni/internal/payment/models"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/sentinel"
	"sokoni/pkg/platform/tx"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Postgres persists payment methods. Handlers live in a payment_handlers
// reference table; the foreign key from payment_methods.handler enforces
// that only registered handlers can back a method.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, method *models.PaymentMethod) error {
	q := tx.Resolve(ctx, s.db)
	_, err := q.ExecContext(ctx, `
		INSERT INTO payment_methods (id, code, handler, name, description, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		method.ID.String(), method.Code, string(method.Handler),
		method.Name, method.Description, method.Enabled, method.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return sentinel.ErrAlreadyUsed
			case foreignKeyViolation:
				return sentinel.ErrNotFound
			}
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, methodID id.PaymentMethodID) (*models.PaymentMethod, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `
		SELECT id, code, handler, name, description, enabled, created_at
		FROM payment_methods
		WHERE id = $1`,
		methodID.String(),
	)

	var (
		method models.PaymentMethod
		rawID  string
	)
	err := row.Scan(&rawID, &method.Code, (*string)(&method.Handler),
		&method.Name, &method.Description, &method.Enabled, &method.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select payment method: %w", err)
	}
	method.ID, err = id.ParsePaymentMethodID(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse payment method id: %w", err)
	}
	return &method, nil
}
