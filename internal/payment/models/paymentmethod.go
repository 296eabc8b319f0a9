// Package models defines payment entities. Every tenant gets exactly two
// payment methods at registration: cash and mobile money.
package models

import (
	"fmt"
	"time"

	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
)

// HandlerCode identifies a registered payment handler. Handlers are process
// configuration: a method referencing an unregistered handler cannot be
// created.
type HandlerCode string

const (
	HandlerCash  HandlerCode = "cash"
	HandlerMpesa HandlerCode = "mpesa"
)

type PaymentMethod struct {
	ID          id.PaymentMethodID `json:"id"`
	Code        string             `json:"code"`
	Handler     HandlerCode        `json:"handler"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Enabled     bool               `json:"enabled"`
	CreatedAt   time.Time          `json:"created_at"`
}

// MethodCode derives the globally unique payment method code for a tenant:
// "{handler}-{tenantID}".
func MethodCode(handler HandlerCode, tenantID id.TenantID) string {
	return fmt.Sprintf("%s-%s", handler, tenantID)
}

func NewPaymentMethod(methodID id.PaymentMethodID, handler HandlerCode, tenantID id.TenantID, name, description string, now time.Time) (*PaymentMethod, error) {
	if handler == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "payment handler code cannot be empty")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "payment method name cannot be empty")
	}
	return &PaymentMethod{
		ID:          methodID,
		Code:        MethodCode(handler, tenantID),
		Handler:     handler,
		Name:        name,
		Description: description,
		Enabled:     true,
		CreatedAt:   now,
	}, nil
}
