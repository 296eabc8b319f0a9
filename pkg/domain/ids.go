// Package domain defines typed identifiers for the core entities.
//
// Each ID is a distinct type over uuid.UUID so the compiler rejects passing a
// RoleID where a TenantID is expected. Parse functions enforce the invariant
// that IDs are valid, non-nil UUIDs at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "sokoni/pkg/domain-errors"
)

type (
	TenantID        uuid.UUID
	PartyID         uuid.UUID
	ZoneID          uuid.UUID
	StockLocationID uuid.UUID
	PaymentMethodID uuid.UUID
	RoleID          uuid.UUID
	UserID          uuid.UUID
	AdminID         uuid.UUID
)

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid id format")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return u, nil
}

func ParseTenantID(s string) (TenantID, error) {
	u, err := parseUUID(s)
	return TenantID(u), err
}

func ParsePartyID(s string) (PartyID, error) {
	u, err := parseUUID(s)
	return PartyID(u), err
}

func ParseStockLocationID(s string) (StockLocationID, error) {
	u, err := parseUUID(s)
	return StockLocationID(u), err
}

func ParsePaymentMethodID(s string) (PaymentMethodID, error) {
	u, err := parseUUID(s)
	return PaymentMethodID(u), err
}

func ParseRoleID(s string) (RoleID, error) {
	u, err := parseUUID(s)
	return RoleID(u), err
}

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	return UserID(u), err
}

func ParseAdminID(s string) (AdminID, error) {
	u, err := parseUUID(s)
	return AdminID(u), err
}

func (id TenantID) String() string        { return uuid.UUID(id).String() }
func (id PartyID) String() string         { return uuid.UUID(id).String() }
func (id ZoneID) String() string          { return uuid.UUID(id).String() }
func (id StockLocationID) String() string { return uuid.UUID(id).String() }
func (id PaymentMethodID) String() string { return uuid.UUID(id).String() }
func (id RoleID) String() string          { return uuid.UUID(id).String() }
func (id UserID) String() string          { return uuid.UUID(id).String() }
func (id AdminID) String() string         { return uuid.UUID(id).String() }

func (id TenantID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id PartyID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id ZoneID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id StockLocationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id PaymentMethodID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id RoleID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id AdminID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
