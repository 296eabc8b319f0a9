// Package models defines the access-control entities: roles, users, and
// administrators. A registered company admin is a tenant-scoped
// Administrator backed by a User whose identifier is a phone number.
package models

import (
	"fmt"
	"time"

	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
)

// Role is a named permission set linked to tenants via the tenant's roles
// relation. A role must have at least one tenant attached before any user is
// granted it.
type Role struct {
	ID          id.RoleID    `json:"id"`
	Code        string       `json:"code"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
}

// AdminRoleCode derives the role code for a company's admin role:
// "{companyCode}-admin".
func AdminRoleCode(companyCode string) string {
	return fmt.Sprintf("%s-admin", companyCode)
}

func NewRole(roleID id.RoleID, code, description string, permissions []Permission, now time.Time) (*Role, error) {
	if code == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "role code cannot be empty")
	}
	if len(permissions) == 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "role must carry at least one permission")
	}
	perms := make([]Permission, len(permissions))
	copy(perms, permissions)
	return &Role{
		ID:          roleID,
		Code:        code,
		Description: description,
		Permissions: perms,
		CreatedAt:   now,
	}, nil
}

// User is an authentication principal. Authentication is OTP-based: the
// password hash is generated once at creation and never used to log in.
type User struct {
	ID           id.UserID `json:"id"`
	Identifier   string    `json:"identifier"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUser(userID id.UserID, identifier, passwordHash string, now time.Time) (*User, error) {
	if identifier == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user identifier cannot be empty")
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user password hash cannot be empty")
	}
	return &User{
		ID:           userID,
		Identifier:   identifier,
		PasswordHash: passwordHash,
		Verified:     true,
		CreatedAt:    now,
	}, nil
}

// Administrator is the staff record for a tenant admin, linked one-to-one to
// a User. Identifier is the admin's email when provided, otherwise the phone
// number.
type Administrator struct {
	ID         id.AdminID `json:"id"`
	Identifier string     `json:"identifier"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	UserID     id.UserID  `json:"user_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewAdministrator(adminID id.AdminID, identifier, firstName, lastName string, userID id.UserID, now time.Time) (*Administrator, error) {
	if identifier == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "administrator identifier cannot be empty")
	}
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "administrator must link to a user")
	}
	return &Administrator{
		ID:         adminID,
		Identifier: identifier,
		FirstName:  firstName,
		LastName:   lastName,
		UserID:     userID,
		CreatedAt:  now,
	}, nil
}
