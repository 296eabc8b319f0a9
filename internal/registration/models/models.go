// Package models defines the registration request and result records.
package models

import (
	"strings"

	id "sokoni/pkg/domain"
	dErrors "sokoni/pkg/domain-errors"
)

// RegistrationInput is the provisioning request as received from the
// registration handler. Phone normalization happens downstream; validation
// here only rejects structurally unusable input.
type RegistrationInput struct {
	CompanyName      string `json:"company_name"`
	CompanyCode      string `json:"company_code"`
	Currency         string `json:"currency"`
	AdminFirstName   string `json:"admin_first_name"`
	AdminLastName    string `json:"admin_last_name"`
	AdminPhoneNumber string `json:"admin_phone_number"`
	AdminEmail       string `json:"admin_email,omitempty"`
	StoreName        string `json:"store_name"`
	StoreAddress     string `json:"store_address,omitempty"`
}

// Validate rejects input no provisioner could work with. Business rules
// (currency membership, code uniqueness) belong to the pre-flight validator.
func (in *RegistrationInput) Validate() error {
	if strings.TrimSpace(in.CompanyName) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "company name is required")
	}
	if strings.TrimSpace(in.CompanyCode) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "company code is required")
	}
	if strings.TrimSpace(in.AdminPhoneNumber) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "admin phone number is required")
	}
	if strings.TrimSpace(in.AdminFirstName) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "admin first name is required")
	}
	return nil
}

// AdminIdentifier returns the administrator's identifier: email when
// provided, otherwise the given normalized phone.
func (in *RegistrationInput) AdminIdentifier(normalizedPhone string) string {
	if email := strings.TrimSpace(in.AdminEmail); email != "" {
		return strings.ToLower(email)
	}
	return normalizedPhone
}

// ProvisionResult is the externally observable success record.
type ProvisionResult struct {
	TenantID        id.TenantID        `json:"tenant_id"`
	StockLocationID id.StockLocationID `json:"stock_location_id"`
	RoleID          id.RoleID          `json:"role_id"`
	AdminID         id.AdminID         `json:"admin_id"`
	UserID          id.UserID          `json:"user_id"`
}
