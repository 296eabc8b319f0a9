// Package regerr defines the coded error taxonomy for the provisioning
// pipeline. Every failure surfaces as "REGISTRATION_<CODE>: <message>" so a
// caller or support ticket can name the exact step that failed.
package regerr

import (
	"errors"
	"fmt"
)

type Code string

const (
	// Pre-flight.
	CodeCurrencyInvalid Code = "CURRENCY_INVALID"
	CodeCodeExists      Code = "CODE_EXISTS"
	CodeEmailExists     Code = "EMAIL_EXISTS"
	CodeZonesMissing    Code = "ZONES_MISSING"

	// Seller provisioning.
	CodeSellerCreateFailed Code = "SELLER_CREATE_FAILED"

	// Tenant provisioning.
	CodeTenantCreateFailed Code = "TENANT_CREATE_FAILED"

	// Store provisioning.
	CodeStoreNameRequired         Code = "STORE_NAME_REQUIRED"
	CodeStockLocationCreateFailed Code = "STOCK_LOCATION_CREATE_FAILED"
	CodeStockLocationAssignFailed Code = "STOCK_LOCATION_ASSIGN_FAILED"

	// Payment provisioning.
	CodePaymentHandlerMissing     Code = "PAYMENT_HANDLER_MISSING"
	CodePaymentMethodCreateFailed Code = "PAYMENT_METHOD_CREATE_FAILED"
	CodePaymentMethodAssignFailed Code = "PAYMENT_METHOD_ASSIGN_FAILED"

	// Role provisioning.
	CodeRoleCreateFailed Code = "ROLE_CREATE_FAILED"
	CodeRoleAssignFailed Code = "ROLE_ASSIGN_FAILED"

	// Access provisioning.
	CodeUserCreateFailed  Code = "USER_CREATE_FAILED"
	CodeUserAssignFailed  Code = "USER_ASSIGN_FAILED"
	CodeAdminCreateFailed Code = "ADMIN_CREATE_FAILED"

	// Catch-all wrapper applied by the orchestrator.
	CodeProvisioningFailed Code = "PROVISIONING_FAILED"
)

// Error is a registration failure with a stable code.
type Error struct {
	code  Code
	msg   string
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("REGISTRATION_%s: %s", e.code, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() Code { return e.code }

func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

func Newf(code Code, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code to err. An error already carrying a registration code
// passes through unchanged so codes are never nested.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}
	return &Error{code: code, msg: msg, cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code Code, format string, args ...any) error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// Is reports whether err carries the given registration code.
func Is(err error, code Code) bool {
	var coded *Error
	return errors.As(err, &coded) && coded.code == code
}

// CodeOf returns err's registration code, or "" when err is not coded.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.code
	}
	return ""
}
