// Package sentinel defines the infrastructure facts stores report upward.
// Services translate them into coded domain errors; the provisioning
// pipeline maps them onto its own taxonomy (a taken tenant code becomes
// CODE_EXISTS, an unregistered payment handler becomes
// PAYMENT_HANDLER_MISSING). Validation failures never use these; they go
// through pkg/domain-errors directly.
package sentinel

import "errors"

var (
	// ErrNotFound: the entity, or a reference it depends on (a payment
	// handler, a tenant's owning party), does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyUsed: a uniquely-held resource (tenant code, user
	// identifier, role code) is already taken.
	ErrAlreadyUsed = errors.New("already used")
)
