package domain

import "errors"

// Sentinel errors shared across the service and repository layers. Callers
// branch on these with errors.Is; repositories translate driver errors into
// them so nothing above the store depends on pg error codes.
var (
	// ErrNotFound signals that a referenced user, article or comment does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey signals a unique-constraint conflict, such as a taken
	// username, email or slug.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidRelation rejects a structurally invalid edge, e.g. a user
	// following themselves.
	ErrInvalidRelation = errors.New("invalid relation")

	// ErrSlugExhausted is returned when slug generation keeps colliding
	// after the configured number of attempts.
	ErrSlugExhausted = errors.New("slug space exhausted")

	// ErrStaleAggregate means a recount observed an epoch that moved before
	// the count could be persisted. The newer mutation owns the final value,
	// so callers treat this as a no-op.
	ErrStaleAggregate = errors.New("stale aggregate")

	// ErrForbidden rejects a mutation by someone other than the resource
	// owner.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures are indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
