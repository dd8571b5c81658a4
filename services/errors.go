package services

import "errors"

// Failure taxonomy shared by all services. Controllers map these onto HTTP
// statuses; none of them are retried here.
var (
	// ErrValidation: a required field is missing or outside its vocabulary.
	// Raised before any external call is made.
	ErrValidation = errors.New("validation failed")

	// ErrPrecondition: the caller broke the contract (empty manual ingredient
	// selection, non-positive consumption amount, ...).
	ErrPrecondition = errors.New("precondition violated")

	// ErrTransport: an upstream call could not complete. Surfaced verbatim.
	ErrTransport = errors.New("upstream request failed")

	// ErrConflict: the caller's version of a record is stale.
	ErrConflict = errors.New("version conflict")

	ErrNotFound = errors.New("record not found")
)
