package errs

import "errors"

// Cross-layer sentinel errors used to classify failures for the HTTP layer.
var (
	// Checkout errors
	ErrCheckoutNotFound    = errors.New("checkout session not found")
	ErrReservationExpired  = errors.New("reservation expired")
	ErrNoActiveReservation = errors.New("no active reservation")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrUpstreamOperationFailed = errors.New("upstream operation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
