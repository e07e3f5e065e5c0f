package errs

import "errors"

// Sentinel errors shared across the dispatch pipeline layers
var (
	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Store errors
	ErrStoreUnavailable = errors.New("shared store unavailable")

	// Event errors
	ErrUnknownEvent = errors.New("unknown event kind")
	ErrInvalidEvent = errors.New("invalid event payload")

	// Delivery errors
	ErrDeliveryFailed = errors.New("delivery failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
