package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authorization errors
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrInvalidAPIKey   = fmt.Errorf("%w: invalid API key", ErrForbidden)
	ErrUnauthorizedKey = fmt.Errorf("%w: unauthorized API key", ErrForbidden)

	// Catalog errors
	ErrSongNotFound = fmt.Errorf("song not found")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTimeout            = fmt.Errorf("operation timed out")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
