package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Connection errors
	ErrNotConnected       = fmt.Errorf("spotify account not connected")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTimeout            = fmt.Errorf("operation timed out")

	// API errors
	ErrAPIRequest = fmt.Errorf("API request failed")

	// Input validation errors
	ErrEmptyPrompt     = fmt.Errorf("prompt is empty")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
