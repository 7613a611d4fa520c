package service

import "fmt"

// ValidationError reports a missing or empty required input. It is raised
// before any upstream call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ConfigurationError reports a model client that was never configured.
// It is not retryable.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Field + ": " + e.Message
}

// UpstreamError reports a failed, timed out or unusable model call.
type UpstreamError struct {
	Service string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Message, e.Err)
	}
	return e.Service + ": " + e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
