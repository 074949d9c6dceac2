package models

import "fmt"

// ValidationError rejects an operation before any collection is touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidServiceError reports a service id that does not resolve against the
// catalog.
type InvalidServiceError struct {
	ServiceID int64
}

func (e *InvalidServiceError) Error() string {
	return fmt.Sprintf("service %d not found", e.ServiceID)
}
