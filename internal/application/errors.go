package application

import (
	"fmt"

	"drafts/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrIO            = domain.ErrIO
	ErrCannotPublish = domain.ErrCannotPublish
)

// PublishError is re-exported for callers that only import application
type PublishError = domain.PublishError

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
