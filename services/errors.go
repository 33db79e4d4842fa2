package services

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnimplemented is returned by controls that have no behavior yet.
var ErrUnimplemented = errors.New("speech input is not implemented")

// ApplicationError is a failure reported by the backend in an {"error": ...} body.
// Its message is shown to the user verbatim.
type ApplicationError struct {
	Endpoint string
	Message  string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

// TransportError covers network failures, unreadable bodies and unexpected
// response schemas. It is logged, never shown to the user.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AlertMessage formats a backend error the way it is presented to the user.
func AlertMessage(message string) string {
	return "Error: " + message
}

// resultError turns the outcome of a response's Result method into the
// matching error type, or nil on success.
func resultError(endpoint, message string, failed bool, schemaErr error) error {
	if failed {
		return &ApplicationError{Endpoint: endpoint, Message: message}
	}
	if schemaErr != nil {
		return &TransportError{Endpoint: endpoint, Err: schemaErr}
	}
	return nil
}
