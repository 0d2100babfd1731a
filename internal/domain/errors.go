package domain

import "fmt"

// EngineError is returned when a list or inspect call against the container engine fails.
type EngineError struct {
	Op  string
	Err error
}

func NewEngineError(op string, err error) *EngineError {
	return &EngineError{Op: op, Err: err}
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// FormatError is returned when a notification payload cannot be serialized.
type FormatError struct {
	Format string
	Err    error
}

func NewFormatError(format string, err error) *FormatError {
	return &FormatError{Format: format, Err: err}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %s payload: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// DeliveryError is returned when a notification could not be delivered. StatusCode is zero
// when the request never got a response.
type DeliveryError struct {
	Target     string
	StatusCode int
	Body       string
	Err        error
}

func NewDeliveryError(target string, err error) *DeliveryError {
	return &DeliveryError{Target: target, Err: err}
}

func NewStatusDeliveryError(target string, statusCode int, body string) *DeliveryError {
	return &DeliveryError{Target: target, StatusCode: statusCode, Body: body}
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deliver to %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("Error: status code: %d. Body: %s", e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// DataIntegrityError flags an engine record that breaks the engine's own contract.
type DataIntegrityError struct {
	Message string
}

func NewDataIntegrityError(message string) *DataIntegrityError {
	return &DataIntegrityError{Message: message}
}

func (e *DataIntegrityError) Error() string {
	return e.Message
}
