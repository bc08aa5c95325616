package booking

import "fmt"

// BookingError wraps a failure from the calendar backend while creating an
// event.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(msg string) error {
	return &BookingError{
		Code:    "bookingError",
		Message: msg,
	}
}

// ConflictError reports that the candidate time collides with an existing
// event.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "conflictError",
		Message: msg,
	}
}
