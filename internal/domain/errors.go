package domain

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrTodoNotFound        = errors.New("to-do item not found")
	ErrOtpNotFound         = errors.New("otp record not found")
	ErrOtpExpired          = errors.New("otp expired")
	ErrOtpMismatch         = errors.New("wrong otp entered")
	ErrNoEmergencyContacts = errors.New("no emergency contacts found")
	ErrMailDelivery        = errors.New("failed to send otp")
)

// ValidationError reports a missing or malformed required field. The message
// is safe to return to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
