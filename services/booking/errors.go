package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking failures. Handlers map these to HTTP statuses;
// anything uncoded is an internal/storage error and propagates unchanged.
const (
	CodeInvalidArgument = "invalidArgument"
	CodeNotFound        = "notFound"
	CodeSlotConflict    = "slotConflict"
	CodePolicyViolation = "policyViolation"
)

// Error is a coded, caller-facing booking error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newInvalidArgument(format string, args ...any) error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func newNotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func newSlotConflict(format string, args ...any) error {
	return &Error{Code: CodeSlotConflict, Message: fmt.Sprintf(format, args...)}
}

func newPolicyViolation(format string, args ...any) error {
	return &Error{Code: CodePolicyViolation, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the booking error code carried by err, or "" for plain
// (internal) errors.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
