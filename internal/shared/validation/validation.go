package validation

import "fmt"

// Error describes a request payload problem detected before any store access.
// Handlers map it to a 400 response with the message as-is.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// Errorf builds a validation error with a human readable message
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Required is the standard message for a missing payload field
func Required(field string) *Error {
	return Errorf("%s is required", field)
}
