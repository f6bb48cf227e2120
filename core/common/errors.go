package common

import (
	"errors"
	"fmt"
)

/*Error - all the errors of the module carry a machine readable code and a human readable message */
type Error struct {
	Code string `json:"code,omitempty"`
	Msg  string `json:"msg"`
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s", err.Code, err.Msg)
}

// Is reports whether target is an *Error with the same code.
func (err *Error) Is(target error) bool {
	var e *Error
	if !errors.As(target, &e) {
		return false
	}
	return e.Code == err.Code
}

/*NewError - create a new error */
func NewError(code string, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

/*NewErrorf - create a new error with format */
func NewErrorf(code string, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

/*InvalidRequest - create error messages that are needed when validating request input */
func InvalidRequest(msg string) error {
	return NewError("invalid_request", fmt.Sprintf("Invalid request (%v)", msg))
}

// ErrorCode returns the code of the first *Error found in the chain of err,
// or an empty string.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
