package service

import "fmt"

// ErrorCode classifies failures that cross the service boundary. Parse
// fallbacks and validation warnings never do; they are absorbed into the
// structured result.
type ErrorCode string

const (
	ErrorInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrorPolicyBlocked ErrorCode = "POLICY_BLOCKED"
	ErrorInvalidField  ErrorCode = "INVALID_FIELD"
	ErrorInvalidEnum   ErrorCode = "INVALID_ENUM"
	ErrorNotFound      ErrorCode = "NOT_FOUND"
	ErrorGeneration    ErrorCode = "GENERATION_FAILED"
	ErrorInternal      ErrorCode = "INTERNAL_ERROR"
)

// Error is a coded service failure.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
