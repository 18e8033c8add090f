package errors

import (
	"errors"
	"net/http"
)

// ErrorWithStatusCode is the single application error type.
// Handlers translate it directly into an HTTP response; anything else
// is treated as an internal server error.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ErrAlreadyLiked is returned by the like store when an insert hits the
// (user_id, comment_id) uniqueness constraint. The toggle treats it as a
// benign outcome of two concurrent likes from the same user.
var ErrAlreadyLiked = errors.New("comment already liked")

func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Forbidden(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func Validation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// Invariant marks a broken store-level integrity expectation, e.g. removing
// a like row that is not there. Surfaced as 500 and never retried.
func Invariant(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusInternalServerError}
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, code int) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == code
	}
	return false
}
