package shared

import (
	"errors"
	"fmt"
)

// Error kinds shared by every bounded context. Domain errors wrap exactly one
// of these so the presentation layer can choose a status code without knowing
// the context that produced the error.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrUnavailable  = errors.New("upstream unavailable")
	ErrUpstream     = errors.New("upstream failure")
	ErrPersistence  = errors.New("persistence failure")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func NotFound(msg string) error     { return &kindError{kind: ErrNotFound, msg: msg} }
func Forbidden(msg string) error    { return &kindError{kind: ErrForbidden, msg: msg} }
func Invalid(msg string) error      { return &kindError{kind: ErrInvalidInput, msg: msg} }
func Conflict(msg string) error     { return &kindError{kind: ErrConflict, msg: msg} }
func Unauthorized(msg string) error { return &kindError{kind: ErrUnauthorized, msg: msg} }
func Unavailable(msg string) error  { return &kindError{kind: ErrUnavailable, msg: msg} }
func Upstream(msg string) error     { return &kindError{kind: ErrUpstream, msg: msg} }
func Persistence(msg string) error  { return &kindError{kind: ErrPersistence, msg: msg} }

// Invalidf is Invalid with formatting.
func Invalidf(format string, args ...any) error {
	return Invalid(fmt.Sprintf(format, args...))
}

// WrapPersistence wraps a repository failure with the use case's persistence
// sentinel. Errors that already carry a domain kind pass through untouched so
// "not found" from a repository still reads as 404.
func WrapPersistence(sentinel error, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrNotFound, ErrForbidden, ErrInvalidInput, ErrConflict, ErrUnauthorized} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
