// Package apperror is the error taxonomy shared by every module. Module
// errors wrap one of the kind sentinels with %w so boundaries can classify
// a failure without knowing which module produced it.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is the stable, machine-readable kind of a failure.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnavailable  Code = "UNAVAILABLE"
	CodeValidation   Code = "INVALID_ARGUMENT"
	CodeMedia        Code = "MEDIA_PROCESSING_FAILED"
	CodeConflict     Code = "CONFLICT"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeInternal     Code = "INTERNAL"
)

var (
	// ErrNotFound: a queried entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable: an external call (database, cache, queue) did not complete.
	ErrUnavailable = errors.New("service unavailable")
	// ErrValidation: malformed local input, rejected before any external call.
	ErrValidation = errors.New("invalid input")
	// ErrMedia: an uploaded image could not be processed.
	ErrMedia = errors.New("media processing failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// New returns an error of the given kind carrying msg.
func New(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

// Wrap classifies cause as kind while keeping it in the chain.
func Wrap(kind error, msg string, cause error) error {
	if cause == nil {
		return New(kind, msg)
	}
	return &classified{kind: kind, msg: msg, cause: cause}
}

type classified struct {
	kind  error
	msg   string
	cause error
}

func (e *classified) Error() string {
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *classified) Unwrap() []error { return []error{e.kind, e.cause} }

// CodeOf classifies err.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrMedia):
		return CodeMedia
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUnavailable):
		return CodeUnavailable
	default:
		return CodeInternal
	}
}

// HTTPStatus maps err to a response status.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeMedia:
		return http.StatusUnprocessableEntity
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-facing text for err. Internal failures are not leaked.
func Message(err error) string {
	if CodeOf(err) == CodeInternal {
		return "internal error"
	}
	return err.Error()
}

// Respond writes the standard error body for err.
func Respond(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), gin.H{"error": Message(err), "code": CodeOf(err)})
}
