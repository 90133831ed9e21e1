// Package dto holds the JSON shapes of the local backend API and the
// mapping from domain errors onto them.
package dto

import (
	"errors"
	"net/http"

	"github.com/stack4devs/stack4devs/internal/domain"
)

// ErrorResponse is the envelope every failed request answers with.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the body of ErrorResponse. Details carries per-field
// messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeConflict     = "CONFLICT"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeBadRequest   = "BAD_REQUEST"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeForbidden    = "FORBIDDEN"
	ErrorCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)

const internalMessage = "an internal error occurred"

// NewErrorResponse builds an envelope without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// NewErrorResponseWithDetails builds an envelope with per-field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID sets the trace id and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps an error code onto its HTTP status.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// FromError maps err onto a status and envelope. Messages come from the
// typed domain error, not from the wrapping chain, so step and operation
// prefixes never reach the client. Anything unrecognised is a 500 with a
// fixed message.
func FromError(err error) (int, *ErrorResponse) {
	code, message, details := classify(err)

	return HTTPStatusFromCode(code), NewErrorResponseWithDetails(code, message, details)
}

func classify(err error) (code, message string, details map[string]string) {
	var (
		notFound     *domain.NotFoundError
		conflict     *domain.ConflictError
		validation   *domain.ValidationError
		unauthorized *domain.UnauthorizedError
		forbidden    *domain.ForbiddenError
		unavailable  *domain.UnavailableError
	)

	switch {
	case errors.As(err, &validation):
		if validation.Field != "" {
			details = map[string]string{validation.Field: validation.Message}
		}

		return ErrorCodeValidation, validation.Error(), details
	case errors.As(err, &notFound):
		return ErrorCodeNotFound, notFound.Error(), nil
	case errors.As(err, &conflict):
		return ErrorCodeConflict, conflict.Reason, nil
	case errors.As(err, &unauthorized):
		return ErrorCodeUnauthorized, unauthorized.Error(), nil
	case errors.As(err, &forbidden):
		return ErrorCodeForbidden, forbidden.Error(), nil
	case errors.As(err, &unavailable):
		return ErrorCodeUnavailable, unavailable.Error(), nil
	case errors.Is(err, domain.ErrEmptyCatalog):
		return ErrorCodeUnavailable, domain.ErrEmptyCatalog.Error(), nil
	case errors.Is(err, domain.ErrNotFound):
		return ErrorCodeNotFound, "not found", nil
	case errors.Is(err, domain.ErrValidation):
		return ErrorCodeValidation, "validation failed", nil
	case errors.Is(err, domain.ErrUnauthorized):
		return ErrorCodeUnauthorized, "unauthorized", nil
	case errors.Is(err, domain.ErrUnavailable):
		return ErrorCodeUnavailable, "dependency unavailable", nil
	default:
		return ErrorCodeInternal, internalMessage, nil
	}
}
