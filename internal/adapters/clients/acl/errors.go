package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/stack4devs/stack4devs/internal/adapters/clients"
	"github.com/stack4devs/stack4devs/internal/domain"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// ErrorResponse is an upstream error body, nested or flat.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail is the nested form of ErrorResponse.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}

	return e.Code
}

func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// ParseErrorResponse decodes an error body. It returns nil when the body is
// empty, not JSON, or carries neither a code nor a message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var resp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&resp); err != nil {
		return nil
	}

	if resp.GetCode() == "" && resp.GetMessage() == "" {
		return nil
	}

	return &resp
}

// MapHTTPError turns a failed upstream call into a domain error. Exactly one
// of resp and clientErr is expected to be set. resource names what was being
// fetched, such as "stacks document".
func MapHTTPError(resp *http.Response, clientErr error, service, resource string) error {
	if clientErr != nil {
		return mapClientError(clientErr, service, resource)
	}

	if resp == nil {
		return domain.NewUnavailableError(service, "no response received")
	}

	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	message := fmt.Sprintf("fetching %s failed with status %d", resource, resp.StatusCode)
	if parsed := ParseErrorResponse(resp.Body); parsed != nil && parsed.GetMessage() != "" {
		message = parsed.GetMessage()
	}

	switch status := resp.StatusCode; {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(resource, "")
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return domain.NewValidationError(resource, message)
	case status == http.StatusUnauthorized:
		return domain.NewUnauthorizedError(message)
	case status == http.StatusForbidden:
		return domain.NewForbiddenError("fetch "+resource, message)
	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, "rate limit exceeded")
	case status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(service, message)
	default:
		return domain.NewValidationError(resource, message)
	}
}

func mapClientError(err error, service, resource string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open while fetching "+resource)
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(service, "retries exhausted while fetching "+resource)
	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("fetching %s: %v", resource, err))
	}
}
