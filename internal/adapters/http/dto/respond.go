package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/stack4devs/stack4devs/internal/platform/logging"
)

func traceID(c *gin.Context) string {
	sc := trace.SpanFromContext(c.Request.Context()).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}

// HandleError writes the envelope for err. Internal errors are logged with
// their full chain since the client only sees a fixed message.
func HandleError(c *gin.Context, err error) {
	status, resp := FromError(err)
	resp.TraceID = traceID(c)

	if status == http.StatusInternalServerError {
		ctx := c.Request.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "request failed",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// HandleBindError answers a request that failed BindAndValidate or
// BindQueryAndValidate.
func HandleBindError(c *gin.Context, err error) {
	if errors.Is(err, ErrValidation) {
		resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", ValidationErrors(err))
		c.JSON(http.StatusBadRequest, resp.WithTraceID(traceID(c)))

		return
	}

	RespondWithCode(c, ErrorCodeBadRequest, "malformed request")
}

// RespondWithCode writes an envelope for an adapter-level failure.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(traceID(c)))
}
