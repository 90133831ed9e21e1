package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
)

// TraceID returns the id of the active span in ctx, or "".
func TraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}

// abortWithError ends the chain with the standard error envelope. When the
// handler already started writing, the chain is only aborted.
func abortWithError(c *gin.Context, code, message string) {
	if c.Writer.Written() {
		c.Abort()
		return
	}

	resp := dto.NewErrorResponse(code, message).WithTraceID(TraceID(c.Request.Context()))
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), resp)
}
