package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/stack4devs/stack4devs/internal/platform/logging"
)

const instrumentationName = "github.com/stack4devs/stack4devs/telemetry"

// HeaderTraceID carries the active trace id back to the caller.
const HeaderTraceID = "X-Trace-ID"

// unmatchedRoute labels requests gin could not route, keeping raw paths
// out of metric attributes.
const unmatchedRoute = "unmatched"

// Metrics holds the OpenTelemetry HTTP server instruments.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates the HTTP server instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

func route(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}

	return unmatchedRoute
}

// Middleware records HTTP server metrics. When a span is active it sets
// X-Trace-ID and tags the request logger with trace_id. It must run after
// TracingMiddleware.
func Middleware() gin.HandlerFunc {
	m, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			id := sc.TraceID().String()
			c.Header(HeaderTraceID, id)

			ctx = logging.WithTraceID(ctx, id)
			c.Request = c.Request.WithContext(ctx)
		}

		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		base := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route(c)),
		)

		m.activeRequests.Add(ctx, 1, base)
		defer m.activeRequests.Add(ctx, -1, base)

		c.Next()

		done := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route(c)),
			attribute.Int("http.status_code", c.Writer.Status()),
		)

		m.requestDuration.Record(ctx, time.Since(start).Seconds(), done)
		m.requestTotal.Add(ctx, 1, done)
	}
}

// TracingMiddleware returns the otelgin middleware that opens a server span
// per request.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
