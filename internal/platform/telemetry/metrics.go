package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DomainMetrics are the Prometheus counters scraped from /-/metrics.
type DomainMetrics struct {
	recommendations *prometheus.CounterVec
	community       *prometheus.CounterVec
}

// NewDomainMetrics registers the counters on reg.
func NewDomainMetrics(reg prometheus.Registerer) *DomainMetrics {
	factory := promauto.With(reg)

	return &DomainMetrics{
		recommendations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stack4devs",
			Name:      "recommendations_total",
			Help:      "Stack recommendations served, by the selection pass that matched.",
		}, []string{"pass"}),
		community: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stack4devs",
			Name:      "community_events_total",
			Help:      "Community case activity by event.",
		}, []string{"event"}),
	}
}

// RecordRecommendation counts a served recommendation.
func (m *DomainMetrics) RecordRecommendation(pass string) {
	m.recommendations.WithLabelValues(pass).Inc()
}

// RecordCommunityEvent counts created, updated, liked, viewed and shared cases.
func (m *DomainMetrics) RecordCommunityEvent(event string) {
	m.community.WithLabelValues(event).Inc()
}
