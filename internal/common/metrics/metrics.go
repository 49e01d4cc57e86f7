// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesRouted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "responder_queries_routed_total",
			Help: "Total number of queries routed, by category and routing method",
		},
		[]string{"category", "method"},
	)

	ResponsesBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "responder_responses_total",
			Help: "Total number of responses rendered, by category and outcome",
		},
		[]string{"category", "outcome"},
	)

	HandlerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "responder_handler_duration_seconds",
			Help: "Duration of category handler execution in seconds",
		},
		[]string{"category"},
	)

	ClassifierCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "responder_classifier_calls_total",
			Help: "Total number of fallback classifier calls, by result",
		},
		[]string{"result"},
	)
)
