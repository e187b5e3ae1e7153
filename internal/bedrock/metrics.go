package bedrock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	invocationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trivia",
		Subsystem: "bedrock",
		Name:      "invocation_duration_seconds",
		Help:      "Duration of Bedrock InvokeModel calls",
	}, []string{"model"})

	invocationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Subsystem: "bedrock",
		Name:      "invocation_failures_total",
		Help:      "Number of failed Bedrock InvokeModel calls",
	}, []string{"model"})
)
