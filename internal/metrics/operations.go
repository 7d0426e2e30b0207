package metrics

import (
	"time"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "operations",
		Name:      "total",
		Help:      "Count of token operations.",
	}, []string{"operation", "network", "status"})
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "operations",
		Name:      "duration_seconds",
		Help:      "Duration of token operations from plan to broadcast.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300, 600, 1200},
	}, []string{"operation", "network", "status"})
)

// Operations tracks metrics for generator, deploy and mint calls.
type Operations struct {
	network model.Network
}

// NewOperations constructs an Operations collector.
func NewOperations(network model.Network) *Operations {
	return &Operations{network: orUnknown(network)}
}

// ObserveOperation records the outcome of a token operation.
func (m Operations) ObserveOperation(operation string, err error, started time.Time) {
	status := statusOf(err)
	operationsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	operationDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
