// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bitseed"

var (
	dataSourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "datasource",
		Name:      "operations_total",
		Help:      "Count of data source operations.",
	}, []string{"operation", "backend", "network", "status"})
	dataSourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "datasource",
		Name:      "operation_duration_seconds",
		Help:      "Duration of data source operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "backend", "network", "status"})
)

// DataSource tracks metrics for indexer and relay calls.
type DataSource struct {
	backend string
	network model.Network
}

// NewDataSource creates a DataSource metrics collector.
func NewDataSource(backend string, network model.Network) *DataSource {
	if backend == "" {
		backend = "unknown"
	}
	return &DataSource{backend: backend, network: orUnknown(network)}
}

// Observe records duration and status of a data source operation.
func (m DataSource) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	dataSourceRequestsTotal.WithLabelValues(operation, m.backend, string(m.network), status).Inc()
	dataSourceRequestDuration.WithLabelValues(operation, m.backend, string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(network model.Network) model.Network {
	if network == "" {
		return "unknown"
	}
	return network
}
