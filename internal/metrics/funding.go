package metrics

import (
	"time"

	"github.com/goodnatureofminers/bitseed-inscriber/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fundingDepositTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "funding",
		Name:      "deposit_total",
		Help:      "Count of commit address deposits.",
	}, []string{"network", "status"})

	fundingDepositDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "funding",
		Name:      "deposit_duration_seconds",
		Help:      "Duration of funding a commit address.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	fundingAwaitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "funding",
		Name:      "await_total",
		Help:      "Count of waits for a commit address to become spendable.",
	}, []string{"network", "status"})

	fundingAwaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "funding",
		Name:      "await_duration_seconds",
		Help:      "Time until a commit address became spendable.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
	}, []string{"network", "status"})

	fundingAwaitAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "funding",
		Name:      "await_attempts",
		Help:      "Readiness probes needed per wait.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"network"})
)

// Funding tracks metrics for the commit funding workflow.
type Funding struct {
	network model.Network
}

// NewFunding constructs a Funding collector.
func NewFunding(network model.Network) *Funding {
	return &Funding{network: orUnknown(network)}
}

// ObserveDeposit records a deposit outcome, including reused deposits.
func (m Funding) ObserveDeposit(err error, started time.Time) {
	status := statusOf(err)
	fundingDepositTotal.WithLabelValues(string(m.network), status).Inc()
	fundingDepositDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveAwait records one readiness wait and the probes it took.
func (m Funding) ObserveAwait(attempts int, err error, started time.Time) {
	status := statusOf(err)
	fundingAwaitTotal.WithLabelValues(string(m.network), status).Inc()
	fundingAwaitDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	fundingAwaitAttempts.WithLabelValues(string(m.network)).Observe(float64(attempts))
}
