package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AutoclaimMetrics holds all Prometheus metrics for the autoclaim module
type AutoclaimMetrics struct {
	// Dispatch metrics
	ClaimsDispatched *prometheus.CounterVec
	ClaimsSettled    *prometheus.CounterVec
	ClaimsFailed     *prometheus.CounterVec

	// Settlement metrics
	StakesSettled *prometheus.CounterVec
	StakesFailed  *prometheus.CounterVec
	FeesCharged   *prometheus.CounterVec
	FeeSendFailed *prometheus.CounterVec

	// Pending-table metrics
	PendingOperations prometheus.Gauge
}

var (
	autoclaimMetricsOnce sync.Once
	autoclaimMetrics     *AutoclaimMetrics
)

// NewAutoclaimMetrics creates and registers autoclaim metrics (singleton pattern)
func NewAutoclaimMetrics() *AutoclaimMetrics {
	autoclaimMetricsOnce.Do(func() {
		autoclaimMetrics = &AutoclaimMetrics{
			ClaimsDispatched: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "claims_dispatched_total",
					Help:      "Total claim operations dispatched by protocol",
				},
				[]string{"protocol"},
			),
			ClaimsSettled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "claims_settled_total",
					Help:      "Total claim operations settled successfully by protocol",
				},
				[]string{"protocol"},
			),
			ClaimsFailed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "claims_failed_total",
					Help:      "Total claim operations reported failed by the host",
				},
				[]string{"protocol"},
			),
			StakesSettled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "stakes_settled_total",
					Help:      "Total stake operations settled successfully by protocol",
				},
				[]string{"protocol"},
			),
			StakesFailed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "stakes_failed_total",
					Help:      "Total stake operations reported failed by the host",
				},
				[]string{"protocol"},
			),
			FeesCharged: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "fees_charged_total",
					Help:      "Total fee transfers dispatched by protocol",
				},
				[]string{"protocol"},
			),
			FeeSendFailed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "fee_sends_failed_total",
					Help:      "Total fee transfers reported failed by the host",
				},
				[]string{"protocol"},
			),
			PendingOperations: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "restake",
					Subsystem: "autoclaim",
					Name:      "pending_operations",
					Help:      "Outstanding rows in the pending-operation table",
				},
			),
		}
	})
	return autoclaimMetrics
}
