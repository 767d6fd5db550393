// Package metrics provides the centralized Prometheus metrics registry for the bet ledger.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	BetsPlacedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bettrack",
		Name:      "bets_placed_total",
		Help:      "Total number of bets recorded in the ledger",
	})
	BetsResolvedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bettrack",
		Name:      "bets_resolved_total",
		Help:      "Total number of bets resolved as won or lost",
	})
	BetsEditedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bettrack",
		Name:      "bets_edited_total",
		Help:      "Total number of pending-bet edits applied",
	})
	BetsRemovedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bettrack",
		Name:      "bets_removed_total",
		Help:      "Total number of pending bets deleted",
	})
	StorageErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bettrack",
		Name:      "storage_errors_total",
		Help:      "Total number of storage failures surfaced by ledger operations",
	})
)

// Histogram metrics
var (
	LedgerOperationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bettrack",
		Name:      "ledger_operation_duration_seconds",
		Help:      "Duration of ledger operations in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(BetsPlacedTotal)
		registry.MustRegister(BetsResolvedTotal)
		registry.MustRegister(BetsEditedTotal)
		registry.MustRegister(BetsRemovedTotal)
		registry.MustRegister(StorageErrorsTotal)

		registry.MustRegister(LedgerOperationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordBetPlaced records a bet placement event.
func RecordBetPlaced() {
	BetsPlacedTotal.Inc()
}

// RecordBetResolved records a bet settlement event.
func RecordBetResolved() {
	BetsResolvedTotal.Inc()
}

// RecordBetEdited records an applied pending-bet edit.
func RecordBetEdited() {
	BetsEditedTotal.Inc()
}

// RecordBetRemoved records deletion of a pending bet.
func RecordBetRemoved() {
	BetsRemovedTotal.Inc()
}

// RecordStorageError records a storage failure.
func RecordStorageError() {
	StorageErrorsTotal.Inc()
}

// ObserveOperation records the duration of a ledger operation.
func ObserveOperation(operation string, seconds float64) {
	LedgerOperationDuration.WithLabelValues(operation).Observe(seconds)
}
