// Package metrics exposes Prometheus instruments for the seat ledger.
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for processed transactions.
const (
	OutcomeApplied   = "applied"
	OutcomeDropped   = "dropped"
	OutcomeMalformed = "malformed"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Transactions  *prometheus.CounterVec
	FlightsLoaded prometheus.Gauge
	SeatsSold     prometheus.Gauge
	Revenue       prometheus.Gauge

	RequestDuration *prometheus.HistogramVec
}

// New registers the ledger metrics on reg under the given namespace.
// Pass a fresh prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "The total number of processed transactions",
		}, []string{"kind", "outcome"}),
		FlightsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flights_loaded",
			Help:      "Number of flights loaded from the catalog",
		}),
		SeatsSold: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "seats_sold",
			Help:      "Seats sold across all registered flights at the last report",
		}),
		Revenue: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "revenue",
			Help:      "Total revenue across all registered flights at the last report",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// ObserveTransaction counts one processed transaction.
func (m *Metrics) ObserveTransaction(kind, outcome string) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "unknown"
	}
	m.Transactions.WithLabelValues(kind, outcome).Inc()
}

// ObserveCatalog records how many flights were loaded.
func (m *Metrics) ObserveCatalog(flights int) {
	if m == nil {
		return
	}
	m.FlightsLoaded.Set(float64(flights))
}

// ObserveSettlement records the totals of a settlement report.
func (m *Metrics) ObserveSettlement(seatsSold int, revenue int64) {
	if m == nil {
		return
	}
	m.SeatsSold.Set(float64(seatsSold))
	m.Revenue.Set(float64(revenue))
}

// ObserveRequest records one served HTTP request. route is the registered
// path pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
