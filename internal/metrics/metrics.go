package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Flightdeck
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Business Metrics
	FlightsBookedTotal    prometheus.Counter
	ReportsSubmittedTotal prometheus.Counter
	ReportsDecidedTotal   prometheus.CounterVec
	TourLegsCompleted     prometheus.Counter
	StaleFlightsSwept     prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightdeck_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		FlightsBookedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_flights_booked_total",
				Help: "Total flights booked",
			},
		),
		ReportsSubmittedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_reports_submitted_total",
				Help: "Total flight reports submitted",
			},
		),
		ReportsDecidedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_reports_decided_total",
				Help: "Total flight report decisions by outcome",
			},
			[]string{"decision"},
		),
		TourLegsCompleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_tour_legs_completed_total",
				Help: "Total tour legs satisfied by approved reports",
			},
		),
		StaleFlightsSwept: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_stale_flights_swept_total",
				Help: "Total stale reserved flights removed by the sweeper",
			},
		),
	}
}
