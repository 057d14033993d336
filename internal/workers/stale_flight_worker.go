package workers

import (
	"context"
	"time"

	"skyward-labs/flightdeck/internal/db/repositories"
	"skyward-labs/flightdeck/internal/logging"
	"skyward-labs/flightdeck/internal/metrics"
)

// StaleFlightWorker removes reservations nobody ever started. Pilots who
// book and disappear would otherwise clutter the active board forever.
type StaleFlightWorker struct {
	flights  *repositories.FlightRepository
	metrics  *metrics.MetricsRegistry
	maxAge   time.Duration
	interval time.Duration
}

// NewStaleFlightWorker creates the sweeper. maxAge is how old a reserved
// flight may get before it is removed.
func NewStaleFlightWorker(flights *repositories.FlightRepository, m *metrics.MetricsRegistry, maxAge, interval time.Duration) *StaleFlightWorker {
	return &StaleFlightWorker{
		flights:  flights,
		metrics:  m,
		maxAge:   maxAge,
		interval: interval,
	}
}

// Run sweeps on a ticker until the context is cancelled.
func (w *StaleFlightWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logging.Info("Stale flight sweeper started",
		"max_age", w.maxAge.String(), "interval", w.interval.String())

	for {
		select {
		case <-ctx.Done():
			logging.Info("Stale flight sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *StaleFlightWorker) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.maxAge)

	swept, err := w.flights.DeleteStaleReserved(ctx, cutoff)
	if err != nil {
		logging.Error("Stale flight sweep failed", "error", err.Error())
		return
	}
	if swept == 0 {
		return
	}

	if w.metrics != nil {
		w.metrics.StaleFlightsSwept.Add(float64(swept))
	}
	logging.Info("Swept stale reservations", "count", swept, "cutoff", cutoff.Format(time.RFC3339))
}
