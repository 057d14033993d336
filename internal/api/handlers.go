package api

import "skyward-labs/flightdeck/internal/services"

// Handlers groups the HTTP handlers around their services.
type Handlers struct {
	deps    *Dependencies
	flights *services.FlightLifecycleService
	reports *services.ReportValidationService
	tours   *services.TourProgressService
}

// NewHandlers creates the handler set from the composition root.
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps:    deps,
		flights: deps.Services.Flights,
		reports: deps.Services.Reports,
		tours:   deps.Services.Tours,
	}
}
