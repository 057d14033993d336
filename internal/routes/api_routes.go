package routes

import (
	"github.com/go-chi/chi/v5"

	"skyward-labs/flightdeck/internal/api"
	"skyward-labs/flightdeck/internal/middleware"
)

// registerAPIRoutes mounts /api/v1. Everything below requires
// authentication; the nested groups tighten from member to staff.
func registerAPIRoutes(r chi.Router, deps *api.Dependencies, h *api.Handlers) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(deps.Cfg.JWTSecret, deps.Repos.Keys, deps.Repos.Members))
		r.Use(middleware.MetricsMiddleware(deps.Metrics))

		r.Group(func(r chi.Router) {
			r.Use(middleware.IsMemberMiddleware())

			// Flight lifecycle
			r.Post("/flights/book", h.BookFlight)
			r.Get("/flights/mine", h.MyFlights)
			r.Get("/flights/va/{vaId}/active", h.ActiveFlights)
			r.Get("/flights/{flightId}", h.GetFlight)
			r.Put("/flights/{flightId}/start", h.StartFlight)
			r.Post("/flights/{flightId}/report", h.SubmitReport)
			r.Put("/flights/{flightId}/ofp", h.AttachOFP)
			r.Delete("/flights/{flightId}", h.CancelFlight)

			// Pilot's own reports
			r.Get("/reports/mine/va/{vaId}", h.MyReports)

			// Tours
			r.Get("/tours/va/{vaId}", h.ListTours)
			r.Get("/tours/{vaId}/{tourId}", h.GetTour)
			r.Post("/tours/{vaId}/{tourId}/join", h.JoinTour)
			r.Get("/tours/{vaId}/{tourId}/my-progress", h.MyTourProgress)

			// Review surface, staff only
			r.Group(func(r chi.Router) {
				r.Use(middleware.IsStaffMiddleware())

				r.Get("/reports/va/{vaId}", h.ListReports)
				r.Get("/reports/{reportId}", h.GetReport)
				r.Put("/reports/{reportId}/validate", h.DecideReport)
			})
		})
	})
}
