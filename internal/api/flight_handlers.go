package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward-labs/flightdeck/internal/auth"
	"skyward-labs/flightdeck/internal/common"
	"skyward-labs/flightdeck/internal/models/dtos"
)

// BookFlight handles POST /flights/book.
func (h *Handlers) BookFlight(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	var req dtos.BookFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
		return
	}
	// Bookings are always made in the airline the caller authenticated for.
	req.VAID = claims.VAID()

	resp, err := h.flights.Book(r.Context(), claims.UserID(), &req)
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight booked", resp, http.StatusCreated)
}

// GetFlight handles GET /flights/{flightId}.
func (h *Handlers) GetFlight(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	flight, err := h.flights.GetFlight(r.Context(), claims.UserID(), chi.URLParam(r, "flightId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight details", flight)
}

// StartFlight handles PUT /flights/{flightId}/start.
func (h *Handlers) StartFlight(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	if err := h.flights.Start(r.Context(), claims.UserID(), chi.URLParam(r, "flightId")); err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight started", nil)
}

// CancelFlight handles DELETE /flights/{flightId}.
func (h *Handlers) CancelFlight(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	if err := h.flights.Cancel(r.Context(), claims.UserID(), chi.URLParam(r, "flightId")); err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight cancelled", nil)
}

// AttachOFP handles PUT /flights/{flightId}/ofp.
func (h *Handlers) AttachOFP(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	var req dtos.AttachOFPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.flights.AttachOFP(r.Context(), claims.UserID(), chi.URLParam(r, "flightId"), req.OFPID); err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight plan attached", nil)
}

// MyFlights handles GET /flights/mine.
func (h *Handlers) MyFlights(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	rows, err := h.flights.MyFlights(r.Context(), claims.UserID())
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight history", rows)
}

// ActiveFlights handles GET /flights/va/{vaId}/active.
func (h *Handlers) ActiveFlights(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()

	board, err := h.flights.ActiveBoard(r.Context(), chi.URLParam(r, "vaId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Active flights", board)
}
