package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward-labs/flightdeck/internal/auth"
	"skyward-labs/flightdeck/internal/common"
)

// ListTours handles GET /tours/va/{vaId}.
func (h *Handlers) ListTours(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()

	summaries, err := h.tours.ListTours(r.Context(), chi.URLParam(r, "vaId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Tours", summaries)
}

// GetTour handles GET /tours/{vaId}/{tourId}.
func (h *Handlers) GetTour(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()

	tour, err := h.tours.GetTour(r.Context(), chi.URLParam(r, "vaId"), chi.URLParam(r, "tourId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Tour details", tour)
}

// JoinTour handles POST /tours/{vaId}/{tourId}/join.
func (h *Handlers) JoinTour(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	progress, err := h.tours.Join(r.Context(), claims.UserID(), chi.URLParam(r, "vaId"), chi.URLParam(r, "tourId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Tour joined", progress, http.StatusCreated)
}

// MyTourProgress handles GET /tours/{vaId}/{tourId}/my-progress.
func (h *Handlers) MyTourProgress(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	progress, err := h.tours.GetProgress(r.Context(), claims.UserID(), chi.URLParam(r, "vaId"), chi.URLParam(r, "tourId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Tour progress", progress)
}
