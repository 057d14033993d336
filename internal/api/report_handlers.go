package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward-labs/flightdeck/internal/auth"
	"skyward-labs/flightdeck/internal/common"
	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/errs"
	"skyward-labs/flightdeck/internal/models/dtos"
)

// SubmitReport handles POST /flights/{flightId}/report. This is the
// completion path: the flight moves to completed and the pending report
// is filed atomically.
func (h *Handlers) SubmitReport(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	var req dtos.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.reports.Submit(r.Context(), claims.UserID(), chi.URLParam(r, "flightId"), &req)
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight report submitted", resp, http.StatusCreated)
}

// ListReports handles GET /reports/va/{vaId}?status=. Staff only; the
// default view is the pending queue, oldest first. The staff role in the
// claims belongs to the caller's own airline, so the URL airline must be
// that one.
func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	vaID := chi.URLParam(r, "vaId")
	if claims.VAID() != vaID {
		common.RespondServiceError(w, initTime, errs.Wrap(errs.ErrPermissionDenied, constants.MsgNotAuthorized))
		return
	}

	rows, err := h.reports.ListReports(r.Context(), vaID, r.URL.Query().Get("status"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight reports", rows)
}

// GetReport handles GET /reports/{reportId}. Staff only.
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	report, err := h.reports.GetReport(r.Context(), claims.VAID(), chi.URLParam(r, "reportId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight report", report)
}

// DecideReport handles PUT /reports/{reportId}/validate. Staff only;
// exactly one decision per report ever commits.
func (h *Handlers) DecideReport(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	var req dtos.DecideReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.reports.Decide(r.Context(), claims.UserID(), claims.VAID(), chi.URLParam(r, "reportId"), &req)
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Flight report reviewed", report)
}

// MyReports handles GET /reports/mine/va/{vaId}.
func (h *Handlers) MyReports(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()
	claims := auth.GetUserClaims(r.Context())

	rows, err := h.reports.MyReports(r.Context(), claims.UserID(), chi.URLParam(r, "vaId"))
	if err != nil {
		common.RespondServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "My flight reports", rows)
}
