package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/errs"
	"skyward-labs/flightdeck/internal/logging"
	"skyward-labs/flightdeck/internal/models/dtos"
)

// GetResponseTime formats the elapsed time since initTime for the envelope.
func GetResponseTime(initTime time.Time) string {
	return fmt.Sprintf("%dms", time.Since(initTime).Milliseconds())
}

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	}

	writeJSON(w, code, response)
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && code != http.StatusInternalServerError && err.Error() != "" {
		msg = err.Error()
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ResponseTime: GetResponseTime(initTime),
	}

	writeJSON(w, code, response)
}

// RespondServiceError maps a taxonomy error to its HTTP status. Internal
// failures are logged and masked with a generic message.
func RespondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	code := errs.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		logging.Error("request failed", "error", err.Error())
		RespondError(w, initTime, nil, "Internal server error", code)
		return
	}
	RespondError(w, initTime, err, err.Error(), code)
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
