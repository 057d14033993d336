package api

import (
	"fmt"
	"net/http"
	"time"

	"skyward-labs/flightdeck/internal/common"
	"skyward-labs/flightdeck/internal/db"
	"skyward-labs/flightdeck/internal/models/entities"
)

// HealthCheck reports database reachability and process uptime.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	initTime := time.Now()

	servicesStatus := map[string]entities.ServiceStatus{}
	healthy := true

	if db.DB == nil {
		healthy = false
		servicesStatus["postgres"] = entities.ServiceStatus{Status: "down", Details: "not connected"}
	} else if err := db.DB.PingContext(r.Context()); err != nil {
		healthy = false
		servicesStatus["postgres"] = entities.ServiceStatus{Status: "down", Details: err.Error()}
	} else {
		servicesStatus["postgres"] = entities.ServiceStatus{Status: "up", Details: "connected"}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	resp := entities.HealthCheckResponse{
		Status:   status,
		Uptime:   fmt.Sprintf("%.0fs", time.Since(h.deps.StartTime).Seconds()),
		Services: servicesStatus,
	}

	common.RespondSuccess(w, initTime, "Health check", resp, code)
}
