package dtos

// BookFlightRequest is the body of POST /flights/book.
type BookFlightRequest struct {
	VAID    string  `json:"va_id"`
	RouteID string  `json:"route_id"`
	FleetID *string `json:"fleet_id,omitempty"`
}

// SubmitReportRequest is the body of POST /flights/{id}/report. Timestamps
// are RFC3339; duration is minutes; landing rate is ft/min.
type SubmitReportRequest struct {
	ActualDepartureTime string                 `json:"actual_departure_time"`
	ActualArrivalTime   string                 `json:"actual_arrival_time"`
	FlightDuration      int                    `json:"flight_duration"`
	DistanceFlown       float64                `json:"distance_flown"`
	FuelUsed            float64                `json:"fuel_used"`
	LandingRate         float64                `json:"landing_rate"`
	TelemetryData       map[string]interface{} `json:"telemetry_data,omitempty"`
}

// DecideReportRequest is the body of PUT /reports/{id}/validate.
type DecideReportRequest struct {
	ValidationStatus string `json:"validation_status"`
	AdminNotes       string `json:"admin_notes,omitempty"`
	PointsAwarded    *int   `json:"points_awarded,omitempty"`
}

// AttachOFPRequest is the body of PUT /flights/{id}/ofp.
type AttachOFPRequest struct {
	OFPID string `json:"ofp_id"`
}
