package dtos

import "time"

// APIResponse is the standard JSON envelope for all endpoints.
type APIResponse struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	ResponseTime string      `json:"response_time,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// BookFlightResponse returns the newly reserved flight.
type BookFlightResponse struct {
	FlightID     string `json:"flight_id"`
	FlightNumber string `json:"flight_number"`
	Status       string `json:"status"`
}

// SubmitReportResponse echoes the provisional score so the tracker can
// display it; the value is advisory until an admin decides.
type SubmitReportResponse struct {
	ReportID          string `json:"report_id"`
	FlightID          string `json:"flight_id"`
	ProvisionalPoints int    `json:"provisional_points"`
	ValidationStatus  string `json:"validation_status"`
}

// TourProgressResponse is the read-only projection of a pilot's tour state.
type TourProgressResponse struct {
	TourID         string     `json:"tour_id"`
	Status         string     `json:"status"`
	TotalLegs      int        `json:"total_legs"`
	CompletedCount int        `json:"completed_count"`
	CurrentLeg     int        `json:"current_leg"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// TourSummary is one row of the VA tour catalog.
type TourSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	TotalLegs    int       `json:"total_legs"`
	Participants int       `json:"participants"`
	Completions  int       `json:"completions"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActiveFlight is one row of the per-VA live board.
type ActiveFlight struct {
	ID            string     `json:"id"`
	FlightNumber  string     `json:"flight_number"`
	Status        string     `json:"status"`
	PilotUsername string     `json:"pilot_username"`
	DepartureICAO string     `json:"departure_icao"`
	ArrivalICAO   string     `json:"arrival_icao"`
	DepartureTime *time.Time `json:"departure_time,omitempty"`
}
