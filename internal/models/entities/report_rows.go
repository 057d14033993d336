package entities

import (
	"time"

	"skyward-labs/flightdeck/internal/constants"
)

// PilotFlightRow is the read model behind GET /flights/mine.
type PilotFlightRow struct {
	ID                   string                  `db:"id" json:"id"`
	FlightNumber         string                  `db:"flight_number" json:"flight_number"`
	Status               constants.FlightStatus  `db:"status" json:"status"`
	ReservedAt           time.Time               `db:"reserved_at" json:"reserved_at"`
	DepartureTime        *time.Time              `db:"departure_time" json:"departure_time,omitempty"`
	ArrivalTime          *time.Time              `db:"arrival_time" json:"arrival_time,omitempty"`
	VAName               string                  `db:"va_name" json:"va_name"`
	DepartureICAO        string                  `db:"departure_icao" json:"departure_icao"`
	ArrivalICAO          string                  `db:"arrival_icao" json:"arrival_icao"`
	AircraftRegistration *string                 `db:"aircraft_registration" json:"aircraft_registration,omitempty"`
	ValidationStatus     *constants.ReportStatus `db:"validation_status" json:"validation_status,omitempty"`
	PointsAwarded        *int                    `db:"points_awarded" json:"points_awarded,omitempty"`
}

// PilotReportRow is the read model behind GET /reports/mine/va/{vaId}.
type PilotReportRow struct {
	ID                string                 `db:"id" json:"id"`
	FlightID          string                 `db:"flight_id" json:"flight_id"`
	FlightDuration    int                    `db:"flight_duration" json:"flight_duration"`
	LandingRate       float64                `db:"landing_rate" json:"landing_rate"`
	ProvisionalPoints int                    `db:"provisional_points" json:"provisional_points"`
	PointsAwarded     *int                   `db:"points_awarded" json:"points_awarded,omitempty"`
	ValidationStatus  constants.ReportStatus `db:"validation_status" json:"validation_status"`
	AdminNotes        *string                `db:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt         time.Time              `db:"created_at" json:"created_at"`
	ValidatedAt       *time.Time             `db:"validated_at" json:"validated_at,omitempty"`
	FlightNumber      string                 `db:"flight_number" json:"flight_number"`
	DepartureICAO     string                 `db:"departure_icao" json:"departure_icao"`
	ArrivalICAO       string                 `db:"arrival_icao" json:"arrival_icao"`
}

// ReviewQueueRow is one pending (or filtered) report joined with its
// flight, route and pilot context for the admin review queue.
type ReviewQueueRow struct {
	ID                   string                 `db:"id" json:"id"`
	FlightID             string                 `db:"flight_id" json:"flight_id"`
	FlightNumber         string                 `db:"flight_number" json:"flight_number"`
	PilotID              string                 `db:"pilot_id" json:"pilot_id"`
	PilotUsername        string                 `db:"pilot_username" json:"pilot_username"`
	DepartureICAO        string                 `db:"departure_icao" json:"departure_icao"`
	ArrivalICAO          string                 `db:"arrival_icao" json:"arrival_icao"`
	AircraftRegistration *string                `db:"aircraft_registration" json:"aircraft_registration,omitempty"`
	FlightDuration       int                    `db:"flight_duration" json:"flight_duration"`
	DistanceFlown        float64                `db:"distance_flown" json:"distance_flown"`
	FuelUsed             float64                `db:"fuel_used" json:"fuel_used"`
	LandingRate          float64                `db:"landing_rate" json:"landing_rate"`
	ProvisionalPoints    int                    `db:"provisional_points" json:"provisional_points"`
	ValidationStatus     constants.ReportStatus `db:"validation_status" json:"validation_status"`
	CreatedAt            time.Time              `db:"created_at" json:"created_at"`
}
