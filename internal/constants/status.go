package constants

import (
	"database/sql/driver"
	"fmt"
)

// FlightStatus mirrors the Postgres ENUM 'flight_status'
type FlightStatus string

const (
	FlightReserved   FlightStatus = "reserved"
	FlightInProgress FlightStatus = "in_progress"
	FlightCompleted  FlightStatus = "completed"
	FlightCancelled  FlightStatus = "cancelled"
)

func (s FlightStatus) String() string { return string(s) }

// flightTransitions is the single source of truth for legal flight edges.
// Cancellation of a reserved flight deletes the row, so "cancelled" exists
// only as a transition label, never as a stored status.
var flightTransitions = map[FlightStatus][]FlightStatus{
	FlightReserved:   {FlightInProgress, FlightCancelled},
	FlightInProgress: {FlightCompleted},
	FlightCompleted:  {},
	FlightCancelled:  {},
}

// CanTransition reports whether from → to is a legal flight state edge.
func (s FlightStatus) CanTransition(to FlightStatus) bool {
	for _, next := range flightTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Scan implements the sql.Scanner interface
func (s *FlightStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = FlightStatus(v)
	case []byte:
		*s = FlightStatus(v)
	default:
		return fmt.Errorf("FlightStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s FlightStatus) Value() (driver.Value, error) { return string(s), nil }

// ReportStatus mirrors the Postgres ENUM 'validation_status'
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
	ReportRejected ReportStatus = "rejected"
)

func (s ReportStatus) String() string { return string(s) }

// IsDecision reports whether the status is a terminal admin decision.
func (s ReportStatus) IsDecision() bool {
	return s == ReportApproved || s == ReportRejected
}

// ParseReportStatus validates a status string from a request body or query.
func ParseReportStatus(raw string) (ReportStatus, error) {
	switch ReportStatus(raw) {
	case ReportPending:
		return ReportPending, nil
	case ReportApproved:
		return ReportApproved, nil
	case ReportRejected:
		return ReportRejected, nil
	}
	return "", fmt.Errorf("unknown validation status: %q", raw)
}

// Scan implements the sql.Scanner interface
func (s *ReportStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = ReportStatus(v)
	case []byte:
		*s = ReportStatus(v)
	default:
		return fmt.Errorf("ReportStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s ReportStatus) Value() (driver.Value, error) { return string(s), nil }

// TourStatus mirrors the Postgres ENUM 'tour_progress_status'
type TourStatus string

const (
	TourInProgress TourStatus = "in_progress"
	TourCompleted  TourStatus = "completed"
)

func (s TourStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *TourStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = TourStatus(v)
	case []byte:
		*s = TourStatus(v)
	default:
		return fmt.Errorf("TourStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s TourStatus) Value() (driver.Value, error) { return string(s), nil }
