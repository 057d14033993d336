package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
)

// FlightReport is the post-flight telemetry and outcome of one completed
// Flight (one-to-one). It is created in the same transaction that moves the
// flight to completed, and mutated exactly once by an admin decision.
type FlightReport struct {
	ID                  string                 `gorm:"column:id;primaryKey;type:uuid"`
	FlightID            string                 `gorm:"column:flight_id;type:uuid;uniqueIndex"`
	ActualDepartureTime *time.Time             `gorm:"column:actual_departure_time"`
	ActualArrivalTime   *time.Time             `gorm:"column:actual_arrival_time"`
	FlightDuration      int                    `gorm:"column:flight_duration"` // minutes
	DistanceFlown       float64                `gorm:"column:distance_flown"`  // nm
	FuelUsed            float64                `gorm:"column:fuel_used"`       // kg
	LandingRate         float64                `gorm:"column:landing_rate"`    // ft/min, negative on touchdown
	TelemetryData       JSONMap                `gorm:"column:telemetry_data;type:jsonb"`
	ProvisionalPoints   int                    `gorm:"column:provisional_points"`
	PointsAwarded       *int                   `gorm:"column:points_awarded"`
	ValidationStatus    constants.ReportStatus `gorm:"column:validation_status;type:validation_status"`
	AdminID             *string                `gorm:"column:admin_id;type:uuid"`
	AdminNotes          *string                `gorm:"column:admin_notes"`
	CreatedAt           time.Time              `gorm:"column:created_at;autoCreateTime"`
	ValidatedAt         *time.Time             `gorm:"column:validated_at"`

	// Relationships
	Flight Flight `gorm:"foreignKey:FlightID"`
}

// TableName specifies the table name for GORM
func (FlightReport) TableName() string {
	return "flight_reports"
}

func (r *FlightReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
