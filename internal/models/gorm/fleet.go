package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FleetAircraft carries cumulative utilisation counters, bumped in the
// report approval transaction when a flight was flown on a fleet tail.
type FleetAircraft struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	VAID         string    `gorm:"column:va_id;type:uuid;index"`
	Registration string    `gorm:"column:registration"`
	AircraftName string    `gorm:"column:aircraft_name"`
	AircraftType string    `gorm:"column:aircraft_type"`
	TotalFlights int       `gorm:"column:total_flights;default:0"`
	TotalHours   float64   `gorm:"column:total_hours;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FleetAircraft) TableName() string {
	return "va_fleet"
}

func (f *FleetAircraft) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
