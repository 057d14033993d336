package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Route struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	VAID          string    `gorm:"column:va_id;type:uuid;index"`
	FlightNumber  string    `gorm:"column:flight_number"`
	DepartureICAO string    `gorm:"column:departure_icao"`
	DepartureName string    `gorm:"column:departure_name"`
	ArrivalICAO   string    `gorm:"column:arrival_icao"`
	ArrivalName   string    `gorm:"column:arrival_name"`
	AircraftType  string    `gorm:"column:aircraft_type"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Route) TableName() string {
	return "va_routes"
}

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
