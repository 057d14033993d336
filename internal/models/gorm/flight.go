package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
)

// Flight is one pilot's reservation/execution of a route. Status moves
// reserved → in_progress → completed; cancellation deletes the row while
// still reserved. Transition legality lives in constants.FlightStatus.
type Flight struct {
	ID            string                 `gorm:"column:id;primaryKey;type:uuid"`
	UserID        string                 `gorm:"column:user_id;type:uuid;index"`
	VAID          string                 `gorm:"column:va_id;type:uuid;index"`
	RouteID       string                 `gorm:"column:route_id;type:uuid"`
	FleetID       *string                `gorm:"column:fleet_id;type:uuid"`
	FlightNumber  string                 `gorm:"column:flight_number"`
	Status        constants.FlightStatus `gorm:"column:status;type:flight_status"`
	OFPID         *string                `gorm:"column:ofp_id"`
	ReservedAt    time.Time              `gorm:"column:reserved_at;autoCreateTime"`
	DepartureTime *time.Time             `gorm:"column:departure_time"`
	ArrivalTime   *time.Time             `gorm:"column:arrival_time"`
	UpdatedAt     time.Time              `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Route Route          `gorm:"foreignKey:RouteID"`
	Fleet *FleetAircraft `gorm:"foreignKey:FleetID"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

func (f *Flight) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
