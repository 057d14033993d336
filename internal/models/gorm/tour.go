package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
)

type Tour struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	VAID        string    `gorm:"column:va_id;type:uuid;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status;default:active"`
	CreatedBy   string    `gorm:"column:created_by;type:uuid"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Legs []TourLeg `gorm:"foreignKey:TourID"`
}

// TableName specifies the table name for GORM
func (Tour) TableName() string {
	return "va_tours"
}

func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TourLeg is one required segment. RequiredAircraft and MinFlightTime are
// optional extra constraints on top of the ICAO pair.
type TourLeg struct {
	ID               string    `gorm:"column:id;primaryKey;type:uuid"`
	TourID           string    `gorm:"column:tour_id;type:uuid;index"`
	LegNumber        int       `gorm:"column:leg_number"`
	DepartureICAO    string    `gorm:"column:departure_icao"`
	DepartureName    string    `gorm:"column:departure_name"`
	ArrivalICAO      string    `gorm:"column:arrival_icao"`
	ArrivalName      string    `gorm:"column:arrival_name"`
	RequiredAircraft *string   `gorm:"column:required_aircraft"`
	MinFlightTime    *int      `gorm:"column:min_flight_time"` // minutes
	Notes            *string   `gorm:"column:notes"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (TourLeg) TableName() string {
	return "va_tour_legs"
}

func (l *TourLeg) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// TourProgress is the append-only participation record, one per
// (tour, pilot). CurrentLeg is the smallest uncompleted leg number.
type TourProgress struct {
	ID          string               `gorm:"column:id;primaryKey;type:uuid"`
	TourID      string               `gorm:"column:tour_id;type:uuid;uniqueIndex:idx_tour_pilot"`
	UserID      string               `gorm:"column:user_id;type:uuid;uniqueIndex:idx_tour_pilot"`
	VAID        string               `gorm:"column:va_id;type:uuid"`
	Status      constants.TourStatus `gorm:"column:status;type:tour_progress_status"`
	CurrentLeg  int                  `gorm:"column:current_leg;default:1"`
	StartedAt   time.Time            `gorm:"column:started_at;autoCreateTime"`
	CompletedAt *time.Time           `gorm:"column:completed_at"`
}

// TableName specifies the table name for GORM
func (TourProgress) TableName() string {
	return "va_tour_progress"
}

func (p *TourProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TourLegCompletion is the normalized completed-legs set; one row per
// satisfied leg, keyed back to the approving report.
type TourLegCompletion struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	TourID      string    `gorm:"column:tour_id;type:uuid;uniqueIndex:idx_leg_completion"`
	UserID      string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_leg_completion"`
	LegID       string    `gorm:"column:leg_id;type:uuid;uniqueIndex:idx_leg_completion"`
	ReportID    string    `gorm:"column:report_id;type:uuid"`
	CompletedAt time.Time `gorm:"column:completed_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (TourLegCompletion) TableName() string {
	return "va_tour_leg_completions"
}

func (c *TourLegCompletion) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
