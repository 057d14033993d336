package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
)

type VA struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Name      string    `gorm:"column:name"`
	Callsign  string    `gorm:"column:callsign;uniqueIndex"`
	OwnerID   string    `gorm:"column:owner_id;type:uuid"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Members []VAMember `gorm:"foreignKey:VAID"`
}

// TableName specifies the table name for GORM
func (VA) TableName() string {
	return "virtual_airlines"
}

func (v *VA) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// VAMember carries the running aggregates for one pilot in one airline.
// Points, total_flights and total_hours change only inside the report
// approval transaction; submission never touches them.
type VAMember struct {
	ID           string           `gorm:"column:id;primaryKey;type:uuid"`
	UserID       string           `gorm:"column:user_id;type:uuid;uniqueIndex:idx_member_user_va"`
	VAID         string           `gorm:"column:va_id;type:uuid;uniqueIndex:idx_member_user_va"`
	Role         constants.VARole `gorm:"column:role;type:va_role"`
	IsActive     bool             `gorm:"column:is_active;default:true"`
	Points       int              `gorm:"column:points;default:0"`
	TotalFlights int              `gorm:"column:total_flights;default:0"`
	TotalHours   float64          `gorm:"column:total_hours;default:0"`
	JoinedAt     time.Time        `gorm:"column:joined_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
	VA   VA   `gorm:"foreignKey:VAID"`
}

// TableName specifies the table name for GORM
func (VAMember) TableName() string {
	return "va_members"
}

func (m *VAMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
