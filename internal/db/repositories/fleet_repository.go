package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	models "skyward-labs/flightdeck/internal/models/gorm"
)

// FleetRepository reads and updates fleet aircraft rows with GORM.
type FleetRepository struct {
	db *gorm.DB
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(db *gorm.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

// GetByIDAndVA retrieves a fleet aircraft scoped to a VA. Returns nil
// without error when absent.
func (r *FleetRepository) GetByIDAndVA(ctx context.Context, id, vaID string) (*models.FleetAircraft, error) {
	var aircraft models.FleetAircraft

	err := r.db.WithContext(ctx).
		Where("id = ? AND va_id = ?", id, vaID).
		First(&aircraft).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch fleet aircraft: %w", err)
	}

	return &aircraft, nil
}

// ApplyUtilisationTx bumps the aircraft's cumulative counters inside the
// decide transaction.
func (r *FleetRepository) ApplyUtilisationTx(tx *gorm.DB, fleetID string, hours float64) error {
	res := tx.
		Model(&models.FleetAircraft{}).
		Where("id = ?", fleetID).
		Updates(map[string]interface{}{
			"total_flights": gorm.Expr("total_flights + ?", 1),
			"total_hours":   gorm.Expr("total_hours + ?", hours),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update fleet utilisation: %w", res.Error)
	}
	return nil
}
