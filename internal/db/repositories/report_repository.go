package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

// ReportRepository manages flight report rows with GORM.
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CreateTx inserts a pending report inside the completion transaction.
func (r *ReportRepository) CreateTx(tx *gorm.DB, report *models.FlightReport) error {
	if err := tx.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create flight report: %w", err)
	}
	return nil
}

// GetByID fetches a report with its flight context.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.FlightReport, error) {
	var report models.FlightReport

	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.Route").
		Preload("Flight.Fleet").
		Where("id = ?", id).
		First(&report).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight report: %w", err)
	}

	return &report, nil
}

// DecideTx applies the terminal admin decision. The WHERE clause on
// validation_status is the single-writer guard: when two admins race, one
// update reports zero rows and the caller returns AlreadyDecided.
func (r *ReportRepository) DecideTx(
	tx *gorm.DB,
	reportID string,
	decision constants.ReportStatus,
	adminID string,
	notes *string,
	pointsAwarded int,
	now time.Time,
) (int64, error) {
	res := tx.
		Model(&models.FlightReport{}).
		Where("id = ? AND validation_status = ?", reportID, constants.ReportPending).
		Updates(map[string]interface{}{
			"validation_status": decision,
			"admin_id":          adminID,
			"admin_notes":       notes,
			"points_awarded":    pointsAwarded,
			"validated_at":      now,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to decide flight report: %w", res.Error)
	}
	return res.RowsAffected, nil
}
