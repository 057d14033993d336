package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

// FlightRepository manages flight rows with GORM. The state-changing
// methods are conditional updates keyed on the current status, so a lost
// race surfaces as zero affected rows instead of a silent overwrite.
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Create inserts a new reservation.
func (r *FlightRepository) Create(ctx context.Context, flight *models.Flight) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

// GetOwned fetches a flight by id scoped to its owner. Missing rows and
// wrong owners are indistinguishable to the caller.
func (r *FlightRepository) GetOwned(ctx context.Context, id, userID string) (*models.Flight, error) {
	var flight models.Flight

	err := r.db.WithContext(ctx).
		Preload("Route").
		Preload("Fleet").
		Where("id = ? AND user_id = ?", id, userID).
		First(&flight).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// CountOpen returns the number of reserved or in-progress flights the
// pilot holds on a route within a VA.
func (r *FlightRepository) CountOpen(ctx context.Context, userID, vaID, routeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Flight{}).
		Where("user_id = ? AND va_id = ? AND route_id = ? AND status IN ?",
			userID, vaID, routeID,
			[]constants.FlightStatus{constants.FlightReserved, constants.FlightInProgress}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count open flights: %w", err)
	}
	return count, nil
}

// Start moves a reserved flight to in_progress. Departure time is only
// set when still empty. Returns the number of rows updated.
func (r *FlightRepository) Start(ctx context.Context, id, userID string, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Flight{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, constants.FlightReserved).
		Updates(map[string]interface{}{
			"status":         constants.FlightInProgress,
			"departure_time": gorm.Expr("COALESCE(departure_time, ?)", now),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to start flight: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CompleteTx moves an in-progress flight to completed inside the report
// submission transaction. Returns the number of rows updated.
func (r *FlightRepository) CompleteTx(tx *gorm.DB, id, userID string, now time.Time) (int64, error) {
	res := tx.
		Model(&models.Flight{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, constants.FlightInProgress).
		Updates(map[string]interface{}{
			"status":       constants.FlightCompleted,
			"arrival_time": now,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to complete flight: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteReserved hard-deletes a reserved flight. Returns the number of
// rows deleted; zero means the flight was missing, foreign, or past
// reservation.
func (r *FlightRepository) DeleteReserved(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, constants.FlightReserved).
		Delete(&models.Flight{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete flight: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// SetOFP attaches an external flight-plan reference to an owned flight.
func (r *FlightRepository) SetOFP(ctx context.Context, id, userID, ofpID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Flight{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("ofp_id", ofpID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to set ofp id: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteStaleReserved removes reservations older than cutoff. Used by the
// background sweeper only.
func (r *FlightRepository) DeleteStaleReserved(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND reserved_at < ?", constants.FlightReserved, cutoff).
		Delete(&models.Flight{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to sweep stale flights: %w", res.Error)
	}
	return res.RowsAffected, nil
}
