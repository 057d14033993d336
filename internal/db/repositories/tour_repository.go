package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

// TourRepository manages tours, legs, progress and the normalized
// completed-legs set with GORM.
type TourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a new tour repository
func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

// GetByIDAndVA retrieves a tour with its legs ordered by leg number.
// Returns nil without error when absent.
func (r *TourRepository) GetByIDAndVA(ctx context.Context, id, vaID string) (*models.Tour, error) {
	var tour models.Tour

	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_number ASC")
		}).
		Where("id = ? AND va_id = ?", id, vaID).
		First(&tour).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour: %w", err)
	}

	return &tour, nil
}

// ListByVA retrieves all tours for a VA, legs preloaded.
func (r *TourRepository) ListByVA(ctx context.Context, vaID string) ([]models.Tour, error) {
	var tours []models.Tour

	err := r.db.WithContext(ctx).
		Preload("Legs").
		Where("va_id = ?", vaID).
		Order("created_at DESC").
		Find(&tours).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	return tours, nil
}

// GetProgress retrieves one pilot's progress row. Returns nil without
// error when the pilot never joined.
func (r *TourRepository) GetProgress(ctx context.Context, tourID, userID string) (*models.TourProgress, error) {
	var progress models.TourProgress

	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND user_id = ?", tourID, userID).
		First(&progress).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour progress: %w", err)
	}

	return &progress, nil
}

// CreateProgress inserts the participation row. The unique index on
// (tour_id, user_id) backs the AlreadyJoined contract.
func (r *TourRepository) CreateProgress(ctx context.Context, progress *models.TourProgress) error {
	if err := r.db.WithContext(ctx).Create(progress).Error; err != nil {
		return fmt.Errorf("failed to create tour progress: %w", err)
	}
	return nil
}

// GetWithLegsTx fetches a tour and its ordered legs on the transaction
// handle. Returns nil without error when absent.
func (r *TourRepository) GetWithLegsTx(tx *gorm.DB, id string) (*models.Tour, error) {
	var tour models.Tour

	err := tx.
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_number ASC")
		}).
		Where("id = ?", id).
		First(&tour).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour: %w", err)
	}

	return &tour, nil
}

// ListActiveProgressByPilotTx retrieves all in-progress participations
// for a pilot within a VA, on the transaction handle so the decide
// transaction sees its own snapshot.
func (r *TourRepository) ListActiveProgressByPilotTx(tx *gorm.DB, userID, vaID string) ([]models.TourProgress, error) {
	var rows []models.TourProgress

	err := tx.
		Where("user_id = ? AND va_id = ? AND status = ?", userID, vaID, constants.TourInProgress).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list active tour progress: %w", err)
	}

	return rows, nil
}

// ListCompletionsTx is ListCompletions on the transaction handle.
func (r *TourRepository) ListCompletionsTx(tx *gorm.DB, tourID, userID string) ([]models.TourLegCompletion, error) {
	var rows []models.TourLegCompletion

	err := tx.
		Where("tour_id = ? AND user_id = ?", tourID, userID).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list leg completions: %w", err)
	}

	return rows, nil
}

// ListCompletions retrieves the completed-leg rows for one participation.
func (r *TourRepository) ListCompletions(ctx context.Context, tourID, userID string) ([]models.TourLegCompletion, error) {
	var rows []models.TourLegCompletion

	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND user_id = ?", tourID, userID).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list leg completions: %w", err)
	}

	return rows, nil
}

// CreateCompletionTx appends a completed leg inside the approval
// transaction.
func (r *TourRepository) CreateCompletionTx(tx *gorm.DB, completion *models.TourLegCompletion) error {
	if err := tx.Create(completion).Error; err != nil {
		return fmt.Errorf("failed to record leg completion: %w", err)
	}
	return nil
}

// UpdateProgressTx persists the advanced leg pointer (and, on the last
// leg, the completed status) inside the approval transaction.
func (r *TourRepository) UpdateProgressTx(tx *gorm.DB, progress *models.TourProgress) error {
	if err := tx.Save(progress).Error; err != nil {
		return fmt.Errorf("failed to update tour progress: %w", err)
	}
	return nil
}

// CountParticipants returns (participants, completions) for a tour.
func (r *TourRepository) CountParticipants(ctx context.Context, tourID string) (int64, int64, error) {
	var participants, completions int64

	if err := r.db.WithContext(ctx).
		Model(&models.TourProgress{}).
		Where("tour_id = ?", tourID).
		Count(&participants).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count participants: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.TourProgress{}).
		Where("tour_id = ? AND status = ?", tourID, constants.TourCompleted).
		Count(&completions).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count completions: %w", err)
	}

	return participants, completions, nil
}
