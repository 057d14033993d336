package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	models "skyward-labs/flightdeck/internal/models/gorm"
)

// MembershipRepository manages va_members rows with GORM.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GetByUserAndVA retrieves a user's active membership in a specific VA.
// Returns nil without error when there is none.
func (r *MembershipRepository) GetByUserAndVA(ctx context.Context, userID, vaID string) (*models.VAMember, error) {
	var member models.VAMember

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND va_id = ? AND is_active = ?", userID, vaID, true).
		First(&member).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}

	return &member, nil
}

// ApplyApprovedTotalsTx commits one approved report into the running
// aggregates. Only ever called from the decide transaction; points,
// flights and hours move together or not at all.
func (r *MembershipRepository) ApplyApprovedTotalsTx(tx *gorm.DB, userID, vaID string, points int, hours float64) error {
	res := tx.
		Model(&models.VAMember{}).
		Where("user_id = ? AND va_id = ?", userID, vaID).
		Updates(map[string]interface{}{
			"points":        gorm.Expr("points + ?", points),
			"total_flights": gorm.Expr("total_flights + ?", 1),
			"total_hours":   gorm.Expr("total_hours + ?", hours),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update member totals: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("membership not found for user %s in va %s", userID, vaID)
	}
	return nil
}
