package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	models "skyward-labs/flightdeck/internal/models/gorm"
)

// RouteRepository reads the route catalog with GORM.
type RouteRepository struct {
	db *gorm.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// GetByIDAndVA retrieves an active route scoped to a VA. Returns nil
// without error when absent.
func (r *RouteRepository) GetByIDAndVA(ctx context.Context, id, vaID string) (*models.Route, error) {
	var route models.Route

	err := r.db.WithContext(ctx).
		Where("id = ? AND va_id = ? AND is_active = ?", id, vaID, true).
		First(&route).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}

	return &route, nil
}
