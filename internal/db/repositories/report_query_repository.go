package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/models/entities"
)

// ReportQueryRepo serves the staff review queue and pilot report history
// over sqlx.
type ReportQueryRepo struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

func NewReportQueryRepo(db *sqlx.DB) *ReportQueryRepo {
	return &ReportQueryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// PilotReports returns one pilot's reports within a VA, newest first.
func (r *ReportQueryRepo) PilotReports(ctx context.Context, userID, vaID string) ([]entities.PilotReportRow, error) {
	rows := []entities.PilotReportRow{}
	if err := r.db.SelectContext(ctx, &rows, constants.GetPilotReports, userID, vaID); err != nil {
		return nil, fmt.Errorf("query pilot reports: %w", err)
	}
	return rows, nil
}

// ReviewQueue lists a VA's reports for staff review, oldest first so the
// queue drains in submission order. An empty status lists every report.
func (r *ReportQueryRepo) ReviewQueue(ctx context.Context, vaID string, status constants.ReportStatus) ([]entities.ReviewQueueRow, error) {
	query := r.sb.
		Select(
			"fr.id",
			"fr.flight_id",
			"f.flight_number",
			"f.user_id AS pilot_id",
			"u.username AS pilot_username",
			"vr.departure_icao",
			"vr.arrival_icao",
			"vf.registration AS aircraft_registration",
			"fr.flight_duration",
			"fr.distance_flown",
			"fr.fuel_used",
			"fr.landing_rate",
			"fr.provisional_points",
			"fr.validation_status",
			"fr.created_at",
		).
		From("flight_reports fr").
		Join("flights f ON fr.flight_id = f.id").
		Join("users u ON f.user_id = u.id").
		Join("va_routes vr ON f.route_id = vr.id").
		LeftJoin("va_fleet vf ON f.fleet_id = vf.id").
		Where(sq.Eq{"f.va_id": vaID}).
		OrderBy("fr.created_at ASC")

	if status != "" {
		query = query.Where(sq.Eq{"fr.validation_status": status})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review queue sql: %w", err)
	}

	rows := []entities.ReviewQueueRow{}
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("query review queue: %w", err)
	}
	return rows, nil
}
