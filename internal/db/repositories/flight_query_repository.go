package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/models/dtos"
	"skyward-labs/flightdeck/internal/models/entities"
)

// FlightQueryRepo serves the flight read models over sqlx. Write paths
// stay on GORM; these joins are easier to keep honest as plain SQL.
type FlightQueryRepo struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

func NewFlightQueryRepo(db *sqlx.DB) *FlightQueryRepo {
	return &FlightQueryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// PilotFlights returns the pilot's flight history with route, fleet and
// report context, newest first.
func (r *FlightQueryRepo) PilotFlights(ctx context.Context, userID string) ([]entities.PilotFlightRow, error) {
	rows := []entities.PilotFlightRow{}
	if err := r.db.SelectContext(ctx, &rows, constants.GetPilotFlights, userID); err != nil {
		return nil, fmt.Errorf("query pilot flights: %w", err)
	}
	return rows, nil
}

// ActiveFlights returns the reserved and in-progress flights of a VA for
// the live board.
func (r *FlightQueryRepo) ActiveFlights(ctx context.Context, vaID string) ([]dtos.ActiveFlight, error) {
	query := r.sb.
		Select(
			"f.id",
			"f.flight_number",
			"f.status",
			"f.departure_time",
			"u.username AS pilot_username",
			"vr.departure_icao",
			"vr.arrival_icao",
		).
		From("flights f").
		Join("users u ON f.user_id = u.id").
		Join("va_routes vr ON f.route_id = vr.id").
		Where(sq.Eq{"f.va_id": vaID}).
		Where(sq.Eq{"f.status": []constants.FlightStatus{constants.FlightReserved, constants.FlightInProgress}}).
		OrderBy("f.departure_time DESC NULLS LAST", "f.reserved_at DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active flights sql: %w", err)
	}

	var out []dtos.ActiveFlight
	sqlxRows, err := r.db.QueryxContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query active flights: %w", err)
	}
	defer sqlxRows.Close()

	for sqlxRows.Next() {
		var row dtos.ActiveFlight
		if err := sqlxRows.Scan(
			&row.ID,
			&row.FlightNumber,
			&row.Status,
			&row.DepartureTime,
			&row.PilotUsername,
			&row.DepartureICAO,
			&row.ArrivalICAO,
		); err != nil {
			return nil, fmt.Errorf("scan active flight: %w", err)
		}
		out = append(out, row)
	}
	return out, sqlxRows.Err()
}
