package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/common"
	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/db/repositories"
	"skyward-labs/flightdeck/internal/errs"
	"skyward-labs/flightdeck/internal/logging"
	"skyward-labs/flightdeck/internal/metrics"
	"skyward-labs/flightdeck/internal/models/dtos"
	"skyward-labs/flightdeck/internal/models/entities"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

// ReportValidationService owns the report pipeline: submission completes
// the flight and files a pending report in one transaction, and the admin
// decision is a single-use transition that commits all aggregates in
// another.
type ReportValidationService struct {
	db          *gorm.DB
	flights     *repositories.FlightRepository
	reports     *repositories.ReportRepository
	reportReads *repositories.ReportQueryRepo
	members     *repositories.MembershipRepository
	fleet       *repositories.FleetRepository
	tours       *repositories.TourRepository
	cache       common.CacheInterface
	metrics     *metrics.MetricsRegistry
}

// NewReportValidationService creates a new report validation service
func NewReportValidationService(
	db *gorm.DB,
	flights *repositories.FlightRepository,
	reports *repositories.ReportRepository,
	reportReads *repositories.ReportQueryRepo,
	members *repositories.MembershipRepository,
	fleet *repositories.FleetRepository,
	tours *repositories.TourRepository,
	cache common.CacheInterface,
	m *metrics.MetricsRegistry,
) *ReportValidationService {
	return &ReportValidationService{
		db:          db,
		flights:     flights,
		reports:     reports,
		reportReads: reportReads,
		members:     members,
		fleet:       fleet,
		tours:       tours,
		cache:       cache,
		metrics:     m,
	}
}

// Submit files the post-flight report. The flight moves to completed and
// the pending report is created atomically; a second submission fails on
// the in_progress guard. Provisional points are computed here but no
// aggregate moves until an admin approves.
func (s *ReportValidationService) Submit(ctx context.Context, userID, flightID string, req *dtos.SubmitReportRequest) (*dtos.SubmitReportResponse, error) {
	if req.FlightDuration <= 0 {
		return nil, errs.Wrap(errs.ErrValidation, "flight_duration must be positive")
	}

	departure, err := parseOptionalTime(req.ActualDepartureTime)
	if err != nil {
		return nil, errs.Wrap(errs.ErrValidation, "actual_departure_time must be RFC3339")
	}
	arrival, err := parseOptionalTime(req.ActualArrivalTime)
	if err != nil {
		return nil, errs.Wrap(errs.ErrValidation, "actual_arrival_time must be RFC3339")
	}

	flight, err := s.flights.GetOwned(ctx, flightID, userID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgFlightNotFound)
	}
	if !flight.Status.CanTransition(constants.FlightCompleted) {
		return nil, errs.Wrap(errs.ErrInvalidState, constants.MsgFlightNotActive)
	}

	report := &models.FlightReport{
		FlightID:            flightID,
		ActualDepartureTime: departure,
		ActualArrivalTime:   arrival,
		FlightDuration:      req.FlightDuration,
		DistanceFlown:       req.DistanceFlown,
		FuelUsed:            req.FuelUsed,
		LandingRate:         req.LandingRate,
		TelemetryData:       models.JSONMap(req.TelemetryData),
		ProvisionalPoints:   ComputeProvisionalPoints(req.FlightDuration, req.LandingRate),
		ValidationStatus:    constants.ReportPending,
	}

	now := time.Now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.flights.CompleteTx(tx, flightID, userID, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errs.Wrap(errs.ErrInvalidState, constants.MsgFlightNotActive)
		}
		return s.reports.CreateTx(tx, report)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ReportsSubmittedTotal.Inc()
	}
	s.cache.Delete(fmt.Sprintf(constants.CacheKeyActiveFlights, flight.VAID))
	logging.Info("Flight report submitted",
		"report_id", report.ID, "flight_id", flightID, "provisional_points", report.ProvisionalPoints)

	return &dtos.SubmitReportResponse{
		ReportID:          report.ID,
		FlightID:          flightID,
		ProvisionalPoints: report.ProvisionalPoints,
		ValidationStatus:  report.ValidationStatus.String(),
	}, nil
}

// ListReports returns the VA review queue, oldest first. An empty filter
// means pending, "all" lifts the filter.
func (s *ReportValidationService) ListReports(ctx context.Context, vaID, statusRaw string) ([]entities.ReviewQueueRow, error) {
	var status constants.ReportStatus

	switch statusRaw {
	case "":
		status = constants.ReportPending
	case "all":
		status = ""
	default:
		parsed, err := constants.ParseReportStatus(statusRaw)
		if err != nil {
			return nil, errs.Wrap(errs.ErrValidation, err.Error())
		}
		status = parsed
	}

	return s.reportReads.ReviewQueue(ctx, vaID, status)
}

// GetReport returns one report scoped to the requester's VA.
func (s *ReportValidationService) GetReport(ctx context.Context, vaID, reportID string) (*models.FlightReport, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil || report.Flight.VAID != vaID {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgReportNotFound)
	}
	return report, nil
}

// MyReports returns the pilot's own reports within a VA.
func (s *ReportValidationService) MyReports(ctx context.Context, userID, vaID string) ([]entities.PilotReportRow, error) {
	return s.reportReads.PilotReports(ctx, userID, vaID)
}

// Decide applies the terminal admin decision. Exactly one decision wins:
// the conditional update inside the transaction guards against a racing
// admin, and every aggregate the approval implies (member totals, fleet
// utilisation, tour legs) commits in the same transaction or not at all.
func (s *ReportValidationService) Decide(ctx context.Context, adminID, vaID, reportID string, req *dtos.DecideReportRequest) (*models.FlightReport, error) {
	decision, err := constants.ParseReportStatus(req.ValidationStatus)
	if err != nil || !decision.IsDecision() {
		return nil, errs.Wrap(errs.ErrValidation, "validation_status must be approved or rejected")
	}

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil || report.Flight.VAID != vaID {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgReportNotFound)
	}

	points := 0
	if decision == constants.ReportApproved {
		points = report.ProvisionalPoints
		if req.PointsAwarded != nil {
			points = *req.PointsAwarded
		}
	}

	var notes *string
	if req.AdminNotes != "" {
		notes = &req.AdminNotes
	}

	now := time.Now().UTC()
	legsCompleted := 0

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.reports.DecideTx(tx, reportID, decision, adminID, notes, points, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errs.Wrap(errs.ErrAlreadyDecided, constants.MsgAlreadyDecided)
		}

		if decision != constants.ReportApproved {
			return nil
		}

		hours := float64(report.FlightDuration) / 60.0
		if err := s.members.ApplyApprovedTotalsTx(tx, report.Flight.UserID, vaID, points, hours); err != nil {
			return err
		}
		if report.Flight.FleetID != nil {
			if err := s.fleet.ApplyUtilisationTx(tx, *report.Flight.FleetID, hours); err != nil {
				return err
			}
		}

		legsCompleted, err = s.applyTourLegs(tx, report, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ReportsDecidedTotal.WithLabelValues(decision.String()).Inc()
		if legsCompleted > 0 {
			s.metrics.TourLegsCompleted.Add(float64(legsCompleted))
		}
	}
	logging.Info("Flight report decided",
		"report_id", reportID, "decision", decision.String(), "admin_id", adminID,
		"points_awarded", points, "tour_legs", legsCompleted)

	return s.reports.GetByID(ctx, reportID)
}

// applyTourLegs matches the approved flight against the pilot's active
// tours. A report satisfies at most one leg per tour: the first
// uncompleted leg with the same ICAO pair whose aircraft and minimum-time
// constraints hold. Ordering is not enforced, legs may complete out of
// order.
func (s *ReportValidationService) applyTourLegs(tx *gorm.DB, report *models.FlightReport, now time.Time) (int, error) {
	flight := report.Flight
	route := flight.Route

	progressRows, err := s.tours.ListActiveProgressByPilotTx(tx, flight.UserID, flight.VAID)
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range progressRows {
		progress := &progressRows[i]

		tour, err := s.tours.GetWithLegsTx(tx, progress.TourID)
		if err != nil {
			return 0, err
		}
		if tour == nil || len(tour.Legs) == 0 {
			continue
		}

		completions, err := s.tours.ListCompletionsTx(tx, progress.TourID, flight.UserID)
		if err != nil {
			return 0, err
		}
		done := make(map[string]bool, len(completions))
		for _, c := range completions {
			done[c.LegID] = true
		}

		matched := false
		for _, leg := range tour.Legs {
			if done[leg.ID] || !legMatches(leg, route, flight, report) {
				continue
			}
			err := s.tours.CreateCompletionTx(tx, &models.TourLegCompletion{
				TourID:   progress.TourID,
				UserID:   flight.UserID,
				LegID:    leg.ID,
				ReportID: report.ID,
			})
			if err != nil {
				return 0, err
			}
			done[leg.ID] = true
			matched = true
			completed++
			break
		}
		if !matched {
			continue
		}

		nextLeg := 0
		for _, leg := range tour.Legs {
			if !done[leg.ID] {
				nextLeg = leg.LegNumber
				break
			}
		}
		if nextLeg == 0 {
			progress.Status = constants.TourCompleted
			progress.CompletedAt = &now
		} else {
			progress.CurrentLeg = nextLeg
		}
		if err := s.tours.UpdateProgressTx(tx, progress); err != nil {
			return 0, err
		}
	}

	return completed, nil
}

func legMatches(leg models.TourLeg, route models.Route, flight models.Flight, report *models.FlightReport) bool {
	if leg.DepartureICAO != route.DepartureICAO || leg.ArrivalICAO != route.ArrivalICAO {
		return false
	}
	if leg.RequiredAircraft != nil {
		if flight.Fleet == nil || flight.Fleet.AircraftType != *leg.RequiredAircraft {
			return false
		}
	}
	if leg.MinFlightTime != nil && report.FlightDuration < *leg.MinFlightTime {
		return false
	}
	return true
}

func parseOptionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
