package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/db/repositories"
	"skyward-labs/flightdeck/internal/errs"
	"skyward-labs/flightdeck/internal/models/dtos"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

func newTourService(db *gorm.DB) *TourProgressService {
	return NewTourProgressService(
		repositories.NewTourRepository(db),
		repositories.NewMembershipRepository(db),
	)
}

// seedTriangleTour creates a three leg tour KLAX→KSFO→KSEA→KLAX plus the
// matching routes.
func seedTriangleTour(t *testing.T, db *gorm.DB, fx testFixture) (models.Tour, []models.Route) {
	t.Helper()

	tour := models.Tour{
		VAID:        fx.VA.ID,
		Title:       "West Coast Triangle",
		Description: "Three legs around the west coast",
		Status:      "active",
		CreatedBy:   fx.Admin.ID,
	}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("failed to seed tour: %v", err)
	}

	pairs := [][2]string{
		{"KLAX", "KSFO"},
		{"KSFO", "KSEA"},
		{"KSEA", "KLAX"},
	}
	routes := make([]models.Route, 0, len(pairs))
	for i, pair := range pairs {
		leg := models.TourLeg{
			TourID:        tour.ID,
			LegNumber:     i + 1,
			DepartureICAO: pair[0],
			ArrivalICAO:   pair[1],
		}
		if err := db.Create(&leg).Error; err != nil {
			t.Fatalf("failed to seed leg %d: %v", i+1, err)
		}

		route := models.Route{
			VAID:          fx.VA.ID,
			FlightNumber:  "TAW20" + string(rune('1'+i)),
			DepartureICAO: pair[0],
			ArrivalICAO:   pair[1],
			AircraftType:  "A320",
			IsActive:      true,
		}
		if err := db.Create(&route).Error; err != nil {
			t.Fatalf("failed to seed route %d: %v", i+1, err)
		}
		routes = append(routes, route)
	}

	return tour, routes
}

// flyAndApprove runs a full leg: book, start, submit and approve.
func flyAndApprove(t *testing.T, db *gorm.DB, fx testFixture, routeID string, duration int) {
	t.Helper()

	reportSvc := newReportService(db)
	flightID := bookAndStart(t, db, fx, routeID, nil)

	resp, err := reportSvc.Submit(context.Background(), fx.Pilot.ID, flightID, &dtos.SubmitReportRequest{
		FlightDuration: duration,
		LandingRate:    -120,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if _, err := reportSvc.Decide(context.Background(), fx.Admin.ID, fx.VA.ID, resp.ReportID, &dtos.DecideReportRequest{
		ValidationStatus: "approved",
	}); err != nil {
		t.Fatalf("Decide failed: %v", err)
	}
}

func TestJoinTour(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)
	tour, _ := seedTriangleTour(t, db, fx)
	svc := newTourService(db)

	progress, err := svc.Join(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if progress.Status != constants.TourInProgress {
		t.Errorf("expected in_progress, got %s", progress.Status)
	}
	if progress.CurrentLeg != 1 {
		t.Errorf("expected current leg 1, got %d", progress.CurrentLeg)
	}

	_, err = svc.Join(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID)
	if !errors.Is(err, errs.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
}

func TestJoinTourNotFound(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)
	svc := newTourService(db)

	_, err := svc.Join(context.Background(), fx.Pilot.ID, fx.VA.ID, "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJoinTourNotAMember(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)
	tour, _ := seedTriangleTour(t, db, fx)
	svc := newTourService(db)

	outsider := models.User{Username: "outsider", IsActive: true}
	if err := db.Create(&outsider).Error; err != nil {
		t.Fatalf("failed to seed outsider: %v", err)
	}

	_, err := svc.Join(context.Background(), outsider.ID, fx.VA.ID, tour.ID)
	if !errors.Is(err, errs.ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember, got %v", err)
	}
}

func TestTourCompletionAcrossLegs(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)
	tour, routes := seedTriangleTour(t, db, fx)
	svc := newTourService(db)

	if _, err := svc.Join(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	flyAndApprove(t, db, fx, routes[0].ID, 65)

	progress, err := svc.GetProgress(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.CompletedCount != 1 {
		t.Errorf("expected 1 completed leg, got %d", progress.CompletedCount)
	}
	if progress.CurrentLeg != 2 {
		t.Errorf("expected current leg 2, got %d", progress.CurrentLeg)
	}
	if progress.Status != constants.TourInProgress.String() {
		t.Errorf("expected in_progress, got %s", progress.Status)
	}

	flyAndApprove(t, db, fx, routes[1].ID, 90)
	flyAndApprove(t, db, fx, routes[2].ID, 75)

	progress, err = svc.GetProgress(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.CompletedCount != 3 {
		t.Errorf("expected 3 completed legs, got %d", progress.CompletedCount)
	}
	if progress.Status != constants.TourCompleted.String() {
		t.Errorf("expected completed tour, got %s", progress.Status)
	}
	if progress.CompletedAt == nil {
		t.Error("expected completed_at to be set")
	}
}

func TestTourOutOfOrderLegs(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)
	tour, routes := seedTriangleTour(t, db, fx)
	svc := newTourService(db)

	if _, err := svc.Join(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	// Leg 2 first. The completion counts but the pointer stays on the
	// smallest uncompleted leg.
	flyAndApprove(t, db, fx, routes[1].ID, 90)

	progress, err := svc.GetProgress(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.CompletedCount != 1 {
		t.Errorf("expected 1 completed leg, got %d", progress.CompletedCount)
	}
	if progress.CurrentLeg != 1 {
		t.Errorf("expected current leg to stay 1, got %d", progress.CurrentLeg)
	}

	flyAndApprove(t, db, fx, routes[0].ID, 65)

	progress, err = svc.GetProgress(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.CurrentLeg != 3 {
		t.Errorf("expected current leg 3 after legs 1 and 2, got %d", progress.CurrentLeg)
	}
}

func TestTourLegConstraints(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)
	svc := newTourService(db)

	aircraft := "B738"
	minTime := 120
	tour := models.Tour{
		VAID:      fx.VA.ID,
		Title:     "Constrained Hop",
		Status:    "active",
		CreatedBy: fx.Admin.ID,
	}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("failed to seed tour: %v", err)
	}
	leg := models.TourLeg{
		TourID:           tour.ID,
		LegNumber:        1,
		DepartureICAO:    fx.Route.DepartureICAO,
		ArrivalICAO:      fx.Route.ArrivalICAO,
		RequiredAircraft: &aircraft,
		MinFlightTime:    &minTime,
	}
	if err := db.Create(&leg).Error; err != nil {
		t.Fatalf("failed to seed leg: %v", err)
	}

	if _, err := svc.Join(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	// The fixture fleet is an A320 and the flight is too short, so the leg
	// must not complete despite the ICAO match.
	reportSvc := newReportService(db)
	flightID := bookAndStart(t, db, fx, fx.Route.ID, &fx.Fleet.ID)
	resp, err := reportSvc.Submit(context.Background(), fx.Pilot.ID, flightID, &dtos.SubmitReportRequest{
		FlightDuration: 65,
		LandingRate:    -120,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := reportSvc.Decide(context.Background(), fx.Admin.ID, fx.VA.ID, resp.ReportID, &dtos.DecideReportRequest{
		ValidationStatus: "approved",
	}); err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	progress, err := svc.GetProgress(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if progress.CompletedCount != 0 {
		t.Errorf("expected no completed legs, got %d", progress.CompletedCount)
	}
	if progress.Status != constants.TourInProgress.String() {
		t.Errorf("expected tour to stay in_progress, got %s", progress.Status)
	}
}

func TestListTours(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)
	tour, _ := seedTriangleTour(t, db, fx)
	svc := newTourService(db)

	if _, err := svc.Join(context.Background(), fx.Pilot.ID, fx.VA.ID, tour.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	summaries, err := svc.ListTours(context.Background(), fx.VA.ID)
	if err != nil {
		t.Fatalf("ListTours failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 tour, got %d", len(summaries))
	}
	if summaries[0].TotalLegs != 3 {
		t.Errorf("expected 3 legs, got %d", summaries[0].TotalLegs)
	}
	if summaries[0].Participants != 1 {
		t.Errorf("expected 1 participant, got %d", summaries[0].Participants)
	}
	if summaries[0].Completions != 0 {
		t.Errorf("expected 0 completions, got %d", summaries[0].Completions)
	}
}
