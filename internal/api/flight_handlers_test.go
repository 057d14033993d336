package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skyward-labs/flightdeck/internal/api"
	"skyward-labs/flightdeck/internal/auth"
	"skyward-labs/flightdeck/internal/common"
	"skyward-labs/flightdeck/internal/config"
	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/db/repositories"
	"skyward-labs/flightdeck/internal/metrics"
	"skyward-labs/flightdeck/internal/models/dtos"
	models "skyward-labs/flightdeck/internal/models/gorm"
	"skyward-labs/flightdeck/internal/routes"
	"skyward-labs/flightdeck/internal/services"
)

const testSecret = "test-secret"

// Prometheus collectors register globally, so the registry is shared by
// every test in the package.
var testRegistry = metrics.NewMetricsRegistry()

type testEnv struct {
	router http.Handler
	db     *gorm.DB
	pilot  models.User
	admin  models.User
	va     models.VA
	route  models.Route
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.VA{}, &models.VAMember{}, &models.Route{},
		&models.FleetAircraft{}, &models.Flight{}, &models.FlightReport{},
		&models.Tour{}, &models.TourLeg{}, &models.TourProgress{}, &models.TourLegCompletion{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	pilot := models.User{Username: "httppilot", IsActive: true}
	admin := models.User{Username: "httpadmin", IsActive: true}
	for _, u := range []*models.User{&pilot, &admin} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	va := models.VA{Name: "HTTP Air", Callsign: "HTA", OwnerID: admin.ID, IsActive: true}
	if err := db.Create(&va).Error; err != nil {
		t.Fatalf("failed to seed va: %v", err)
	}
	memberships := []models.VAMember{
		{UserID: pilot.ID, VAID: va.ID, Role: constants.RolePilot, IsActive: true},
		{UserID: admin.ID, VAID: va.ID, Role: constants.RoleAdmin, IsActive: true},
	}
	for i := range memberships {
		if err := db.Create(&memberships[i]).Error; err != nil {
			t.Fatalf("failed to seed membership: %v", err)
		}
	}

	route := models.Route{
		VAID:          va.ID,
		FlightNumber:  "HTA100",
		DepartureICAO: "EGLL",
		ArrivalICAO:   "EHAM",
		AircraftType:  "B738",
		IsActive:      true,
	}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("failed to seed route: %v", err)
	}

	cfg := &config.Config{AppEnv: "test", JWTSecret: testSecret}
	cache := common.NewCacheService(60, 120)

	repos := &api.Repositories{
		Flights: repositories.NewFlightRepository(db),
		Reports: repositories.NewReportRepository(db),
		Members: repositories.NewMembershipRepository(db),
		Routes:  repositories.NewRouteRepository(db),
		Fleet:   repositories.NewFleetRepository(db),
		Tours:   repositories.NewTourRepository(db),
	}
	svcs := &api.Services{
		Flights: services.NewFlightLifecycleService(
			repos.Flights, nil, repos.Members, repos.Routes, repos.Fleet, cache, nil),
		Reports: services.NewReportValidationService(
			db, repos.Flights, repos.Reports, nil, repos.Members, repos.Fleet, repos.Tours, cache, nil),
		Tours: services.NewTourProgressService(repos.Tours, repos.Members),
	}

	deps := &api.Dependencies{
		Cfg:       cfg,
		Repos:     repos,
		Services:  svcs,
		Cache:     cache,
		Metrics:   testRegistry,
		StartTime: time.Now(),
	}

	return &testEnv{
		router: routes.NewRouter(deps),
		db:     db,
		pilot:  pilot,
		admin:  admin,
		va:     va,
		route:  route,
	}
}

func (e *testEnv) token(t *testing.T, user models.User, role constants.VARole) string {
	t.Helper()
	token, err := auth.SignToken(testSecret, user.ID, e.va.ID, role, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse {
	t.Helper()
	var resp dtos.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode envelope: %v (%s)", err, rec.Body.String())
	}
	return resp
}

func dataField(t *testing.T, resp dtos.APIResponse, key string) string {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	val, ok := data[key].(string)
	if !ok {
		t.Fatalf("expected string field %q in %v", key, data)
	}
	return val
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/flights/book", "", dtos.BookFlightRequest{RouteID: env.route.ID})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestFlightLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	pilotToken := env.token(t, env.pilot, constants.RolePilot)
	adminToken := env.token(t, env.admin, constants.RoleAdmin)

	// Book
	rec := env.do(t, http.MethodPost, "/api/v1/flights/book", pilotToken,
		dtos.BookFlightRequest{RouteID: env.route.ID})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	flightID := dataField(t, decodeEnvelope(t, rec), "flight_id")

	// Start
	rec = env.do(t, http.MethodPut, "/api/v1/flights/"+flightID+"/start", pilotToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Cancelling a started flight is an illegal transition.
	rec = env.do(t, http.MethodDelete, "/api/v1/flights/"+flightID, pilotToken, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("cancel started: expected 400, got %d", rec.Code)
	}

	// Submit the report
	rec = env.do(t, http.MethodPost, "/api/v1/flights/"+flightID+"/report", pilotToken,
		dtos.SubmitReportRequest{FlightDuration: 120, LandingRate: -50})
	if rec.Code != http.StatusCreated {
		t.Fatalf("report: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	reportID := dataField(t, resp, "report_id")
	if data := resp.Data.(map[string]interface{}); data["provisional_points"].(float64) != 170 {
		t.Errorf("expected 170 provisional points, got %v", data["provisional_points"])
	}

	// A pilot cannot review reports.
	rec = env.do(t, http.MethodPut, "/api/v1/reports/"+reportID+"/validate", pilotToken,
		dtos.DecideReportRequest{ValidationStatus: "approved"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("pilot validate: expected 403, got %d", rec.Code)
	}

	// Admin approves.
	rec = env.do(t, http.MethodPut, "/api/v1/reports/"+reportID+"/validate", adminToken,
		dtos.DecideReportRequest{ValidationStatus: "approved"})
	if rec.Code != http.StatusOK {
		t.Fatalf("validate: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	// The second decision loses.
	rec = env.do(t, http.MethodPut, "/api/v1/reports/"+reportID+"/validate", adminToken,
		dtos.DecideReportRequest{ValidationStatus: "rejected"})
	if rec.Code != http.StatusConflict {
		t.Errorf("double validate: expected 409, got %d", rec.Code)
	}

	// Aggregates reflect exactly one approval.
	var member models.VAMember
	if err := env.db.Where("user_id = ? AND va_id = ?", env.pilot.ID, env.va.ID).First(&member).Error; err != nil {
		t.Fatalf("membership not found: %v", err)
	}
	if member.Points != 170 || member.TotalFlights != 1 || member.TotalHours != 2.0 {
		t.Errorf("expected 170/1/2.0 aggregates, got %d/%d/%v",
			member.Points, member.TotalFlights, member.TotalHours)
	}
}

func TestTourJoinOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	pilotToken := env.token(t, env.pilot, constants.RolePilot)

	tour := models.Tour{VAID: env.va.ID, Title: "HTTP Hop", Status: "active", CreatedBy: env.admin.ID}
	if err := env.db.Create(&tour).Error; err != nil {
		t.Fatalf("failed to seed tour: %v", err)
	}
	leg := models.TourLeg{TourID: tour.ID, LegNumber: 1, DepartureICAO: "EGLL", ArrivalICAO: "EHAM"}
	if err := env.db.Create(&leg).Error; err != nil {
		t.Fatalf("failed to seed leg: %v", err)
	}

	path := "/api/v1/tours/" + env.va.ID + "/" + tour.ID + "/join"
	rec := env.do(t, http.MethodPost, path, pilotToken, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("join: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodPost, path, pilotToken, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("double join: expected 409, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/tours/"+env.va.ID+"/"+tour.ID+"/my-progress", pilotToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("my-progress: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if data := resp.Data.(map[string]interface{}); data["status"].(string) != "in_progress" {
		t.Errorf("expected in_progress tour, got %v", data["status"])
	}
}
