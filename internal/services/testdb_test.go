package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skyward-labs/flightdeck/internal/common"
	"skyward-labs/flightdeck/internal/constants"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

// newTestDB opens a named shared-cache in-memory database so every pooled
// connection sees the same tables.
func newTestDB(t *testing.T) *gorm.DB {
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
		&models.User{},
		&models.VA{},
		&models.VAMember{},
		&models.Route{},
		&models.FleetAircraft{},
		&models.Flight{},
		&models.FlightReport{},
		&models.Tour{},
		&models.TourLeg{},
		&models.TourProgress{},
		&models.TourLegCompletion{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestCache() common.CacheInterface {
	return common.NewCacheService(60, 120)
}

type testFixture struct {
	Pilot  models.User
	Admin  models.User
	VA     models.VA
	Member models.VAMember
	Route  models.Route
	Fleet  models.FleetAircraft
}

// seedFixture creates one airline with a pilot member, an admin member, a
// route and a fleet aircraft.
func seedFixture(t *testing.T, db *gorm.DB) testFixture {
	t.Helper()

	pilot := models.User{Username: "testpilot", IsActive: true}
	if err := db.Create(&pilot).Error; err != nil {
		t.Fatalf("failed to seed pilot: %v", err)
	}

	admin := models.User{Username: "testadmin", IsActive: true}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	va := models.VA{Name: "Test Airways", Callsign: "TAW", OwnerID: admin.ID, IsActive: true}
	if err := db.Create(&va).Error; err != nil {
		t.Fatalf("failed to seed va: %v", err)
	}

	member := models.VAMember{UserID: pilot.ID, VAID: va.ID, Role: constants.RolePilot, IsActive: true}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed to seed membership: %v", err)
	}

	adminMember := models.VAMember{UserID: admin.ID, VAID: va.ID, Role: constants.RoleAdmin, IsActive: true}
	if err := db.Create(&adminMember).Error; err != nil {
		t.Fatalf("failed to seed admin membership: %v", err)
	}

	route := models.Route{
		VAID:          va.ID,
		FlightNumber:  "TAW101",
		DepartureICAO: "KLAX",
		DepartureName: "Los Angeles Intl",
		ArrivalICAO:   "KSFO",
		ArrivalName:   "San Francisco Intl",
		AircraftType:  "A320",
		IsActive:      true,
	}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("failed to seed route: %v", err)
	}

	fleet := models.FleetAircraft{
		VAID:         va.ID,
		Registration: "N320TA",
		AircraftName: "Airbus A320-214",
		AircraftType: "A320",
	}
	if err := db.Create(&fleet).Error; err != nil {
		t.Fatalf("failed to seed fleet: %v", err)
	}

	return testFixture{
		Pilot:  pilot,
		Admin:  admin,
		VA:     va,
		Member: member,
		Route:  route,
		Fleet:  fleet,
	}
}
