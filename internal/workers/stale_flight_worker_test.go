package workers

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/db/repositories"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

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
	if err := db.AutoMigrate(&models.Flight{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedFlight(t *testing.T, db *gorm.DB, status constants.FlightStatus, age time.Duration) string {
	t.Helper()

	flight := models.Flight{
		UserID:       "11111111-1111-1111-1111-111111111111",
		VAID:         "22222222-2222-2222-2222-222222222222",
		RouteID:      "33333333-3333-3333-3333-333333333333",
		FlightNumber: "TAW101",
		Status:       status,
	}
	if err := db.Create(&flight).Error; err != nil {
		t.Fatalf("failed to seed flight: %v", err)
	}

	reservedAt := time.Now().UTC().Add(-age)
	if err := db.Model(&models.Flight{}).Where("id = ?", flight.ID).
		Update("reserved_at", reservedAt).Error; err != nil {
		t.Fatalf("failed to backdate flight: %v", err)
	}
	return flight.ID
}

func TestSweepRemovesOnlyStaleReservations(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFlightRepository(db)

	stale := seedFlight(t, db, constants.FlightReserved, 100*time.Hour)
	fresh := seedFlight(t, db, constants.FlightReserved, time.Hour)
	active := seedFlight(t, db, constants.FlightInProgress, 100*time.Hour)

	worker := NewStaleFlightWorker(repo, nil, 72*time.Hour, time.Minute)
	worker.sweep(context.Background())

	var count int64
	db.Model(&models.Flight{}).Where("id = ?", stale).Count(&count)
	if count != 0 {
		t.Error("expected stale reservation to be swept")
	}

	for _, id := range []string{fresh, active} {
		db.Model(&models.Flight{}).Where("id = ?", id).Count(&count)
		if count != 1 {
			t.Errorf("flight %s should not be swept", id)
		}
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFlightRepository(db)

	worker := NewStaleFlightWorker(repo, nil, 72*time.Hour, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
