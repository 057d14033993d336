package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"skyward-labs/flightdeck/internal/common"
	"skyward-labs/flightdeck/internal/config"
	"skyward-labs/flightdeck/internal/db/repositories"
	"skyward-labs/flightdeck/internal/logging"
	"skyward-labs/flightdeck/internal/metrics"
	"skyward-labs/flightdeck/internal/services"
)

// Repositories bundles the data access layer.
type Repositories struct {
	Flights     *repositories.FlightRepository
	FlightReads *repositories.FlightQueryRepo
	Reports     *repositories.ReportRepository
	ReportReads *repositories.ReportQueryRepo
	Members     *repositories.MembershipRepository
	Routes      *repositories.RouteRepository
	Fleet       *repositories.FleetRepository
	Tours       *repositories.TourRepository
	Keys        *repositories.KeysRepo
}

// Services bundles the business logic layer.
type Services struct {
	Flights *services.FlightLifecycleService
	Reports *services.ReportValidationService
	Tours   *services.TourProgressService
}

// Dependencies is the composition root handed to the router and handlers.
type Dependencies struct {
	Cfg       *config.Config
	Repos     *Repositories
	Services  *Services
	Cache     common.CacheInterface
	Metrics   *metrics.MetricsRegistry
	StartTime time.Time
}

// InitDependencies wires repositories, services and shared infrastructure.
func InitDependencies(cfg *config.Config, gormDB *gorm.DB, sqlxDB *sqlx.DB) *Dependencies {
	var cache common.CacheInterface
	if cfg.RedisHost != "" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
			cache = common.NewCacheService(600, 1200)
		} else {
			logging.Info("Using Redis cache", "host", cfg.RedisHost)
			cache = redisCache
		}
	} else {
		cache = common.NewCacheService(600, 1200)
	}

	registry := metrics.NewMetricsRegistry()

	repos := &Repositories{
		Flights:     repositories.NewFlightRepository(gormDB),
		FlightReads: repositories.NewFlightQueryRepo(sqlxDB),
		Reports:     repositories.NewReportRepository(gormDB),
		ReportReads: repositories.NewReportQueryRepo(sqlxDB),
		Members:     repositories.NewMembershipRepository(gormDB),
		Routes:      repositories.NewRouteRepository(gormDB),
		Fleet:       repositories.NewFleetRepository(gormDB),
		Tours:       repositories.NewTourRepository(gormDB),
		Keys:        repositories.NewApiKeysRepo(sqlxDB),
	}

	svcs := &Services{
		Flights: services.NewFlightLifecycleService(
			repos.Flights, repos.FlightReads, repos.Members, repos.Routes, repos.Fleet, cache, registry),
		Reports: services.NewReportValidationService(
			gormDB, repos.Flights, repos.Reports, repos.ReportReads, repos.Members, repos.Fleet, repos.Tours, cache, registry),
		Tours: services.NewTourProgressService(repos.Tours, repos.Members),
	}

	return &Dependencies{
		Cfg:       cfg,
		Repos:     repos,
		Services:  svcs,
		Cache:     cache,
		Metrics:   registry,
		StartTime: time.Now(),
	}
}
