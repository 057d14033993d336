package services

import (
	"context"
	"fmt"
	"time"

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

// FlightLifecycleService drives the reserved → in_progress → completed
// flight state machine. Completion itself happens inside report
// submission, see ReportValidationService.
type FlightLifecycleService struct {
	flights     *repositories.FlightRepository
	flightReads *repositories.FlightQueryRepo
	members     *repositories.MembershipRepository
	routes      *repositories.RouteRepository
	fleet       *repositories.FleetRepository
	cache       common.CacheInterface
	metrics     *metrics.MetricsRegistry
}

// NewFlightLifecycleService creates a new flight lifecycle service
func NewFlightLifecycleService(
	flights *repositories.FlightRepository,
	flightReads *repositories.FlightQueryRepo,
	members *repositories.MembershipRepository,
	routes *repositories.RouteRepository,
	fleet *repositories.FleetRepository,
	cache common.CacheInterface,
	m *metrics.MetricsRegistry,
) *FlightLifecycleService {
	return &FlightLifecycleService{
		flights:     flights,
		flightReads: flightReads,
		members:     members,
		routes:      routes,
		fleet:       fleet,
		cache:       cache,
		metrics:     m,
	}
}

// Book reserves a route for the pilot. The flight number is copied from
// the route at reservation time so later catalog edits do not rewrite
// history.
func (s *FlightLifecycleService) Book(ctx context.Context, userID string, req *dtos.BookFlightRequest) (*dtos.BookFlightResponse, error) {
	if req.VAID == "" || req.RouteID == "" {
		return nil, errs.Wrap(errs.ErrValidation, "va_id and route_id are required")
	}

	member, err := s.members.GetByUserAndVA(ctx, userID, req.VAID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errs.Wrap(errs.ErrNotAMember, constants.MsgNotAMember)
	}

	route, err := s.lookupRoute(ctx, req.RouteID, req.VAID)
	if err != nil {
		return nil, err
	}

	if req.FleetID != nil {
		aircraft, err := s.fleet.GetByIDAndVA(ctx, *req.FleetID, req.VAID)
		if err != nil {
			return nil, err
		}
		if aircraft == nil {
			return nil, errs.Wrap(errs.ErrNotFound, constants.MsgFleetNotFound)
		}
	}

	open, err := s.flights.CountOpen(ctx, userID, req.VAID, req.RouteID)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, errs.Wrap(errs.ErrValidation, constants.MsgDuplicateBooking)
	}

	flight := &models.Flight{
		UserID:       userID,
		VAID:         req.VAID,
		RouteID:      req.RouteID,
		FleetID:      req.FleetID,
		FlightNumber: route.FlightNumber,
		Status:       constants.FlightReserved,
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.FlightsBookedTotal.Inc()
	}
	s.invalidateBoard(req.VAID)
	logging.Info("Flight booked", "flight_id", flight.ID, "user_id", userID, "route_id", req.RouteID)

	return &dtos.BookFlightResponse{
		FlightID:     flight.ID,
		FlightNumber: flight.FlightNumber,
		Status:       flight.Status.String(),
	}, nil
}

// GetFlight returns an owned flight with its route and fleet context.
func (s *FlightLifecycleService) GetFlight(ctx context.Context, userID, flightID string) (*models.Flight, error) {
	flight, err := s.flights.GetOwned(ctx, flightID, userID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgFlightNotFound)
	}
	return flight, nil
}

// Start moves a reserved flight to in_progress. Wrong owner and wrong
// status both surface as NotFound so callers cannot probe flights they
// do not hold.
func (s *FlightLifecycleService) Start(ctx context.Context, userID, flightID string) error {
	rows, err := s.flights.Start(ctx, flightID, userID, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		return errs.Wrap(errs.ErrNotFound, constants.MsgFlightNotFound)
	}

	s.invalidateBoardFor(ctx, flightID, userID)
	logging.Info("Flight started", "flight_id", flightID, "user_id", userID)
	return nil
}

// Cancel removes a reservation. Only reserved flights may be cancelled;
// anything already flying or flown is InvalidState.
func (s *FlightLifecycleService) Cancel(ctx context.Context, userID, flightID string) error {
	rows, err := s.flights.DeleteReserved(ctx, flightID, userID)
	if err != nil {
		return err
	}
	if rows > 0 {
		logging.Info("Flight cancelled", "flight_id", flightID, "user_id", userID)
		return nil
	}

	flight, err := s.flights.GetOwned(ctx, flightID, userID)
	if err != nil {
		return err
	}
	if flight == nil {
		return errs.Wrap(errs.ErrNotFound, constants.MsgFlightNotFound)
	}
	return errs.Wrap(errs.ErrInvalidState, constants.MsgCancelNotReserved)
}

// AttachOFP stores an external flight-plan reference on an owned flight.
// The id is opaque; nothing here talks to the planning provider.
func (s *FlightLifecycleService) AttachOFP(ctx context.Context, userID, flightID, ofpID string) error {
	if ofpID == "" {
		return errs.Wrap(errs.ErrValidation, "ofp_id is required")
	}
	rows, err := s.flights.SetOFP(ctx, flightID, userID, ofpID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errs.Wrap(errs.ErrNotFound, constants.MsgFlightNotFound)
	}
	return nil
}

// MyFlights returns the pilot's flight history across VAs.
func (s *FlightLifecycleService) MyFlights(ctx context.Context, userID string) ([]entities.PilotFlightRow, error) {
	return s.flightReads.PilotFlights(ctx, userID)
}

// ActiveBoard returns the VA's reserved and in-progress flights, cached
// briefly since the board is polled by every connected client.
func (s *FlightLifecycleService) ActiveBoard(ctx context.Context, vaID string) ([]dtos.ActiveFlight, error) {
	key := fmt.Sprintf(constants.CacheKeyActiveFlights, vaID)

	cached, err := s.cache.GetOrSet(key, constants.TTLActiveFlightsSeconds*time.Second, func() (any, error) {
		return s.flightReads.ActiveFlights(ctx, vaID)
	})
	if err != nil {
		return nil, err
	}

	// A Redis hit comes back as decoded JSON, not the concrete slice. Serve
	// those requests straight from the database.
	board, ok := cached.([]dtos.ActiveFlight)
	if !ok {
		return s.flightReads.ActiveFlights(ctx, vaID)
	}
	return board, nil
}

func (s *FlightLifecycleService) lookupRoute(ctx context.Context, routeID, vaID string) (*models.Route, error) {
	key := fmt.Sprintf(constants.CacheKeyRoute, routeID)

	cached, err := s.cache.GetOrSet(key, constants.TTLRouteSeconds*time.Second, func() (any, error) {
		route, err := s.routes.GetByIDAndVA(ctx, routeID, vaID)
		if err != nil {
			return nil, err
		}
		if route == nil {
			return nil, errs.Wrap(errs.ErrNotFound, constants.MsgRouteNotFound)
		}
		return route, nil
	})
	if err != nil {
		return nil, err
	}

	route, ok := cached.(*models.Route)
	if !ok {
		// Redis hits decode to generic JSON; fall back to the database.
		route, err = s.routes.GetByIDAndVA(ctx, routeID, vaID)
		if err != nil {
			return nil, err
		}
		if route == nil {
			return nil, errs.Wrap(errs.ErrNotFound, constants.MsgRouteNotFound)
		}
		return route, nil
	}
	// The cache is keyed by route id alone, so a hit still has to be
	// checked against the caller's VA.
	if route.VAID != vaID {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgRouteNotFound)
	}
	return route, nil
}

func (s *FlightLifecycleService) invalidateBoard(vaID string) {
	s.cache.Delete(fmt.Sprintf(constants.CacheKeyActiveFlights, vaID))
}

func (s *FlightLifecycleService) invalidateBoardFor(ctx context.Context, flightID, userID string) {
	flight, err := s.flights.GetOwned(ctx, flightID, userID)
	if err != nil || flight == nil {
		return
	}
	s.invalidateBoard(flight.VAID)
}
