package services

import (
	"context"

	"skyward-labs/flightdeck/internal/constants"
	"skyward-labs/flightdeck/internal/db/repositories"
	"skyward-labs/flightdeck/internal/errs"
	"skyward-labs/flightdeck/internal/logging"
	"skyward-labs/flightdeck/internal/models/dtos"
	models "skyward-labs/flightdeck/internal/models/gorm"
)

// TourProgressService owns tour participation and the read-side progress
// projections. Leg completion itself is driven by report approval, see
// ReportValidationService.
type TourProgressService struct {
	tours   *repositories.TourRepository
	members *repositories.MembershipRepository
}

// NewTourProgressService creates a new tour progress service
func NewTourProgressService(tours *repositories.TourRepository, members *repositories.MembershipRepository) *TourProgressService {
	return &TourProgressService{tours: tours, members: members}
}

// ListTours returns the VA tour catalog with participation counts.
func (s *TourProgressService) ListTours(ctx context.Context, vaID string) ([]dtos.TourSummary, error) {
	tours, err := s.tours.ListByVA(ctx, vaID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.TourSummary, 0, len(tours))
	for _, tour := range tours {
		participants, completions, err := s.tours.CountParticipants(ctx, tour.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, dtos.TourSummary{
			ID:           tour.ID,
			Title:        tour.Title,
			Description:  tour.Description,
			Status:       tour.Status,
			TotalLegs:    len(tour.Legs),
			Participants: int(participants),
			Completions:  int(completions),
			CreatedAt:    tour.CreatedAt,
		})
	}
	return summaries, nil
}

// GetTour returns a tour with its ordered legs.
func (s *TourProgressService) GetTour(ctx context.Context, vaID, tourID string) (*models.Tour, error) {
	tour, err := s.tours.GetByIDAndVA(ctx, tourID, vaID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgTourNotFound)
	}
	return tour, nil
}

// Join enrolls the pilot in a tour. The progress row is created once per
// (tour, pilot); a second join is AlreadyJoined.
func (s *TourProgressService) Join(ctx context.Context, userID, vaID, tourID string) (*models.TourProgress, error) {
	member, err := s.members.GetByUserAndVA(ctx, userID, vaID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errs.Wrap(errs.ErrNotAMember, constants.MsgNotAMember)
	}

	tour, err := s.tours.GetByIDAndVA(ctx, tourID, vaID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgTourNotFound)
	}

	existing, err := s.tours.GetProgress(ctx, tourID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Wrap(errs.ErrAlreadyJoined, constants.MsgAlreadyJoined)
	}

	progress := &models.TourProgress{
		TourID:     tourID,
		UserID:     userID,
		VAID:       vaID,
		Status:     constants.TourInProgress,
		CurrentLeg: 1,
	}
	if err := s.tours.CreateProgress(ctx, progress); err != nil {
		return nil, err
	}

	logging.Info("Tour joined", "tour_id", tourID, "user_id", userID)
	return progress, nil
}

// GetProgress projects one pilot's state in a tour.
func (s *TourProgressService) GetProgress(ctx context.Context, userID, vaID, tourID string) (*dtos.TourProgressResponse, error) {
	tour, err := s.tours.GetByIDAndVA(ctx, tourID, vaID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, errs.Wrap(errs.ErrNotFound, constants.MsgTourNotFound)
	}

	progress, err := s.tours.GetProgress(ctx, tourID, userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, errs.Wrap(errs.ErrNotFound, "Not participating in this tour")
	}

	completions, err := s.tours.ListCompletions(ctx, tourID, userID)
	if err != nil {
		return nil, err
	}

	return &dtos.TourProgressResponse{
		TourID:         tourID,
		Status:         progress.Status.String(),
		TotalLegs:      len(tour.Legs),
		CompletedCount: len(completions),
		CurrentLeg:     progress.CurrentLeg,
		StartedAt:      progress.StartedAt,
		CompletedAt:    progress.CompletedAt,
	}, nil
}
