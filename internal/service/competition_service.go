package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
	"github.com/phrazzld/barbell-api/internal/store"
)

// CompetitionProgressPoint is one meet in a lifter's history with the best
// successful attempt per lift. Nil values mean no good attempt was recorded.
type CompetitionProgressPoint struct {
	CompetitionID uuid.UUID `json:"competition_id"`
	MeetName      string    `json:"meet_name"`
	MeetDate      time.Time `json:"meet_date"`
	BodyweightKg  *float64  `json:"bodyweight_kg"`
	BestSquat     *float64  `json:"best_squat"`
	BestBench     *float64  `json:"best_bench"`
	BestDeadlift  *float64  `json:"best_deadlift"`
	Total         *float64  `json:"total"`
}

// CompetitionService provides competition result operations with ownership
// enforcement.
type CompetitionService interface {
	// CreateCompetition records a new meet result for the user.
	CreateCompetition(ctx context.Context, competition *domain.Competition) (*domain.Competition, error)

	// GetCompetition retrieves a competition the user owns.
	GetCompetition(ctx context.Context, userID, competitionID uuid.UUID) (*domain.Competition, error)

	// ListCompetitions retrieves the user's competitions ordered by meet date.
	ListCompetitions(ctx context.Context, userID uuid.UUID) ([]*domain.Competition, error)

	// UpdateCompetition replaces a competition the user owns.
	UpdateCompetition(ctx context.Context, userID uuid.UUID, competition *domain.Competition) error

	// DeleteCompetition deletes a competition the user owns.
	DeleteCompetition(ctx context.Context, userID, competitionID uuid.UUID) error

	// Progress derives the meet-over-meet best-lift series used by progress
	// charts, oldest meet first.
	Progress(ctx context.Context, userID uuid.UUID) ([]CompetitionProgressPoint, error)
}

// competitionServiceImpl implements the CompetitionService interface
type competitionServiceImpl struct {
	competitionStore store.CompetitionStore
	logger           *slog.Logger
}

// NewCompetitionService creates a new CompetitionService.
// It returns an error if the competition store is nil.
func NewCompetitionService(
	competitionStore store.CompetitionStore,
	log *slog.Logger,
) (CompetitionService, error) {
	if competitionStore == nil {
		return nil, fmt.Errorf("competitionStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &competitionServiceImpl{
		competitionStore: competitionStore,
		logger:           log.With(slog.String("component", "competition_service")),
	}, nil
}

// requireOwner loads a competition and verifies the user owns it.
func (s *competitionServiceImpl) requireOwner(
	ctx context.Context,
	userID, competitionID uuid.UUID,
) (*domain.Competition, error) {
	competition, err := s.competitionStore.GetByID(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	if competition.UserID != userID {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Warn("ownership check failed for competition",
			slog.String("competition_id", competitionID.String()),
			slog.String("user_id", userID.String()))
		return nil, ErrNotOwned
	}
	return competition, nil
}

// CreateCompetition implements CompetitionService.CreateCompetition
func (s *competitionServiceImpl) CreateCompetition(
	ctx context.Context,
	competition *domain.Competition,
) (*domain.Competition, error) {
	if err := s.competitionStore.Create(ctx, competition); err != nil {
		return nil, fmt.Errorf("failed to save competition: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("competition recorded",
		slog.String("competition_id", competition.ID.String()),
		slog.String("user_id", competition.UserID.String()))
	return competition, nil
}

// GetCompetition implements CompetitionService.GetCompetition
func (s *competitionServiceImpl) GetCompetition(
	ctx context.Context,
	userID, competitionID uuid.UUID,
) (*domain.Competition, error) {
	return s.requireOwner(ctx, userID, competitionID)
}

// ListCompetitions implements CompetitionService.ListCompetitions
func (s *competitionServiceImpl) ListCompetitions(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Competition, error) {
	competitions, err := s.competitionStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

// UpdateCompetition implements CompetitionService.UpdateCompetition
func (s *competitionServiceImpl) UpdateCompetition(
	ctx context.Context,
	userID uuid.UUID,
	competition *domain.Competition,
) error {
	if _, err := s.requireOwner(ctx, userID, competition.ID); err != nil {
		return err
	}
	if err := s.competitionStore.Update(ctx, competition); err != nil {
		return fmt.Errorf("failed to update competition: %w", err)
	}
	return nil
}

// DeleteCompetition implements CompetitionService.DeleteCompetition
func (s *competitionServiceImpl) DeleteCompetition(
	ctx context.Context,
	userID, competitionID uuid.UUID,
) error {
	if _, err := s.requireOwner(ctx, userID, competitionID); err != nil {
		return err
	}
	if err := s.competitionStore.Delete(ctx, competitionID); err != nil {
		return fmt.Errorf("failed to delete competition: %w", err)
	}
	return nil
}

// Progress implements CompetitionService.Progress
func (s *competitionServiceImpl) Progress(
	ctx context.Context,
	userID uuid.UUID,
) ([]CompetitionProgressPoint, error) {
	competitions, err := s.competitionStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}

	points := make([]CompetitionProgressPoint, 0, len(competitions))
	for _, competition := range competitions {
		points = append(points, CompetitionProgressPoint{
			CompetitionID: competition.ID,
			MeetName:      competition.MeetName,
			MeetDate:      competition.MeetDate,
			BodyweightKg:  competition.BodyweightKg,
			BestSquat:     domain.BestLift(competition.Squat),
			BestBench:     domain.BestLift(competition.Bench),
			BestDeadlift:  domain.BestLift(competition.Deadlift),
			Total:         competition.Total(),
		})
	}
	return points, nil
}
