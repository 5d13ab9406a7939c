package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
	"github.com/phrazzld/barbell-api/internal/store"
)

// StatsService computes training analytics for a program and manages the
// stats settings that drive column resolution.
type StatsService interface {
	// ComputeProgramStats loads the program's hierarchy and settings and
	// runs the analytics engine over them.
	// Returns ErrSettingsNotConfigured if the program has no stats settings.
	ComputeProgramStats(
		ctx context.Context,
		userID, programID uuid.UUID,
		opts analytics.Options,
	) (*analytics.StatsResult, error)

	// GetSettings retrieves the stats settings for a program the user owns.
	// Returns ErrSettingsNotConfigured if none exist yet.
	GetSettings(ctx context.Context, userID, programID uuid.UUID) (*domain.StatsSettings, error)

	// UpdateSettings creates or replaces the stats settings for a program
	// the user owns.
	UpdateSettings(
		ctx context.Context,
		userID, programID uuid.UUID,
		update SettingsUpdate,
	) (*domain.StatsSettings, error)
}

// SettingsUpdate carries the label mapping for a program's grid columns.
// An empty RPELabel disables fatigue analytics for the program.
type SettingsUpdate struct {
	ExerciseLabel string
	SetsLabel     string
	RepsLabel     string
	WeightLabel   string
	RPELabel      string
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	programStore   store.ProgramStore
	hierarchyStore store.HierarchyStore
	settingsStore  store.SettingsStore
	engine         analytics.Service
	logger         *slog.Logger
}

// NewStatsService creates a new StatsService.
// It returns an error if any of the required dependencies are nil.
func NewStatsService(
	programStore store.ProgramStore,
	hierarchyStore store.HierarchyStore,
	settingsStore store.SettingsStore,
	engine analytics.Service,
	log *slog.Logger,
) (StatsService, error) {
	if programStore == nil {
		return nil, fmt.Errorf("programStore cannot be nil")
	}
	if hierarchyStore == nil {
		return nil, fmt.Errorf("hierarchyStore cannot be nil")
	}
	if settingsStore == nil {
		return nil, fmt.Errorf("settingsStore cannot be nil")
	}
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &statsServiceImpl{
		programStore:   programStore,
		hierarchyStore: hierarchyStore,
		settingsStore:  settingsStore,
		engine:         engine,
		logger:         log.With(slog.String("component", "stats_service")),
	}, nil
}

// requireProgramOwner loads the program and verifies the user owns it.
func (s *statsServiceImpl) requireProgramOwner(
	ctx context.Context,
	userID, programID uuid.UUID,
) error {
	program, err := s.programStore.GetProgram(ctx, programID)
	if err != nil {
		return err
	}
	if program.UserID != userID {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Warn("ownership check failed for program stats",
			slog.String("program_id", programID.String()),
			slog.String("user_id", userID.String()))
		return ErrNotOwned
	}
	return nil
}

// ComputeProgramStats implements StatsService.ComputeProgramStats
func (s *statsServiceImpl) ComputeProgramStats(
	ctx context.Context,
	userID, programID uuid.UUID,
	opts analytics.Options,
) (*analytics.StatsResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.requireProgramOwner(ctx, userID, programID); err != nil {
		return nil, err
	}

	settings, err := s.settingsStore.GetByProgram(ctx, programID)
	if err != nil {
		if errors.Is(err, store.ErrSettingsNotFound) {
			return nil, ErrSettingsNotConfigured
		}
		log.Error("failed to load stats settings",
			slog.String("error", err.Error()),
			slog.String("program_id", programID.String()))
		return nil, fmt.Errorf("failed to load stats settings: %w", err)
	}

	hierarchy, err := s.hierarchyStore.GetProgramHierarchy(ctx, programID)
	if err != nil {
		log.Error("failed to load program hierarchy",
			slog.String("error", err.Error()),
			slog.String("program_id", programID.String()))
		return nil, fmt.Errorf("failed to load program hierarchy: %w", err)
	}

	result, err := s.engine.ComputeStats(hierarchy, settings, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	log.Debug("program stats computed",
		slog.String("program_id", programID.String()),
		slog.Int("volume_points", len(result.Volume.Points)),
		slog.Int("fatigue_points", len(result.Fatigue.Points)),
		slog.Bool("sleep_adjustment", opts.SleepAdjustment))
	return result, nil
}

// GetSettings implements StatsService.GetSettings
func (s *statsServiceImpl) GetSettings(
	ctx context.Context,
	userID, programID uuid.UUID,
) (*domain.StatsSettings, error) {
	if err := s.requireProgramOwner(ctx, userID, programID); err != nil {
		return nil, err
	}

	settings, err := s.settingsStore.GetByProgram(ctx, programID)
	if err != nil {
		if errors.Is(err, store.ErrSettingsNotFound) {
			return nil, ErrSettingsNotConfigured
		}
		return nil, fmt.Errorf("failed to load stats settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings implements StatsService.UpdateSettings
func (s *statsServiceImpl) UpdateSettings(
	ctx context.Context,
	userID, programID uuid.UUID,
	update SettingsUpdate,
) (*domain.StatsSettings, error) {
	if err := s.requireProgramOwner(ctx, userID, programID); err != nil {
		return nil, err
	}

	settings, err := domain.NewStatsSettings(
		programID,
		userID,
		update.ExerciseLabel,
		update.SetsLabel,
		update.RepsLabel,
		update.WeightLabel,
		update.RPELabel,
	)
	if err != nil {
		return nil, err
	}

	if err := s.settingsStore.UpsertByProgram(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save stats settings: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("stats settings updated",
		slog.String("program_id", programID.String()),
		slog.Bool("fatigue_enabled", settings.FatigueEnabled()))
	return settings, nil
}
