package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
	"github.com/phrazzld/barbell-api/internal/store"
)

// PostgresSettingsStore implements the store.SettingsStore interface
// using a PostgreSQL database as the storage backend. The stats_settings
// table has a unique constraint on program_id; upserts lean on it.
type PostgresSettingsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSettingsStore creates a new PostgreSQL implementation of the
// SettingsStore interface.
func NewPostgresSettingsStore(db store.DBTX) *PostgresSettingsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	return &PostgresSettingsStore{
		db:     db,
		logger: slog.Default().With(slog.String("component", "settings_store")),
	}
}

// Ensure PostgresSettingsStore implements store.SettingsStore interface
var _ store.SettingsStore = (*PostgresSettingsStore)(nil)

// GetByProgram implements store.SettingsStore.GetByProgram
// Returns store.ErrSettingsNotFound if the program has no settings row.
func (s *PostgresSettingsStore) GetByProgram(
	ctx context.Context,
	programID uuid.UUID,
) (*domain.StatsSettings, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, program_id, user_id, exercise_label, sets_label,
			reps_label, weight_label, rpe_label, created_at, updated_at
		FROM stats_settings
		WHERE program_id = $1
	`

	var settings domain.StatsSettings
	err := s.db.QueryRowContext(ctx, query, programID).Scan(
		&settings.ID,
		&settings.ProgramID,
		&settings.UserID,
		&settings.ExerciseLabel,
		&settings.SetsLabel,
		&settings.RepsLabel,
		&settings.WeightLabel,
		&settings.RPELabel,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("stats settings not found",
				slog.String("program_id", programID.String()))
			return nil, store.ErrSettingsNotFound
		}
		log.Error("failed to get stats settings",
			slog.String("error", err.Error()),
			slog.String("program_id", programID.String()))
		return nil, MapError(err)
	}

	return &settings, nil
}

// UpsertByProgram implements store.SettingsStore.UpsertByProgram
// An existing row for the program is replaced in place, keeping its ID.
func (s *PostgresSettingsStore) UpsertByProgram(
	ctx context.Context,
	settings *domain.StatsSettings,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := settings.Validate(); err != nil {
		log.Warn("settings validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("program_id", settings.ProgramID.String()))
		return err
	}

	updatedAt := time.Now().UTC()

	query := `
		INSERT INTO stats_settings (id, program_id, user_id, exercise_label,
			sets_label, reps_label, weight_label, rpe_label, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (program_id) DO UPDATE
		SET exercise_label = EXCLUDED.exercise_label,
			sets_label = EXCLUDED.sets_label,
			reps_label = EXCLUDED.reps_label,
			weight_label = EXCLUDED.weight_label,
			rpe_label = EXCLUDED.rpe_label,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		settings.ID,
		settings.ProgramID,
		settings.UserID,
		settings.ExerciseLabel,
		settings.SetsLabel,
		settings.RepsLabel,
		settings.WeightLabel,
		settings.RPELabel,
		settings.CreatedAt,
		updatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during settings upsert",
				slog.String("program_id", settings.ProgramID.String()))
			return fmt.Errorf("%w: program with ID %s not found",
				store.ErrInvalidEntity, settings.ProgramID)
		}
		log.Error("failed to upsert stats settings",
			slog.String("error", err.Error()),
			slog.String("program_id", settings.ProgramID.String()))
		return MapError(err)
	}

	settings.UpdatedAt = updatedAt

	log.Info("stats settings upserted successfully",
		slog.String("program_id", settings.ProgramID.String()))
	return nil
}

// DeleteByProgram implements store.SettingsStore.DeleteByProgram
// Returns store.ErrSettingsNotFound if the program has no settings row.
func (s *PostgresSettingsStore) DeleteByProgram(ctx context.Context, programID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM stats_settings WHERE program_id = $1`,
		programID,
	)
	if err != nil {
		log.Error("failed to delete stats settings",
			slog.String("error", err.Error()),
			slog.String("program_id", programID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrSettingsNotFound)
}
