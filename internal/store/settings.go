package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// SettingsStore defines the interface for stats-settings persistence.
// Each program has at most one settings row.
type SettingsStore interface {
	// GetByProgram retrieves the stats settings for a program.
	// Returns ErrSettingsNotFound if the program has none configured.
	GetByProgram(ctx context.Context, programID uuid.UUID) (*domain.StatsSettings, error)

	// UpsertByProgram creates the settings row for a program or
	// replaces the existing one.
	UpsertByProgram(ctx context.Context, settings *domain.StatsSettings) error

	// DeleteByProgram removes the settings row for a program.
	// Returns ErrSettingsNotFound if the program has none configured.
	DeleteByProgram(ctx context.Context, programID uuid.UUID) error
}
