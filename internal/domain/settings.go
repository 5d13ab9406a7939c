package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StatsSettings validation errors
var (
	ErrSettingsProgramIDEmpty = errors.New("settings program ID cannot be empty")
	ErrSettingsUserIDEmpty    = errors.New("settings user ID cannot be empty")
	ErrSettingsLabelEmpty     = errors.New("exercise, sets, reps and weight labels are all required")
)

// StatsSettings maps the semantic roles the analytics engine needs onto the
// column labels a user happens to use in their grid. Labels are resolved per
// day, since column IDs differ across days carrying the same label.
//
// RPELabel is optional: when empty, fatigue scoring is disabled for the
// program and only volume analytics are computed.
type StatsSettings struct {
	ID            uuid.UUID `json:"id"`
	ProgramID     uuid.UUID `json:"program_id"`
	UserID        uuid.UUID `json:"user_id"`
	ExerciseLabel string    `json:"exercise_label"`
	SetsLabel     string    `json:"sets_label"`
	RepsLabel     string    `json:"reps_label"`
	WeightLabel   string    `json:"weight_label"`
	RPELabel      string    `json:"rpe_label"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewStatsSettings creates settings for a program with the given label mapping.
func NewStatsSettings(
	programID, userID uuid.UUID,
	exerciseLabel, setsLabel, repsLabel, weightLabel, rpeLabel string,
) (*StatsSettings, error) {
	settings := &StatsSettings{
		ID:            uuid.New(),
		ProgramID:     programID,
		UserID:        userID,
		ExerciseLabel: exerciseLabel,
		SetsLabel:     setsLabel,
		RepsLabel:     repsLabel,
		WeightLabel:   weightLabel,
		RPELabel:      rpeLabel,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks if the StatsSettings has valid data.
func (s *StatsSettings) Validate() error {
	if s.ProgramID == uuid.Nil {
		return ErrSettingsProgramIDEmpty
	}
	if s.UserID == uuid.Nil {
		return ErrSettingsUserIDEmpty
	}
	if s.ExerciseLabel == "" || s.SetsLabel == "" || s.RepsLabel == "" || s.WeightLabel == "" {
		return ErrSettingsLabelEmpty
	}
	return nil
}

// FatigueEnabled reports whether an RPE column is configured, which gates the
// entire fatigue computation.
func (s *StatsSettings) FatigueEnabled() bool {
	return s.RPELabel != ""
}
