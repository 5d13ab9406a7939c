package api

import (
	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest defines the payload for profile updates. The update
// replaces the whole profile; omitted personal bests are cleared.
type UpdateProfileRequest struct {
	DisplayName    string   `json:"display_name"    validate:"max=100"`
	PBSquatGym     *float64 `json:"pb_squat_gym"    validate:"omitempty,gte=0"`
	PBBenchGym     *float64 `json:"pb_bench_gym"    validate:"omitempty,gte=0"`
	PBDeadliftGym  *float64 `json:"pb_deadlift_gym" validate:"omitempty,gte=0"`
	PBSquatComp    *float64 `json:"pb_squat_comp"   validate:"omitempty,gte=0"`
	PBBenchComp    *float64 `json:"pb_bench_comp"   validate:"omitempty,gte=0"`
	PBDeadliftComp *float64 `json:"pb_deadlift_comp" validate:"omitempty,gte=0"`
}

// CreateProgramRequest defines the payload for creating a program.
type CreateProgramRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// RenameProgramRequest defines the payload for renaming a program.
type RenameProgramRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateBlockRequest defines the payload for adding a block to a program.
type CreateBlockRequest struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Order int    `json:"order" validate:"gte=0"`
}

// UpdateBlockRequest defines the payload for renaming or reordering a block.
type UpdateBlockRequest struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Order int    `json:"order" validate:"gte=0"`
}

// CreateWeekRequest defines the payload for appending a week to a block.
type CreateWeekRequest struct {
	WeekNumber int `json:"week_number" validate:"required,gt=0"`
}

// CreateDayRequest defines the payload for appending a day to a week.
type CreateDayRequest struct {
	DayNumber int `json:"day_number" validate:"required,gt=0"`
}

// UpdateDayRequest defines the payload for updating a day's metadata.
type UpdateDayRequest struct {
	Name         *string  `json:"name"           validate:"omitempty,max=200"`
	WeekDayIndex *int     `json:"week_day_index" validate:"omitempty,gte=0,lte=6"`
	SleepQuality *int     `json:"sleep_quality"  validate:"omitempty,gte=0,lte=100"`
	SleepTime    *float64 `json:"sleep_time"     validate:"omitempty,gte=0,lte=24"`
}

// CreateColumnRequest defines the payload for adding a column to a day grid.
type CreateColumnRequest struct {
	Label string `json:"label" validate:"required,max=100"`
	Order int    `json:"order" validate:"gte=0"`
}

// UpdateColumnRequest defines the payload for relabeling or reordering a column.
type UpdateColumnRequest struct {
	Label string `json:"label" validate:"required,max=100"`
	Order int    `json:"order" validate:"gte=0"`
}

// CreateRowRequest defines the payload for adding a row to a day grid.
// Cells maps column IDs to cell text.
type CreateRowRequest struct {
	Order int                  `json:"order" validate:"gte=0"`
	Cells map[uuid.UUID]string `json:"cells"`
}

// UpdateRowRequest defines the payload for replacing a row's order and cells.
type UpdateRowRequest struct {
	Order int                  `json:"order" validate:"gte=0"`
	Cells map[uuid.UUID]string `json:"cells"`
}

// UpdateSettingsRequest defines the payload for configuring which grid
// columns the stats engine reads. An empty rpe_label disables fatigue
// analytics.
type UpdateSettingsRequest struct {
	ExerciseLabel string `json:"exercise_label" validate:"required,max=100"`
	SetsLabel     string `json:"sets_label"     validate:"required,max=100"`
	RepsLabel     string `json:"reps_label"     validate:"required,max=100"`
	WeightLabel   string `json:"weight_label"   validate:"required,max=100"`
	RPELabel      string `json:"rpe_label"      validate:"max=100"`
}

// AttemptPayload mirrors one competition attempt slot.
type AttemptPayload struct {
	WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Good     *bool    `json:"good"`
}

// CompetitionRequest defines the payload for creating or replacing a
// competition entry. Each lift carries exactly three attempt slots.
type CompetitionRequest struct {
	MeetName     string            `json:"meet_name"     validate:"required,max=200"`
	MeetDate     string            `json:"meet_date"     validate:"required,datetime=2006-01-02"`
	WeightClass  *string           `json:"weight_class"  validate:"omitempty,max=50"`
	BodyweightKg *float64          `json:"bodyweight_kg" validate:"omitempty,gt=0"`
	Squat        [3]AttemptPayload `json:"squat"`
	Bench        [3]AttemptPayload `json:"bench"`
	Deadlift     [3]AttemptPayload `json:"deadlift"`
	PlacingRank  *int              `json:"placing_rank"  validate:"omitempty,gt=0"`
	Notes        *string           `json:"notes"         validate:"omitempty,max=2000"`
}

// RPEChartRequest defines the query payload for the RPE chart endpoint.
type RPEChartRequest struct {
	// Known lift performance used to estimate the one-rep max.
	KnownWeight float64 `json:"known_weight" validate:"required,gt=0"`
	KnownReps   int     `json:"known_reps"   validate:"required,gte=1,lte=10"`
	KnownRPE    float64 `json:"known_rpe"    validate:"required,gte=6,lte=10"`

	// Target prescription to chart around.
	TargetReps int     `json:"target_reps" validate:"required,gte=1,lte=10"`
	TargetRPE  float64 `json:"target_rpe"  validate:"required,gte=6,lte=10"`

	// Increment the suggested loads are rounded to, in kg.
	Increment float64 `json:"increment" validate:"omitempty,gt=0"`
}

// RPEChartResponse carries the estimated max and the chart entries around
// the target prescription.
type RPEChartResponse struct {
	OneRepMax  float64               `json:"one_rep_max"`
	TargetLoad float64               `json:"target_load"`
	Entries    []analyticsChartEntry `json:"entries"`
}

type analyticsChartEntry struct {
	RPE        float64 `json:"rpe"`
	Percentage float64 `json:"percentage"`
	Weight     float64 `json:"weight"`
}

// toAttempts converts a payload attempt triple to the domain representation.
func toAttempts(payload [3]AttemptPayload) [3]domain.Attempt {
	var attempts [3]domain.Attempt
	for i, a := range payload {
		attempts[i] = domain.Attempt{WeightKg: a.WeightKg, Good: a.Good}
	}
	return attempts
}
