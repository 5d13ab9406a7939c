package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Competition validation errors
var (
	ErrCompetitionUserIDEmpty = errors.New("competition user ID cannot be empty")
	ErrMeetNameEmpty          = errors.New("meet name cannot be empty")
	ErrMeetDateZero           = errors.New("meet date is required")
)

// Attempt is one of the three platform attempts for a lift. Good is nil when
// the attempt outcome was not recorded, true for a successful lift.
type Attempt struct {
	WeightKg *float64 `json:"weight_kg"`
	Good     *bool    `json:"good"`
}

// Competition records one powerlifting meet: bodyweight, the 3x3 attempt
// grid, and placing. Attempt slots are fixed at three per lift.
type Competition struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	MeetName     string     `json:"meet_name"`
	MeetDate     time.Time  `json:"meet_date"`
	WeightClass  *string    `json:"weight_class"`
	BodyweightKg *float64   `json:"bodyweight_kg"`
	Squat        [3]Attempt `json:"squat"`
	Bench        [3]Attempt `json:"bench"`
	Deadlift     [3]Attempt `json:"deadlift"`
	PlacingRank  *int       `json:"placing_rank"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewCompetition creates a new Competition entry for the given user.
func NewCompetition(userID uuid.UUID, meetName string, meetDate time.Time) (*Competition, error) {
	comp := &Competition{
		ID:        uuid.New(),
		UserID:    userID,
		MeetName:  meetName,
		MeetDate:  meetDate,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := comp.Validate(); err != nil {
		return nil, err
	}

	return comp, nil
}

// Validate checks if the Competition has valid data.
func (c *Competition) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrCompetitionUserIDEmpty
	}
	if c.MeetName == "" {
		return ErrMeetNameEmpty
	}
	if c.MeetDate.IsZero() {
		return ErrMeetDateZero
	}
	return nil
}

// BestLift returns the heaviest successful attempt for one lift, or nil when
// no attempt was both recorded and good.
func BestLift(attempts [3]Attempt) *float64 {
	var best *float64
	for _, a := range attempts {
		if a.WeightKg == nil || a.Good == nil || !*a.Good {
			continue
		}
		if best == nil || *a.WeightKg > *best {
			w := *a.WeightKg
			best = &w
		}
	}
	return best
}

// Total returns the meet total: the sum of the best successful attempt per
// lift, counting only lifts with at least one successful attempt. Returns nil
// when no lift has a successful attempt.
func (c *Competition) Total() *float64 {
	var total float64
	hasAny := false

	for _, attempts := range [][3]Attempt{c.Squat, c.Bench, c.Deadlift} {
		if best := BestLift(attempts); best != nil {
			total += *best
			hasAny = true
		}
	}

	if !hasAny {
		return nil
	}
	return &total
}
