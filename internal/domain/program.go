package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Hierarchy validation errors
var (
	ErrProgramNameEmpty    = errors.New("program name cannot be empty")
	ErrProgramUserIDEmpty  = errors.New("program user ID cannot be empty")
	ErrBlockProgramIDEmpty = errors.New("block program ID cannot be empty")
	ErrBlockNameEmpty      = errors.New("block name cannot be empty")
	ErrWeekBlockIDEmpty    = errors.New("week block ID cannot be empty")
	ErrWeekNumberInvalid   = errors.New("week number must be positive")
	ErrDayWeekIDEmpty      = errors.New("day week ID cannot be empty")
	ErrDayNumberInvalid    = errors.New("day number must be positive")
	ErrWeekDayIndexInvalid = errors.New("week day index must be between 0 and 6")
	ErrSleepQualityInvalid = errors.New("sleep quality must be between 0 and 100")
	ErrColumnDayIDEmpty    = errors.New("column day ID cannot be empty")
	ErrColumnLabelEmpty    = errors.New("column label cannot be empty")
	ErrRowDayIDEmpty       = errors.New("row day ID cannot be empty")
)

// Program is the top level of the training log hierarchy. A program owns an
// ordered list of blocks, each block a list of weeks, each week a list of days.
type Program struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProgram creates a new Program owned by the given user.
func NewProgram(userID uuid.UUID, name string) (*Program, error) {
	program := &Program{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := program.Validate(); err != nil {
		return nil, err
	}

	return program, nil
}

// Validate checks if the Program has valid data.
func (p *Program) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrProgramUserIDEmpty
	}
	if p.Name == "" {
		return ErrProgramNameEmpty
	}
	return nil
}

// Block is a training phase within a program. Order is zero-based and
// determines the block's position on the continuous week axis used by the
// analytics engine.
type Block struct {
	ID        uuid.UUID `json:"id"`
	ProgramID uuid.UUID `json:"program_id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlock creates a new Block within the given program.
func NewBlock(programID uuid.UUID, name string, order int) (*Block, error) {
	block := &Block{
		ID:        uuid.New(),
		ProgramID: programID,
		Name:      name,
		Order:     order,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := block.Validate(); err != nil {
		return nil, err
	}

	return block, nil
}

// Validate checks if the Block has valid data.
func (b *Block) Validate() error {
	if b.ProgramID == uuid.Nil {
		return ErrBlockProgramIDEmpty
	}
	if b.Name == "" {
		return ErrBlockNameEmpty
	}
	return nil
}

// Week is a numbered training week within a block. WeekNumber is one-based
// and local to the block; week numbers are not required to be contiguous.
type Week struct {
	ID         uuid.UUID `json:"id"`
	BlockID    uuid.UUID `json:"block_id"`
	WeekNumber int       `json:"week_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewWeek creates a new Week within the given block.
func NewWeek(blockID uuid.UUID, weekNumber int) (*Week, error) {
	week := &Week{
		ID:         uuid.New(),
		BlockID:    blockID,
		WeekNumber: weekNumber,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := week.Validate(); err != nil {
		return nil, err
	}

	return week, nil
}

// Validate checks if the Week has valid data.
func (w *Week) Validate() error {
	if w.BlockID == uuid.Nil {
		return ErrWeekBlockIDEmpty
	}
	if w.WeekNumber <= 0 {
		return ErrWeekNumberInvalid
	}
	return nil
}

// Day is a training session within a week. WeekDayIndex is an optional
// calendar position (0=Monday .. 6=Sunday) used by the fatigue model to
// measure gaps between sessions; nil means the position is unknown.
// SleepQuality (0-100) and SleepTime (hours) are optional self-reported
// recovery fields consumed by sleep-adjusted fatigue scoring.
type Day struct {
	ID           uuid.UUID `json:"id"`
	WeekID       uuid.UUID `json:"week_id"`
	DayNumber    int       `json:"day_number"`
	Name         *string   `json:"name"`
	WeekDayIndex *int      `json:"week_day_index"`
	SleepQuality *int      `json:"sleep_quality"`
	SleepTime    *float64  `json:"sleep_time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewDay creates a new Day within the given week.
func NewDay(weekID uuid.UUID, dayNumber int) (*Day, error) {
	day := &Day{
		ID:        uuid.New(),
		WeekID:    weekID,
		DayNumber: dayNumber,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := day.Validate(); err != nil {
		return nil, err
	}

	return day, nil
}

// Validate checks if the Day has valid data.
func (d *Day) Validate() error {
	if d.WeekID == uuid.Nil {
		return ErrDayWeekIDEmpty
	}
	if d.DayNumber <= 0 {
		return ErrDayNumberInvalid
	}
	if d.WeekDayIndex != nil && (*d.WeekDayIndex < 0 || *d.WeekDayIndex > 6) {
		return ErrWeekDayIndexInvalid
	}
	if d.SleepQuality != nil && (*d.SleepQuality < 0 || *d.SleepQuality > 100) {
		return ErrSleepQualityInvalid
	}
	return nil
}

// DayColumn is one column of a day's free-form grid. Columns carry no
// semantics of their own; meaning is assigned by resolving the label against
// the program's stats settings. Order positions the column in the grid and is
// not required to be contiguous.
type DayColumn struct {
	ID        uuid.UUID `json:"id"`
	DayID     uuid.UUID `json:"day_id"`
	Label     string    `json:"label"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDayColumn creates a new DayColumn within the given day.
func NewDayColumn(dayID uuid.UUID, label string, order int) (*DayColumn, error) {
	column := &DayColumn{
		ID:        uuid.New(),
		DayID:     dayID,
		Label:     label,
		Order:     order,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := column.Validate(); err != nil {
		return nil, err
	}

	return column, nil
}

// Validate checks if the DayColumn has valid data.
func (c *DayColumn) Validate() error {
	if c.DayID == uuid.Nil {
		return ErrColumnDayIDEmpty
	}
	if c.Label == "" {
		return ErrColumnLabelEmpty
	}
	return nil
}

// DayRow is one row of a day's grid. Cells is a sparse map from column ID to
// the raw text the user typed; absent keys mean the cell is empty. Cell keys
// must reference columns belonging to the same day.
type DayRow struct {
	ID        uuid.UUID            `json:"id"`
	DayID     uuid.UUID            `json:"day_id"`
	Order     int                  `json:"order"`
	Cells     map[uuid.UUID]string `json:"cells"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// NewDayRow creates a new DayRow within the given day.
func NewDayRow(dayID uuid.UUID, order int) (*DayRow, error) {
	row := &DayRow{
		ID:        uuid.New(),
		DayID:     dayID,
		Order:     order,
		Cells:     make(map[uuid.UUID]string),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := row.Validate(); err != nil {
		return nil, err
	}

	return row, nil
}

// Validate checks if the DayRow has valid data.
func (r *DayRow) Validate() error {
	if r.DayID == uuid.Nil {
		return ErrRowDayIDEmpty
	}
	return nil
}
