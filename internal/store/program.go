package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
)

// ProgramStore defines the interface for training program persistence,
// covering the program itself and its nested blocks, weeks, days,
// columns, and rows.
type ProgramStore interface {
	// CreateProgram saves a new program.
	CreateProgram(ctx context.Context, program *domain.Program) error

	// GetProgram retrieves a program by ID.
	// Returns ErrProgramNotFound if it does not exist.
	GetProgram(ctx context.Context, id uuid.UUID) (*domain.Program, error)

	// ListProgramsByUser retrieves all programs owned by a user,
	// ordered by creation time.
	ListProgramsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Program, error)

	// UpdateProgram updates a program's mutable fields.
	// Returns ErrProgramNotFound if it does not exist.
	UpdateProgram(ctx context.Context, program *domain.Program) error

	// DeleteProgram removes a program and all nested entities.
	// Returns ErrProgramNotFound if it does not exist.
	DeleteProgram(ctx context.Context, id uuid.UUID) error

	// CreateBlock saves a new block under a program.
	CreateBlock(ctx context.Context, block *domain.Block) error

	// GetBlock retrieves a block by ID.
	// Returns ErrBlockNotFound if it does not exist.
	GetBlock(ctx context.Context, id uuid.UUID) (*domain.Block, error)

	// UpdateBlock updates a block's mutable fields.
	// Returns ErrBlockNotFound if it does not exist.
	UpdateBlock(ctx context.Context, block *domain.Block) error

	// DeleteBlock removes a block and all nested entities.
	// Returns ErrBlockNotFound if it does not exist.
	DeleteBlock(ctx context.Context, id uuid.UUID) error

	// CreateWeek saves a new week under a block.
	CreateWeek(ctx context.Context, week *domain.Week) error

	// DeleteWeek removes a week and all nested entities.
	// Returns ErrWeekNotFound if it does not exist.
	DeleteWeek(ctx context.Context, id uuid.UUID) error

	// CreateDay saves a new day under a week.
	CreateDay(ctx context.Context, day *domain.Day) error

	// UpdateDay updates a day's mutable fields, including its
	// weekday index and sleep data.
	// Returns ErrDayNotFound if it does not exist.
	UpdateDay(ctx context.Context, day *domain.Day) error

	// DeleteDay removes a day and all nested entities.
	// Returns ErrDayNotFound if it does not exist.
	DeleteDay(ctx context.Context, id uuid.UUID) error

	// CreateColumn saves a new column under a day.
	CreateColumn(ctx context.Context, column *domain.DayColumn) error

	// UpdateColumn updates a column's label.
	// Returns ErrColumnNotFound if it does not exist.
	UpdateColumn(ctx context.Context, column *domain.DayColumn) error

	// DeleteColumn removes a column.
	// Returns ErrColumnNotFound if it does not exist.
	DeleteColumn(ctx context.Context, id uuid.UUID) error

	// CreateRow saves a new row under a day.
	CreateRow(ctx context.Context, row *domain.DayRow) error

	// UpdateRow replaces a row's cell contents.
	// Returns ErrRowNotFound if it does not exist.
	UpdateRow(ctx context.Context, row *domain.DayRow) error

	// DeleteRow removes a row.
	// Returns ErrRowNotFound if it does not exist.
	DeleteRow(ctx context.Context, id uuid.UUID) error

	// ResolveProgramID walks up from a nested entity to the program that
	// owns it. Ownership checks at the service layer use this before
	// mutating anything below the program level.
	// Returns the level's not-found sentinel if the entity does not exist.
	ResolveProgramID(ctx context.Context, level HierarchyLevel, id uuid.UUID) (uuid.UUID, error)

	// WithTx returns a new ProgramStore instance that uses the
	// provided transaction for all operations.
	WithTx(tx DBTX) ProgramStore
}

// HierarchyLevel names one nesting level below the program.
type HierarchyLevel string

// Hierarchy levels accepted by ResolveProgramID.
const (
	LevelBlock  HierarchyLevel = "block"
	LevelWeek   HierarchyLevel = "week"
	LevelDay    HierarchyLevel = "day"
	LevelColumn HierarchyLevel = "column"
	LevelRow    HierarchyLevel = "row"
)

// HierarchyStore loads a program's full nested structure as the
// read-only snapshot consumed by the analytics engine.
type HierarchyStore interface {
	// GetProgramHierarchy loads the complete block/week/day tree for a
	// program in a single pass. Blocks, weeks, days, columns, and rows
	// come back in no guaranteed order; the analytics layer sorts them.
	// Returns ErrProgramNotFound if the program does not exist.
	GetProgramHierarchy(ctx context.Context, programID uuid.UUID) (*analytics.ProgramHierarchy, error)
}
