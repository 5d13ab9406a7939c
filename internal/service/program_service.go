package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
	"github.com/phrazzld/barbell-api/internal/store"
)

// ProgramServiceError is a custom error type for program service errors.
type ProgramServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ProgramServiceError.
func (e *ProgramServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("program service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("program service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProgramServiceError) Unwrap() error {
	return e.Err
}

// NewProgramServiceError creates a new ProgramServiceError.
func NewProgramServiceError(operation, message string, err error) *ProgramServiceError {
	return &ProgramServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ProgramService provides training program operations with ownership
// enforcement. Every mutating call verifies that the requesting user owns
// the program the target entity belongs to.
type ProgramService interface {
	// CreateProgram creates a new empty program for the user.
	CreateProgram(ctx context.Context, userID uuid.UUID, name string) (*domain.Program, error)

	// GetProgram retrieves a program the user owns.
	GetProgram(ctx context.Context, userID, programID uuid.UUID) (*domain.Program, error)

	// ListPrograms retrieves all programs the user owns.
	ListPrograms(ctx context.Context, userID uuid.UUID) ([]*domain.Program, error)

	// RenameProgram renames a program the user owns.
	RenameProgram(ctx context.Context, userID, programID uuid.UUID, name string) (*domain.Program, error)

	// DeleteProgram deletes a program the user owns, including all nested entities.
	DeleteProgram(ctx context.Context, userID, programID uuid.UUID) error

	// CreateBlock appends a block to a program the user owns.
	CreateBlock(ctx context.Context, userID, programID uuid.UUID, name string, order int) (*domain.Block, error)

	// UpdateBlock renames or reorders a block in a program the user owns.
	UpdateBlock(ctx context.Context, userID uuid.UUID, block *domain.Block) error

	// DeleteBlock deletes a block in a program the user owns.
	DeleteBlock(ctx context.Context, userID, blockID uuid.UUID) error

	// CreateWeek appends a week to a block in a program the user owns.
	CreateWeek(ctx context.Context, userID, blockID uuid.UUID, weekNumber int) (*domain.Week, error)

	// DeleteWeek deletes a week in a program the user owns.
	DeleteWeek(ctx context.Context, userID, weekID uuid.UUID) error

	// CreateDay appends a day to a week in a program the user owns.
	CreateDay(ctx context.Context, userID, weekID uuid.UUID, dayNumber int) (*domain.Day, error)

	// UpdateDay updates a day's name, weekday index, and sleep data.
	UpdateDay(ctx context.Context, userID uuid.UUID, day *domain.Day) error

	// DeleteDay deletes a day in a program the user owns.
	DeleteDay(ctx context.Context, userID, dayID uuid.UUID) error

	// CreateColumn adds a column to a day's grid.
	CreateColumn(ctx context.Context, userID, dayID uuid.UUID, label string, order int) (*domain.DayColumn, error)

	// UpdateColumn relabels or reorders a column.
	UpdateColumn(ctx context.Context, userID uuid.UUID, column *domain.DayColumn) error

	// DeleteColumn deletes a column from a day's grid.
	DeleteColumn(ctx context.Context, userID, columnID uuid.UUID) error

	// CreateRow adds a row to a day's grid.
	CreateRow(ctx context.Context, userID, dayID uuid.UUID, order int, cells map[uuid.UUID]string) (*domain.DayRow, error)

	// UpdateRow replaces a row's order and cell contents.
	UpdateRow(ctx context.Context, userID uuid.UUID, row *domain.DayRow) error

	// DeleteRow deletes a row from a day's grid.
	DeleteRow(ctx context.Context, userID, rowID uuid.UUID) error
}

// programServiceImpl implements the ProgramService interface
type programServiceImpl struct {
	programStore store.ProgramStore
	logger       *slog.Logger
}

// NewProgramService creates a new ProgramService.
// It returns an error if the program store is nil.
func NewProgramService(programStore store.ProgramStore, log *slog.Logger) (ProgramService, error) {
	if programStore == nil {
		return nil, fmt.Errorf("programStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &programServiceImpl{
		programStore: programStore,
		logger:       log.With(slog.String("component", "program_service")),
	}, nil
}

// requireProgramOwner loads the program and verifies the user owns it.
func (s *programServiceImpl) requireProgramOwner(
	ctx context.Context,
	userID, programID uuid.UUID,
) (*domain.Program, error) {
	program, err := s.programStore.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	if program.UserID != userID {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Warn("ownership check failed for program",
			slog.String("program_id", programID.String()),
			slog.String("user_id", userID.String()))
		return nil, ErrNotOwned
	}
	return program, nil
}

// requireEntityOwner resolves a nested entity up to its program and verifies
// the user owns that program.
func (s *programServiceImpl) requireEntityOwner(
	ctx context.Context,
	userID uuid.UUID,
	level store.HierarchyLevel,
	entityID uuid.UUID,
) error {
	programID, err := s.programStore.ResolveProgramID(ctx, level, entityID)
	if err != nil {
		return err
	}
	_, err = s.requireProgramOwner(ctx, userID, programID)
	return err
}

// CreateProgram implements ProgramService.CreateProgram
func (s *programServiceImpl) CreateProgram(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Program, error) {
	program, err := domain.NewProgram(userID, name)
	if err != nil {
		return nil, err
	}

	if err := s.programStore.CreateProgram(ctx, program); err != nil {
		return nil, NewProgramServiceError("create_program", "failed to save program", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("program created",
		slog.String("program_id", program.ID.String()),
		slog.String("user_id", userID.String()))
	return program, nil
}

// GetProgram implements ProgramService.GetProgram
func (s *programServiceImpl) GetProgram(
	ctx context.Context,
	userID, programID uuid.UUID,
) (*domain.Program, error) {
	return s.requireProgramOwner(ctx, userID, programID)
}

// ListPrograms implements ProgramService.ListPrograms
func (s *programServiceImpl) ListPrograms(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Program, error) {
	programs, err := s.programStore.ListProgramsByUser(ctx, userID)
	if err != nil {
		return nil, NewProgramServiceError("list_programs", "failed to list programs", err)
	}
	return programs, nil
}

// RenameProgram implements ProgramService.RenameProgram
func (s *programServiceImpl) RenameProgram(
	ctx context.Context,
	userID, programID uuid.UUID,
	name string,
) (*domain.Program, error) {
	program, err := s.requireProgramOwner(ctx, userID, programID)
	if err != nil {
		return nil, err
	}

	program.Name = name
	if err := s.programStore.UpdateProgram(ctx, program); err != nil {
		return nil, NewProgramServiceError("rename_program", "failed to update program", err)
	}
	return program, nil
}

// DeleteProgram implements ProgramService.DeleteProgram
func (s *programServiceImpl) DeleteProgram(ctx context.Context, userID, programID uuid.UUID) error {
	if _, err := s.requireProgramOwner(ctx, userID, programID); err != nil {
		return err
	}
	if err := s.programStore.DeleteProgram(ctx, programID); err != nil {
		return NewProgramServiceError("delete_program", "failed to delete program", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("program deleted",
		slog.String("program_id", programID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// CreateBlock implements ProgramService.CreateBlock
func (s *programServiceImpl) CreateBlock(
	ctx context.Context,
	userID, programID uuid.UUID,
	name string,
	order int,
) (*domain.Block, error) {
	if _, err := s.requireProgramOwner(ctx, userID, programID); err != nil {
		return nil, err
	}

	block, err := domain.NewBlock(programID, name, order)
	if err != nil {
		return nil, err
	}
	if err := s.programStore.CreateBlock(ctx, block); err != nil {
		return nil, NewProgramServiceError("create_block", "failed to save block", err)
	}
	return block, nil
}

// UpdateBlock implements ProgramService.UpdateBlock
func (s *programServiceImpl) UpdateBlock(ctx context.Context, userID uuid.UUID, block *domain.Block) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelBlock, block.ID); err != nil {
		return err
	}
	if err := s.programStore.UpdateBlock(ctx, block); err != nil {
		return NewProgramServiceError("update_block", "failed to update block", err)
	}
	return nil
}

// DeleteBlock implements ProgramService.DeleteBlock
func (s *programServiceImpl) DeleteBlock(ctx context.Context, userID, blockID uuid.UUID) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelBlock, blockID); err != nil {
		return err
	}
	if err := s.programStore.DeleteBlock(ctx, blockID); err != nil {
		return NewProgramServiceError("delete_block", "failed to delete block", err)
	}
	return nil
}

// CreateWeek implements ProgramService.CreateWeek
func (s *programServiceImpl) CreateWeek(
	ctx context.Context,
	userID, blockID uuid.UUID,
	weekNumber int,
) (*domain.Week, error) {
	if err := s.requireEntityOwner(ctx, userID, store.LevelBlock, blockID); err != nil {
		return nil, err
	}

	week, err := domain.NewWeek(blockID, weekNumber)
	if err != nil {
		return nil, err
	}
	if err := s.programStore.CreateWeek(ctx, week); err != nil {
		return nil, NewProgramServiceError("create_week", "failed to save week", err)
	}
	return week, nil
}

// DeleteWeek implements ProgramService.DeleteWeek
func (s *programServiceImpl) DeleteWeek(ctx context.Context, userID, weekID uuid.UUID) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelWeek, weekID); err != nil {
		return err
	}
	if err := s.programStore.DeleteWeek(ctx, weekID); err != nil {
		return NewProgramServiceError("delete_week", "failed to delete week", err)
	}
	return nil
}

// CreateDay implements ProgramService.CreateDay
func (s *programServiceImpl) CreateDay(
	ctx context.Context,
	userID, weekID uuid.UUID,
	dayNumber int,
) (*domain.Day, error) {
	if err := s.requireEntityOwner(ctx, userID, store.LevelWeek, weekID); err != nil {
		return nil, err
	}

	day, err := domain.NewDay(weekID, dayNumber)
	if err != nil {
		return nil, err
	}
	if err := s.programStore.CreateDay(ctx, day); err != nil {
		return nil, NewProgramServiceError("create_day", "failed to save day", err)
	}
	return day, nil
}

// UpdateDay implements ProgramService.UpdateDay
func (s *programServiceImpl) UpdateDay(ctx context.Context, userID uuid.UUID, day *domain.Day) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelDay, day.ID); err != nil {
		return err
	}
	if err := s.programStore.UpdateDay(ctx, day); err != nil {
		return NewProgramServiceError("update_day", "failed to update day", err)
	}
	return nil
}

// DeleteDay implements ProgramService.DeleteDay
func (s *programServiceImpl) DeleteDay(ctx context.Context, userID, dayID uuid.UUID) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelDay, dayID); err != nil {
		return err
	}
	if err := s.programStore.DeleteDay(ctx, dayID); err != nil {
		return NewProgramServiceError("delete_day", "failed to delete day", err)
	}
	return nil
}

// CreateColumn implements ProgramService.CreateColumn
func (s *programServiceImpl) CreateColumn(
	ctx context.Context,
	userID, dayID uuid.UUID,
	label string,
	order int,
) (*domain.DayColumn, error) {
	if err := s.requireEntityOwner(ctx, userID, store.LevelDay, dayID); err != nil {
		return nil, err
	}

	column, err := domain.NewDayColumn(dayID, label, order)
	if err != nil {
		return nil, err
	}
	if err := s.programStore.CreateColumn(ctx, column); err != nil {
		return nil, NewProgramServiceError("create_column", "failed to save column", err)
	}
	return column, nil
}

// UpdateColumn implements ProgramService.UpdateColumn
func (s *programServiceImpl) UpdateColumn(
	ctx context.Context,
	userID uuid.UUID,
	column *domain.DayColumn,
) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelColumn, column.ID); err != nil {
		return err
	}
	if err := s.programStore.UpdateColumn(ctx, column); err != nil {
		return NewProgramServiceError("update_column", "failed to update column", err)
	}
	return nil
}

// DeleteColumn implements ProgramService.DeleteColumn
func (s *programServiceImpl) DeleteColumn(ctx context.Context, userID, columnID uuid.UUID) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelColumn, columnID); err != nil {
		return err
	}
	if err := s.programStore.DeleteColumn(ctx, columnID); err != nil {
		return NewProgramServiceError("delete_column", "failed to delete column", err)
	}
	return nil
}

// CreateRow implements ProgramService.CreateRow
func (s *programServiceImpl) CreateRow(
	ctx context.Context,
	userID, dayID uuid.UUID,
	order int,
	cells map[uuid.UUID]string,
) (*domain.DayRow, error) {
	if err := s.requireEntityOwner(ctx, userID, store.LevelDay, dayID); err != nil {
		return nil, err
	}

	row, err := domain.NewDayRow(dayID, order)
	if err != nil {
		return nil, err
	}
	for columnID, text := range cells {
		row.Cells[columnID] = text
	}
	if err := s.programStore.CreateRow(ctx, row); err != nil {
		return nil, NewProgramServiceError("create_row", "failed to save row", err)
	}
	return row, nil
}

// UpdateRow implements ProgramService.UpdateRow
func (s *programServiceImpl) UpdateRow(ctx context.Context, userID uuid.UUID, row *domain.DayRow) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelRow, row.ID); err != nil {
		return err
	}
	if err := s.programStore.UpdateRow(ctx, row); err != nil {
		return NewProgramServiceError("update_row", "failed to update row", err)
	}
	return nil
}

// DeleteRow implements ProgramService.DeleteRow
func (s *programServiceImpl) DeleteRow(ctx context.Context, userID, rowID uuid.UUID) error {
	if err := s.requireEntityOwner(ctx, userID, store.LevelRow, rowID); err != nil {
		return err
	}
	if err := s.programStore.DeleteRow(ctx, rowID); err != nil {
		return NewProgramServiceError("delete_row", "failed to delete row", err)
	}
	return nil
}
