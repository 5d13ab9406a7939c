package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
	"github.com/phrazzld/barbell-api/internal/store"
)

// PostgresProgramStore implements the store.ProgramStore interface
// using a PostgreSQL database as the storage backend. Row cells are
// persisted as a JSONB map keyed by column ID.
type PostgresProgramStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgramStore creates a new PostgreSQL implementation of the
// ProgramStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresProgramStore(db store.DBTX) *PostgresProgramStore {
	if db == nil {
		panic("db cannot be nil")
	}

	return &PostgresProgramStore{
		db:     db,
		logger: slog.Default().With(slog.String("component", "program_store")),
	}
}

// Ensure PostgresProgramStore implements store.ProgramStore interface
var _ store.ProgramStore = (*PostgresProgramStore)(nil)

// WithTx implements store.ProgramStore.WithTx
func (s *PostgresProgramStore) WithTx(tx store.DBTX) store.ProgramStore {
	return &PostgresProgramStore{
		db:     tx,
		logger: s.logger,
	}
}

// CreateProgram implements store.ProgramStore.CreateProgram
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresProgramStore) CreateProgram(ctx context.Context, program *domain.Program) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := program.Validate(); err != nil {
		log.Warn("program validation failed during create",
			slog.String("error", err.Error()),
			slog.String("program_id", program.ID.String()))
		return err
	}

	query := `
		INSERT INTO programs (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		program.ID,
		program.UserID,
		program.Name,
		program.CreatedAt,
		program.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during program creation",
				slog.String("program_id", program.ID.String()),
				slog.String("user_id", program.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, program.UserID)
		}
		log.Error("failed to create program",
			slog.String("error", err.Error()),
			slog.String("program_id", program.ID.String()))
		return MapError(err)
	}

	log.Info("program created successfully",
		slog.String("program_id", program.ID.String()),
		slog.String("user_id", program.UserID.String()))
	return nil
}

// GetProgram implements store.ProgramStore.GetProgram
// Returns store.ErrProgramNotFound if the program does not exist.
func (s *PostgresProgramStore) GetProgram(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM programs
		WHERE id = $1
	`

	var program domain.Program
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&program.ID,
		&program.UserID,
		&program.Name,
		&program.CreatedAt,
		&program.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("program not found", slog.String("program_id", id.String()))
			return nil, store.ErrProgramNotFound
		}
		log.Error("failed to get program",
			slog.String("error", err.Error()),
			slog.String("program_id", id.String()))
		return nil, MapError(err)
	}

	return &program, nil
}

// ListProgramsByUser implements store.ProgramStore.ListProgramsByUser
// Returns an empty slice when the user has no programs.
func (s *PostgresProgramStore) ListProgramsByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Program, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM programs
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list programs",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	programs := []*domain.Program{}
	for rows.Next() {
		var program domain.Program
		err := rows.Scan(
			&program.ID,
			&program.UserID,
			&program.Name,
			&program.CreatedAt,
			&program.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan program row",
				slog.String("error", err.Error()))
			return nil, err
		}
		programs = append(programs, &program)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning program rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return programs, nil
}

// UpdateProgram implements store.ProgramStore.UpdateProgram
// Returns store.ErrProgramNotFound if the program does not exist.
func (s *PostgresProgramStore) UpdateProgram(ctx context.Context, program *domain.Program) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := program.Validate(); err != nil {
		log.Warn("program validation failed during update",
			slog.String("error", err.Error()),
			slog.String("program_id", program.ID.String()))
		return err
	}

	updatedAt := time.Now().UTC()

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE programs SET name = $1, updated_at = $2 WHERE id = $3`,
		program.Name,
		updatedAt,
		program.ID,
	)
	if err != nil {
		log.Error("failed to update program",
			slog.String("error", err.Error()),
			slog.String("program_id", program.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProgramNotFound); err != nil {
		return err
	}

	program.UpdatedAt = updatedAt
	return nil
}

// DeleteProgram implements store.ProgramStore.DeleteProgram
// Cascading foreign keys remove all nested blocks, weeks, days, columns,
// rows, and the program's stats settings.
func (s *PostgresProgramStore) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "programs", id, store.ErrProgramNotFound)
}

// CreateBlock implements store.ProgramStore.CreateBlock
func (s *PostgresProgramStore) CreateBlock(ctx context.Context, block *domain.Block) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := block.Validate(); err != nil {
		log.Warn("block validation failed during create",
			slog.String("error", err.Error()),
			slog.String("block_id", block.ID.String()))
		return err
	}

	query := `
		INSERT INTO blocks (id, program_id, name, block_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		block.ID,
		block.ProgramID,
		block.Name,
		block.Order,
		block.CreatedAt,
		block.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: program with ID %s not found",
				store.ErrInvalidEntity, block.ProgramID)
		}
		log.Error("failed to create block",
			slog.String("error", err.Error()),
			slog.String("block_id", block.ID.String()))
		return MapError(err)
	}

	return nil
}

// GetBlock implements store.ProgramStore.GetBlock
func (s *PostgresProgramStore) GetBlock(ctx context.Context, id uuid.UUID) (*domain.Block, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, program_id, name, block_order, created_at, updated_at
		FROM blocks
		WHERE id = $1
	`

	var block domain.Block
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&block.ID,
		&block.ProgramID,
		&block.Name,
		&block.Order,
		&block.CreatedAt,
		&block.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBlockNotFound
		}
		log.Error("failed to get block",
			slog.String("error", err.Error()),
			slog.String("block_id", id.String()))
		return nil, MapError(err)
	}

	return &block, nil
}

// UpdateBlock implements store.ProgramStore.UpdateBlock
func (s *PostgresProgramStore) UpdateBlock(ctx context.Context, block *domain.Block) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := block.Validate(); err != nil {
		log.Warn("block validation failed during update",
			slog.String("error", err.Error()),
			slog.String("block_id", block.ID.String()))
		return err
	}

	updatedAt := time.Now().UTC()

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE blocks SET name = $1, block_order = $2, updated_at = $3 WHERE id = $4`,
		block.Name,
		block.Order,
		updatedAt,
		block.ID,
	)
	if err != nil {
		log.Error("failed to update block",
			slog.String("error", err.Error()),
			slog.String("block_id", block.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBlockNotFound); err != nil {
		return err
	}

	block.UpdatedAt = updatedAt
	return nil
}

// DeleteBlock implements store.ProgramStore.DeleteBlock
func (s *PostgresProgramStore) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "blocks", id, store.ErrBlockNotFound)
}

// CreateWeek implements store.ProgramStore.CreateWeek
func (s *PostgresProgramStore) CreateWeek(ctx context.Context, week *domain.Week) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := week.Validate(); err != nil {
		log.Warn("week validation failed during create",
			slog.String("error", err.Error()),
			slog.String("week_id", week.ID.String()))
		return err
	}

	query := `
		INSERT INTO weeks (id, block_id, week_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		week.ID,
		week.BlockID,
		week.WeekNumber,
		week.CreatedAt,
		week.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: block with ID %s not found",
				store.ErrInvalidEntity, week.BlockID)
		}
		log.Error("failed to create week",
			slog.String("error", err.Error()),
			slog.String("week_id", week.ID.String()))
		return MapError(err)
	}

	return nil
}

// DeleteWeek implements store.ProgramStore.DeleteWeek
func (s *PostgresProgramStore) DeleteWeek(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "weeks", id, store.ErrWeekNotFound)
}

// CreateDay implements store.ProgramStore.CreateDay
func (s *PostgresProgramStore) CreateDay(ctx context.Context, day *domain.Day) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := day.Validate(); err != nil {
		log.Warn("day validation failed during create",
			slog.String("error", err.Error()),
			slog.String("day_id", day.ID.String()))
		return err
	}

	query := `
		INSERT INTO days (id, week_id, day_number, name, week_day_index,
			sleep_quality, sleep_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		day.ID,
		day.WeekID,
		day.DayNumber,
		day.Name,
		day.WeekDayIndex,
		day.SleepQuality,
		day.SleepTime,
		day.CreatedAt,
		day.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: week with ID %s not found",
				store.ErrInvalidEntity, day.WeekID)
		}
		log.Error("failed to create day",
			slog.String("error", err.Error()),
			slog.String("day_id", day.ID.String()))
		return MapError(err)
	}

	return nil
}

// UpdateDay implements store.ProgramStore.UpdateDay
func (s *PostgresProgramStore) UpdateDay(ctx context.Context, day *domain.Day) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := day.Validate(); err != nil {
		log.Warn("day validation failed during update",
			slog.String("error", err.Error()),
			slog.String("day_id", day.ID.String()))
		return err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE days
		SET day_number = $1, name = $2, week_day_index = $3,
			sleep_quality = $4, sleep_time = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		day.DayNumber,
		day.Name,
		day.WeekDayIndex,
		day.SleepQuality,
		day.SleepTime,
		updatedAt,
		day.ID,
	)
	if err != nil {
		log.Error("failed to update day",
			slog.String("error", err.Error()),
			slog.String("day_id", day.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrDayNotFound); err != nil {
		return err
	}

	day.UpdatedAt = updatedAt
	return nil
}

// DeleteDay implements store.ProgramStore.DeleteDay
func (s *PostgresProgramStore) DeleteDay(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "days", id, store.ErrDayNotFound)
}

// CreateColumn implements store.ProgramStore.CreateColumn
func (s *PostgresProgramStore) CreateColumn(ctx context.Context, column *domain.DayColumn) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := column.Validate(); err != nil {
		log.Warn("column validation failed during create",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return err
	}

	query := `
		INSERT INTO day_columns (id, day_id, label, column_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		column.ID,
		column.DayID,
		column.Label,
		column.Order,
		column.CreatedAt,
		column.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: day with ID %s not found",
				store.ErrInvalidEntity, column.DayID)
		}
		log.Error("failed to create column",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return MapError(err)
	}

	return nil
}

// UpdateColumn implements store.ProgramStore.UpdateColumn
func (s *PostgresProgramStore) UpdateColumn(ctx context.Context, column *domain.DayColumn) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := column.Validate(); err != nil {
		log.Warn("column validation failed during update",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return err
	}

	updatedAt := time.Now().UTC()

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE day_columns SET label = $1, column_order = $2, updated_at = $3 WHERE id = $4`,
		column.Label,
		column.Order,
		updatedAt,
		column.ID,
	)
	if err != nil {
		log.Error("failed to update column",
			slog.String("error", err.Error()),
			slog.String("column_id", column.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrColumnNotFound); err != nil {
		return err
	}

	column.UpdatedAt = updatedAt
	return nil
}

// DeleteColumn implements store.ProgramStore.DeleteColumn
func (s *PostgresProgramStore) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "day_columns", id, store.ErrColumnNotFound)
}

// CreateRow implements store.ProgramStore.CreateRow
func (s *PostgresProgramStore) CreateRow(ctx context.Context, row *domain.DayRow) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := row.Validate(); err != nil {
		log.Warn("row validation failed during create",
			slog.String("error", err.Error()),
			slog.String("row_id", row.ID.String()))
		return err
	}

	cells, err := marshalCells(row.Cells)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO day_rows (id, day_id, row_order, cells, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		row.ID,
		row.DayID,
		row.Order,
		cells,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: day with ID %s not found",
				store.ErrInvalidEntity, row.DayID)
		}
		log.Error("failed to create row",
			slog.String("error", err.Error()),
			slog.String("row_id", row.ID.String()))
		return MapError(err)
	}

	return nil
}

// UpdateRow implements store.ProgramStore.UpdateRow
// The cells map replaces the stored one wholesale; partial cell updates are
// a service-layer concern.
func (s *PostgresProgramStore) UpdateRow(ctx context.Context, row *domain.DayRow) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := row.Validate(); err != nil {
		log.Warn("row validation failed during update",
			slog.String("error", err.Error()),
			slog.String("row_id", row.ID.String()))
		return err
	}

	cells, err := marshalCells(row.Cells)
	if err != nil {
		return err
	}

	updatedAt := time.Now().UTC()

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE day_rows SET row_order = $1, cells = $2, updated_at = $3 WHERE id = $4`,
		row.Order,
		cells,
		updatedAt,
		row.ID,
	)
	if err != nil {
		log.Error("failed to update row",
			slog.String("error", err.Error()),
			slog.String("row_id", row.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrRowNotFound); err != nil {
		return err
	}

	row.UpdatedAt = updatedAt
	return nil
}

// DeleteRow implements store.ProgramStore.DeleteRow
func (s *PostgresProgramStore) DeleteRow(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "day_rows", id, store.ErrRowNotFound)
}

// ResolveProgramID implements store.ProgramStore.ResolveProgramID
func (s *PostgresProgramStore) ResolveProgramID(
	ctx context.Context,
	level store.HierarchyLevel,
	id uuid.UUID,
) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var query string
	var notFoundErr error
	switch level {
	case store.LevelBlock:
		query = `SELECT program_id FROM blocks WHERE id = $1`
		notFoundErr = store.ErrBlockNotFound
	case store.LevelWeek:
		query = `
			SELECT b.program_id FROM weeks w
			JOIN blocks b ON w.block_id = b.id
			WHERE w.id = $1`
		notFoundErr = store.ErrWeekNotFound
	case store.LevelDay:
		query = `
			SELECT b.program_id FROM days d
			JOIN weeks w ON d.week_id = w.id
			JOIN blocks b ON w.block_id = b.id
			WHERE d.id = $1`
		notFoundErr = store.ErrDayNotFound
	case store.LevelColumn:
		query = `
			SELECT b.program_id FROM day_columns c
			JOIN days d ON c.day_id = d.id
			JOIN weeks w ON d.week_id = w.id
			JOIN blocks b ON w.block_id = b.id
			WHERE c.id = $1`
		notFoundErr = store.ErrColumnNotFound
	case store.LevelRow:
		query = `
			SELECT b.program_id FROM day_rows r
			JOIN days d ON r.day_id = d.id
			JOIN weeks w ON d.week_id = w.id
			JOIN blocks b ON w.block_id = b.id
			WHERE r.id = $1`
		notFoundErr = store.ErrRowNotFound
	default:
		return uuid.Nil, fmt.Errorf("unknown hierarchy level %q", level)
	}

	var programID uuid.UUID
	err := s.db.QueryRowContext(ctx, query, id).Scan(&programID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, notFoundErr
		}
		log.Error("failed to resolve program for entity",
			slog.String("error", err.Error()),
			slog.String("level", string(level)),
			slog.String("id", id.String()))
		return uuid.Nil, MapError(err)
	}

	return programID, nil
}

// deleteByID issues a delete against the given table, translating an empty
// result into the entity-specific not-found sentinel. Table names are fixed
// string literals from this file, never user input.
func (s *PostgresProgramStore) deleteByID(
	ctx context.Context,
	table string,
	id uuid.UUID,
	notFoundErr error,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete entity",
			slog.String("error", err.Error()),
			slog.String("table", table),
			slog.String("id", id.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, notFoundErr)
}

// marshalCells serializes a row's cell map for JSONB storage. An empty or
// nil map is stored as an empty JSON object.
func marshalCells(cells map[uuid.UUID]string) ([]byte, error) {
	if len(cells) == 0 {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(cells)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal row cells: %w", err)
	}
	return data, nil
}

// closeRows closes a result set, logging rather than masking the error.
func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}
