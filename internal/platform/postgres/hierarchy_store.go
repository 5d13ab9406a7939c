package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
	"github.com/phrazzld/barbell-api/internal/store"
)

// PostgresHierarchyStore implements the store.HierarchyStore interface.
// It loads a program's full block/week/day tree with one query per level
// rather than per entity, then assembles the snapshot in memory.
type PostgresHierarchyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHierarchyStore creates a new PostgreSQL implementation of the
// HierarchyStore interface.
func NewPostgresHierarchyStore(db store.DBTX) *PostgresHierarchyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	return &PostgresHierarchyStore{
		db:     db,
		logger: slog.Default().With(slog.String("component", "hierarchy_store")),
	}
}

// Ensure PostgresHierarchyStore implements store.HierarchyStore interface
var _ store.HierarchyStore = (*PostgresHierarchyStore)(nil)

// GetProgramHierarchy implements store.HierarchyStore.GetProgramHierarchy
// Returns store.ErrProgramNotFound if the program does not exist. Levels come
// back in insertion order; the analytics engine sorts them itself.
func (s *PostgresHierarchyStore) GetProgramHierarchy(
	ctx context.Context,
	programID uuid.UUID,
) (*analytics.ProgramHierarchy, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM programs WHERE id = $1)`,
		programID,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check program existence",
			slog.String("error", err.Error()),
			slog.String("program_id", programID.String()))
		return nil, MapError(err)
	}
	if !exists {
		log.Debug("program not found for hierarchy load",
			slog.String("program_id", programID.String()))
		return nil, store.ErrProgramNotFound
	}

	blocks, err := s.loadBlocks(ctx, programID)
	if err != nil {
		return nil, err
	}
	weeksByBlock, err := s.loadWeeks(ctx, programID)
	if err != nil {
		return nil, err
	}
	daysByWeek, err := s.loadDays(ctx, programID)
	if err != nil {
		return nil, err
	}
	columnsByDay, err := s.loadColumns(ctx, programID)
	if err != nil {
		return nil, err
	}
	rowsByDay, err := s.loadRows(ctx, programID)
	if err != nil {
		return nil, err
	}

	hierarchy := &analytics.ProgramHierarchy{
		Blocks: make([]analytics.BlockData, 0, len(blocks)),
	}
	for _, block := range blocks {
		blockData := analytics.BlockData{Block: block}
		for _, week := range weeksByBlock[block.ID] {
			weekData := analytics.WeekData{Week: week}
			for _, day := range daysByWeek[week.ID] {
				weekData.Days = append(weekData.Days, analytics.DayData{
					Day:     day,
					Columns: columnsByDay[day.ID],
					Rows:    rowsByDay[day.ID],
				})
			}
			blockData.Weeks = append(blockData.Weeks, weekData)
		}
		hierarchy.Blocks = append(hierarchy.Blocks, blockData)
	}

	log.Debug("program hierarchy loaded",
		slog.String("program_id", programID.String()),
		slog.Int("block_count", len(hierarchy.Blocks)))
	return hierarchy, nil
}

func (s *PostgresHierarchyStore) loadBlocks(
	ctx context.Context,
	programID uuid.UUID,
) ([]domain.Block, error) {
	query := `
		SELECT id, program_id, name, block_order, created_at, updated_at
		FROM blocks
		WHERE program_id = $1
	`
	return queryLevel(ctx, s, query, programID, "blocks", func(rows *sql.Rows) (domain.Block, error) {
		var block domain.Block
		err := rows.Scan(
			&block.ID,
			&block.ProgramID,
			&block.Name,
			&block.Order,
			&block.CreatedAt,
			&block.UpdatedAt,
		)
		return block, err
	})
}

func (s *PostgresHierarchyStore) loadWeeks(
	ctx context.Context,
	programID uuid.UUID,
) (map[uuid.UUID][]domain.Week, error) {
	query := `
		SELECT w.id, w.block_id, w.week_number, w.created_at, w.updated_at
		FROM weeks w
		JOIN blocks b ON w.block_id = b.id
		WHERE b.program_id = $1
	`
	weeks, err := queryLevel(ctx, s, query, programID, "weeks", func(rows *sql.Rows) (domain.Week, error) {
		var week domain.Week
		err := rows.Scan(
			&week.ID,
			&week.BlockID,
			&week.WeekNumber,
			&week.CreatedAt,
			&week.UpdatedAt,
		)
		return week, err
	})
	if err != nil {
		return nil, err
	}

	byBlock := make(map[uuid.UUID][]domain.Week)
	for _, week := range weeks {
		byBlock[week.BlockID] = append(byBlock[week.BlockID], week)
	}
	return byBlock, nil
}

func (s *PostgresHierarchyStore) loadDays(
	ctx context.Context,
	programID uuid.UUID,
) (map[uuid.UUID][]domain.Day, error) {
	query := `
		SELECT d.id, d.week_id, d.day_number, d.name, d.week_day_index,
			d.sleep_quality, d.sleep_time, d.created_at, d.updated_at
		FROM days d
		JOIN weeks w ON d.week_id = w.id
		JOIN blocks b ON w.block_id = b.id
		WHERE b.program_id = $1
	`
	days, err := queryLevel(ctx, s, query, programID, "days", func(rows *sql.Rows) (domain.Day, error) {
		var day domain.Day
		err := rows.Scan(
			&day.ID,
			&day.WeekID,
			&day.DayNumber,
			&day.Name,
			&day.WeekDayIndex,
			&day.SleepQuality,
			&day.SleepTime,
			&day.CreatedAt,
			&day.UpdatedAt,
		)
		return day, err
	})
	if err != nil {
		return nil, err
	}

	byWeek := make(map[uuid.UUID][]domain.Day)
	for _, day := range days {
		byWeek[day.WeekID] = append(byWeek[day.WeekID], day)
	}
	return byWeek, nil
}

func (s *PostgresHierarchyStore) loadColumns(
	ctx context.Context,
	programID uuid.UUID,
) (map[uuid.UUID][]domain.DayColumn, error) {
	query := `
		SELECT c.id, c.day_id, c.label, c.column_order, c.created_at, c.updated_at
		FROM day_columns c
		JOIN days d ON c.day_id = d.id
		JOIN weeks w ON d.week_id = w.id
		JOIN blocks b ON w.block_id = b.id
		WHERE b.program_id = $1
		ORDER BY c.column_order ASC
	`
	columns, err := queryLevel(ctx, s, query, programID, "day columns",
		func(rows *sql.Rows) (domain.DayColumn, error) {
			var column domain.DayColumn
			err := rows.Scan(
				&column.ID,
				&column.DayID,
				&column.Label,
				&column.Order,
				&column.CreatedAt,
				&column.UpdatedAt,
			)
			return column, err
		})
	if err != nil {
		return nil, err
	}

	byDay := make(map[uuid.UUID][]domain.DayColumn)
	for _, column := range columns {
		byDay[column.DayID] = append(byDay[column.DayID], column)
	}
	return byDay, nil
}

func (s *PostgresHierarchyStore) loadRows(
	ctx context.Context,
	programID uuid.UUID,
) (map[uuid.UUID][]domain.DayRow, error) {
	query := `
		SELECT r.id, r.day_id, r.row_order, r.cells, r.created_at, r.updated_at
		FROM day_rows r
		JOIN days d ON r.day_id = d.id
		JOIN weeks w ON d.week_id = w.id
		JOIN blocks b ON w.block_id = b.id
		WHERE b.program_id = $1
		ORDER BY r.row_order ASC
	`
	dayRows, err := queryLevel(ctx, s, query, programID, "day rows",
		func(rows *sql.Rows) (domain.DayRow, error) {
			var row domain.DayRow
			var cells []byte
			err := rows.Scan(
				&row.ID,
				&row.DayID,
				&row.Order,
				&cells,
				&row.CreatedAt,
				&row.UpdatedAt,
			)
			if err != nil {
				return row, err
			}
			if err := json.Unmarshal(cells, &row.Cells); err != nil {
				return row, fmt.Errorf("failed to unmarshal row cells: %w", err)
			}
			return row, nil
		})
	if err != nil {
		return nil, err
	}

	byDay := make(map[uuid.UUID][]domain.DayRow)
	for _, row := range dayRows {
		byDay[row.DayID] = append(byDay[row.DayID], row)
	}
	return byDay, nil
}

// queryLevel runs one hierarchy-level query and scans every row with scan.
func queryLevel[T any](
	ctx context.Context,
	s *PostgresHierarchyStore,
	query string,
	programID uuid.UUID,
	level string,
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, programID)
	if err != nil {
		log.Error("failed to query hierarchy level",
			slog.String("error", err.Error()),
			slog.String("level", level),
			slog.String("program_id", programID.String()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Error("failed to scan hierarchy row",
				slog.String("error", err.Error()),
				slog.String("level", level))
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning hierarchy rows",
			slog.String("error", err.Error()),
			slog.String("level", level))
		return nil, err
	}

	return out, nil
}
