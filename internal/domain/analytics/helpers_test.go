package analytics

import (
	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// Shared builders for analytics tests. Days are constructed the way the grid
// editor produces them: columns with per-day IDs, rows with sparse cell maps
// keyed by those IDs.

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func testSettings(rpeLabel string) *domain.StatsSettings {
	return &domain.StatsSettings{
		ID:            uuid.New(),
		ProgramID:     uuid.New(),
		UserID:        uuid.New(),
		ExerciseLabel: "Exercise",
		SetsLabel:     "Sets",
		RepsLabel:     "Reps",
		WeightLabel:   "Weight",
		RPELabel:      rpeLabel,
	}
}

// newTestDay builds a DayData with fresh column IDs for the given labels.
// Each row's values align positionally with the labels; empty strings are
// omitted from the cell map, mirroring how empty cells are stored.
func newTestDay(dayNumber int, weekDayIndex *int, labels []string, rows [][]string) DayData {
	dayID := uuid.New()
	day := DayData{
		Day: domain.Day{
			ID:           dayID,
			WeekID:       uuid.New(),
			DayNumber:    dayNumber,
			WeekDayIndex: weekDayIndex,
		},
	}

	for i, label := range labels {
		day.Columns = append(day.Columns, domain.DayColumn{
			ID:    uuid.New(),
			DayID: dayID,
			Label: label,
			Order: i,
		})
	}

	for i, values := range rows {
		row := domain.DayRow{
			ID:    uuid.New(),
			DayID: dayID,
			Order: i,
			Cells: make(map[uuid.UUID]string),
		}
		for j, value := range values {
			if j < len(day.Columns) && value != "" {
				row.Cells[day.Columns[j].ID] = value
			}
		}
		day.Rows = append(day.Rows, row)
	}

	return day
}

// newTestHierarchy wraps weeks of days into a single block with order 0.
func newTestHierarchy(weeks ...WeekData) *ProgramHierarchy {
	return &ProgramHierarchy{
		Blocks: []BlockData{
			{
				Block: domain.Block{ID: uuid.New(), Name: "Block 1", Order: 0},
				Weeks: weeks,
			},
		},
	}
}

func newTestWeek(weekNumber int, days ...DayData) WeekData {
	return WeekData{
		Week: domain.Week{ID: uuid.New(), WeekNumber: weekNumber},
		Days: days,
	}
}
