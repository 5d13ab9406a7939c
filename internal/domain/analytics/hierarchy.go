package analytics

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// ProgramHierarchy is the fully materialized, read-only snapshot of a
// program's training data that the engine consumes. The engine has no opinion
// on how the snapshot was fetched; it sorts the levels itself, so callers may
// supply them in any order.
type ProgramHierarchy struct {
	Blocks []BlockData `json:"blocks"`
}

// BlockData pairs a block with its weeks.
type BlockData struct {
	Block domain.Block `json:"block"`
	Weeks []WeekData   `json:"weeks"`
}

// WeekData pairs a week with its days.
type WeekData struct {
	Week domain.Week `json:"week"`
	Days []DayData   `json:"days"`
}

// DayData pairs a day with its grid.
type DayData struct {
	Day     domain.Day         `json:"day"`
	Columns []domain.DayColumn `json:"columns"`
	Rows    []domain.DayRow    `json:"rows"`
}

// dayRecord is one element of the flattened chronological walk. The residual
// fatigue recurrence folds over these, so flattening isolates the recurrence
// from the nested traversal.
type dayRecord struct {
	day       DayData
	dayLabel  string
	weekLabel string
	// absoluteWeek is the week number on the continuous axis formed by
	// concatenating all blocks: the week's own number plus the week counts of
	// every strictly earlier block.
	absoluteWeek int
}

// weekRecord is one week of the flattened walk, in traversal order.
type weekRecord struct {
	label string
	days  []dayRecord
}

// weekLabel builds the synthetic per-week chart key, e.g. "B1W2".
func weekLabel(blockOrder, weekNumber int) string {
	return fmt.Sprintf("B%dW%d", blockOrder+1, weekNumber)
}

// dayLabel builds the synthetic per-day chart key, e.g. "B1W2D3".
func dayLabel(blockOrder, weekNumber, dayNumber int) string {
	return fmt.Sprintf("B%dW%dD%d", blockOrder+1, weekNumber, dayNumber)
}

// flatten produces the shared traversal order: blocks ascending by Order,
// weeks within a block ascending by WeekNumber, days within a week ascending
// by DayNumber. Input slices are not mutated.
func flatten(h *ProgramHierarchy) []weekRecord {
	blocks := make([]BlockData, len(h.Blocks))
	copy(blocks, h.Blocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Block.Order < blocks[j].Block.Order
	})

	var weeks []weekRecord
	priorWeeks := 0

	for _, blockData := range blocks {
		sortedWeeks := make([]WeekData, len(blockData.Weeks))
		copy(sortedWeeks, blockData.Weeks)
		sort.SliceStable(sortedWeeks, func(i, j int) bool {
			return sortedWeeks[i].Week.WeekNumber < sortedWeeks[j].Week.WeekNumber
		})

		for _, weekData := range sortedWeeks {
			days := make([]DayData, len(weekData.Days))
			copy(days, weekData.Days)
			sort.SliceStable(days, func(i, j int) bool {
				return days[i].Day.DayNumber < days[j].Day.DayNumber
			})

			record := weekRecord{
				label: weekLabel(blockData.Block.Order, weekData.Week.WeekNumber),
			}
			for _, dayData := range days {
				record.days = append(record.days, dayRecord{
					day:          dayData,
					dayLabel:     dayLabel(blockData.Block.Order, weekData.Week.WeekNumber, dayData.Day.DayNumber),
					weekLabel:    record.label,
					absoluteWeek: weekData.Week.WeekNumber + priorWeeks,
				})
			}
			weeks = append(weeks, record)
		}

		priorWeeks += len(blockData.Weeks)
	}

	return weeks
}

// resolvedColumns holds the column IDs the configured labels resolve to
// within one day. Resolution is per day because column IDs differ across days
// even when labels match; resolving globally would silently merge unrelated
// columns.
type resolvedColumns struct {
	exercise uuid.UUID
	sets     uuid.UUID
	reps     uuid.UUID
	weight   uuid.UUID
	rpe      uuid.UUID

	hasVolume  bool // exercise, sets, reps and weight all resolved
	hasFatigue bool // exercise, reps and rpe all resolved
}

// resolveColumns matches the settings labels against one day's columns by
// label equality. A missing required label leaves the corresponding has flag
// false, which the aggregators treat as "day contributes nothing".
func resolveColumns(day DayData, settings *domain.StatsSettings) resolvedColumns {
	var r resolvedColumns
	var haveExercise, haveSets, haveReps, haveWeight, haveRPE bool

	// Roles are matched independently so a single column can serve more than
	// one role if the user mapped the same label twice.
	for _, col := range day.Columns {
		if !haveExercise && col.Label == settings.ExerciseLabel {
			r.exercise, haveExercise = col.ID, true
		}
		if !haveSets && col.Label == settings.SetsLabel {
			r.sets, haveSets = col.ID, true
		}
		if !haveReps && col.Label == settings.RepsLabel {
			r.reps, haveReps = col.ID, true
		}
		if !haveWeight && col.Label == settings.WeightLabel {
			r.weight, haveWeight = col.ID, true
		}
		if !haveRPE && settings.RPELabel != "" && col.Label == settings.RPELabel {
			r.rpe, haveRPE = col.ID, true
		}
	}

	r.hasVolume = haveExercise && haveSets && haveReps && haveWeight
	r.hasFatigue = haveExercise && haveReps && haveRPE
	return r
}
