package analytics

import (
	"math"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// FatigueDataPoint holds one day's fatigue breakdown. Subtotals and Total
// reflect effort logged that day (after optional sleep scaling); Residual is
// the decaying accumulator value after this day was folded in, so consumers
// can plot "effort that day" and "carried load" side by side. Sleep fields
// pass through from the day record untouched.
type FatigueDataPoint struct {
	Label         string                   `json:"label"`
	Subtotals     map[LiftCategory]float64 `json:"subtotals"`
	Total         float64                  `json:"total"`
	SleepQuality  *int                     `json:"sleep_quality"`
	SleepTime     *float64                 `json:"sleep_time"`
	SleepAdjusted bool                     `json:"sleep_adjusted"`
	Residual      float64                  `json:"residual"`
}

// FatigueResult is the daily fatigue series together with the lift categories
// that recorded at least one nonzero set fatigue anywhere in the walk.
type FatigueResult struct {
	Points          []FatigueDataPoint `json:"points"`
	ActiveLiftTypes []LiftCategory     `json:"active_lift_types"`
}

// ComputeFatigue scores per-day fatigue by lift category and folds the days,
// in chronological order, into a decaying residual-fatigue series.
//
// Fatigue is opt-in per program: when no RPE column is configured the result
// is empty. Rows with unclassified exercises or non-positive reps/RPE are
// treated as not logged rather than as zero effort. When sleepAdjusted is set
// and a day carries a sleep quality value, both the day's subtotals and the
// decay rate for the step into that day are conditioned on sleep.
func ComputeFatigue(
	h *ProgramHierarchy,
	settings *domain.StatsSettings,
	sleepAdjusted bool,
	params *Params,
) FatigueResult {
	return computeFatigue(flatten(h), settings, sleepAdjusted, params)
}

func computeFatigue(
	weeks []weekRecord,
	settings *domain.StatsSettings,
	sleepAdjusted bool,
	params *Params,
) FatigueResult {
	// Slices start non-nil so both series serialize as [] when empty,
	// matching the volume result.
	points := make([]FatigueDataPoint, 0)
	activeTypes := make([]LiftCategory, 0)
	if !settings.FatigueEnabled() {
		return FatigueResult{Points: points, ActiveLiftTypes: activeTypes}
	}

	active := make(map[LiftCategory]bool)
	state := newResidualState(params)

	for _, week := range weeks {
		for _, record := range week.days {
			point := scoreDay(record, settings, sleepAdjusted, params, active)
			point.Residual = state.advance(record, point.Total, sleepAdjusted)
			points = append(points, point)
		}
	}

	for _, category := range liftCategories {
		if active[category] {
			activeTypes = append(activeTypes, category)
		}
	}

	return FatigueResult{Points: points, ActiveLiftTypes: activeTypes}
}

// scoreDay computes one day's per-category fatigue subtotals. Each qualifying
// row contributes reps x max(rpe - threshold, 0) x category multiplier. A day
// whose exercise/reps/RPE columns fail to resolve still emits a point, with
// zero totals.
func scoreDay(
	record dayRecord,
	settings *domain.StatsSettings,
	sleepAdjusted bool,
	params *Params,
	active map[LiftCategory]bool,
) FatigueDataPoint {
	point := FatigueDataPoint{
		Label:        record.dayLabel,
		Subtotals:    make(map[LiftCategory]float64),
		SleepQuality: record.day.Day.SleepQuality,
		SleepTime:    record.day.Day.SleepTime,
	}

	cols := resolveColumns(record.day, settings)
	if cols.hasFatigue {
		for _, row := range record.day.Rows {
			category := Classify(row.Cells[cols.exercise])
			if category == LiftNone {
				continue
			}

			reps := ParseNumber(row.Cells[cols.reps])
			rpe := ParseRPE(row.Cells[cols.rpe])
			if reps <= 0 || rpe <= 0 {
				continue
			}

			effort := math.Max(rpe-params.EffortThreshold, 0)
			setFatigue := reps * effort * params.LiftMultipliers[category]
			if setFatigue > 0 {
				active[category] = true
			}
			point.Subtotals[category] += setFatigue
		}
	}

	for _, subtotal := range point.Subtotals {
		point.Total += subtotal
	}

	if sleepAdjusted && record.day.Day.SleepQuality != nil {
		factor := sleepFactor(*record.day.Day.SleepQuality, params)
		for category := range point.Subtotals {
			point.Subtotals[category] *= factor
		}
		point.Total *= factor
		point.SleepAdjusted = true
	}

	return point
}

// sleepFactor maps a sleep quality (clamped to 0-100) onto the scaling factor
// base + span * quality/100, 0.85 to 1.15 at the defaults.
func sleepFactor(quality int, params *Params) float64 {
	clamped := float64(quality)
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}
	return params.SleepFactorBase + params.SleepFactorSpan*clamped/100
}

// residualState is the accumulator threaded through the chronological fold:
// the residual fatigue itself plus the calendar position of the most recent
// day whose week day index was known.
type residualState struct {
	params   *Params
	residual float64

	hasPrev          bool
	prevWeekDayIndex int
	prevAbsoluteWeek int
}

func newResidualState(params *Params) *residualState {
	return &residualState{params: params}
}

// advance folds one day into the residual: residual = residual * decay^gap +
// dayTotal, returning the post-update value.
//
// The gap is measured in days on the continuous calendar formed by absolute
// week numbers and week day indices. When either endpoint is unknown, or the
// data is non-monotonic, the gap falls back to 1 (adjacent-day decay). The
// previous-day pointer only moves on days with a known week day index, so
// unindexed days never reset the gap baseline.
func (s *residualState) advance(record dayRecord, dayTotal float64, sleepAdjusted bool) float64 {
	decay := s.params.BaseDecay
	if sleepAdjusted && record.day.Day.SleepQuality != nil {
		// Better sleep clears fatigue faster (lower decay), worse sleep
		// slower, clamped so the model never degenerates.
		decay = s.params.BaseDecay / sleepFactor(*record.day.Day.SleepQuality, s.params)
		if decay < s.params.MinDecay {
			decay = s.params.MinDecay
		}
		if decay > s.params.MaxDecay {
			decay = s.params.MaxDecay
		}
	}

	gap := 1
	if s.hasPrev && record.day.Day.WeekDayIndex != nil {
		computed := (record.absoluteWeek-s.prevAbsoluteWeek)*7 +
			(*record.day.Day.WeekDayIndex - s.prevWeekDayIndex)
		if computed > 0 {
			gap = computed
		}
	}

	s.residual = s.residual*math.Pow(decay, float64(gap)) + dayTotal

	if record.day.Day.WeekDayIndex != nil {
		s.hasPrev = true
		s.prevWeekDayIndex = *record.day.Day.WeekDayIndex
		s.prevAbsoluteWeek = record.absoluteWeek
	}

	return s.residual
}
