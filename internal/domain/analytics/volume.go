package analytics

import (
	"sort"
	"strings"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// VolumeDataPoint holds the total volume per exercise for one week. Volumes
// is sparse: an exercise absent from the map logged no volume that week,
// which lets chart consumers draw gapped lines instead of dips to zero.
type VolumeDataPoint struct {
	Label   string             `json:"label"`
	Volumes map[string]float64 `json:"volumes"`
}

// VolumeResult is the weekly volume series together with the sorted set of
// every exercise that logged nonzero volume anywhere in the program.
type VolumeResult struct {
	Points    []VolumeDataPoint `json:"points"`
	Exercises []string          `json:"exercises"`
}

// AggregateVolume sums sets x reps x weight per exercise name, bucketed by
// week label. A day contributes nothing when any of the four required columns
// fails to resolve; a row contributes nothing when its exercise cell is empty
// or its volume is not positive. Every week in traversal order still emits a
// point, so the series keeps one entry per week even for empty weeks.
func AggregateVolume(h *ProgramHierarchy, settings *domain.StatsSettings) VolumeResult {
	return aggregateVolume(flatten(h), settings)
}

func aggregateVolume(weeks []weekRecord, settings *domain.StatsSettings) VolumeResult {
	// exercise -> week label -> running total
	totals := make(map[string]map[string]float64)

	for _, week := range weeks {
		for _, record := range week.days {
			cols := resolveColumns(record.day, settings)
			if !cols.hasVolume {
				continue
			}

			for _, row := range record.day.Rows {
				exercise := strings.TrimSpace(row.Cells[cols.exercise])
				if exercise == "" {
					continue
				}

				sets := ParseNumber(row.Cells[cols.sets])
				reps := ParseNumber(row.Cells[cols.reps])
				weight := ParseNumber(row.Cells[cols.weight])
				volume := sets * reps * weight

				if volume <= 0 {
					continue
				}

				if totals[exercise] == nil {
					totals[exercise] = make(map[string]float64)
				}
				totals[exercise][week.label] += volume
			}
		}
	}

	exercises := make([]string, 0, len(totals))
	for exercise := range totals {
		exercises = append(exercises, exercise)
	}
	sort.Strings(exercises)

	points := make([]VolumeDataPoint, 0, len(weeks))
	for _, week := range weeks {
		point := VolumeDataPoint{
			Label:   week.label,
			Volumes: make(map[string]float64),
		}
		for _, exercise := range exercises {
			if volume, ok := totals[exercise][week.label]; ok {
				point.Volumes[exercise] = volume
			}
		}
		points = append(points, point)
	}

	return VolumeResult{Points: points, Exercises: exercises}
}
