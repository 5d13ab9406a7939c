package analytics

import "math"

// The RPE chart maps (reps, RPE) to a percentage of one-rep max. Keys are
// RPE x 10 to keep the half-step values exact; each row holds percentages for
// 1 through 10 reps.
var rpeChart = map[int][10]float64{
	100: {1.000, 0.955, 0.922, 0.892, 0.863, 0.837, 0.811, 0.786, 0.762, 0.739},
	95:  {0.978, 0.939, 0.907, 0.878, 0.850, 0.824, 0.799, 0.774, 0.751, 0.723},
	90:  {0.955, 0.922, 0.892, 0.863, 0.837, 0.811, 0.786, 0.762, 0.739, 0.707},
	85:  {0.939, 0.907, 0.878, 0.850, 0.824, 0.799, 0.774, 0.751, 0.723, 0.694},
	80:  {0.922, 0.892, 0.863, 0.837, 0.811, 0.786, 0.762, 0.739, 0.707, 0.680},
	75:  {0.907, 0.878, 0.850, 0.824, 0.799, 0.774, 0.751, 0.723, 0.694, 0.667},
	70:  {0.892, 0.863, 0.837, 0.811, 0.786, 0.762, 0.739, 0.707, 0.680, 0.653},
	65:  {0.878, 0.850, 0.824, 0.799, 0.774, 0.751, 0.723, 0.694, 0.667, 0.640},
	60:  {0.863, 0.837, 0.811, 0.786, 0.762, 0.739, 0.707, 0.680, 0.653, 0.626},
}

// RPEValues lists the chart's supported RPE steps in ascending order.
var RPEValues = []float64{6, 6.5, 7, 7.5, 8, 8.5, 9, 9.5, 10}

// RepValues lists the chart's supported rep counts.
var RepValues = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// RPEPercentage looks up the fraction of one-rep max that corresponds to
// performing the given reps at the given RPE. The second return value is
// false when the pair is outside the chart.
func RPEPercentage(reps int, rpe float64) (float64, bool) {
	row, ok := rpeChart[int(math.Round(rpe*10))]
	if !ok || reps < 1 || reps > 10 {
		return 0, false
	}
	return row[reps-1], true
}

// EstimateOneRepMax back-calculates a one-rep max from a performed set:
// weight lifted, reps, and the reported RPE. Returns false when the
// (reps, RPE) pair is outside the chart or weight is not positive.
func EstimateOneRepMax(weight float64, reps int, rpe float64) (float64, bool) {
	pct, ok := RPEPercentage(reps, rpe)
	if !ok || weight <= 0 {
		return 0, false
	}
	return weight / pct, true
}

// LoadForTarget returns the weight to put on the bar for a target set of
// reps at rpe, given a known one-rep max.
func LoadForTarget(oneRepMax float64, reps int, rpe float64) (float64, bool) {
	pct, ok := RPEPercentage(reps, rpe)
	if !ok || oneRepMax <= 0 {
		return 0, false
	}
	return oneRepMax * pct, true
}

// RoundToIncrement rounds a weight to the nearest plate increment (e.g. 2.5).
// Non-positive increments leave the weight untouched.
func RoundToIncrement(weight, increment float64) float64 {
	if increment <= 0 {
		return weight
	}
	return math.Round(weight/increment) * increment
}

// NearbyEntry is one neighboring chart row rendered around a target RPE, used
// by the calculator to show loads half a step easier and harder.
type NearbyEntry struct {
	RPE        float64 `json:"rpe"`
	Percentage float64 `json:"percentage"`
	Weight     float64 `json:"weight"`
}

// NearbyEntries returns the chart entries for the given rep count at the
// target RPE and one half-step either side, with weights derived from the
// one-rep max and rounded to the increment.
func NearbyEntries(reps int, rpe, oneRepMax, increment float64) []NearbyEntry {
	var entries []NearbyEntry
	for _, candidate := range []float64{rpe - 0.5, rpe, rpe + 0.5} {
		pct, ok := RPEPercentage(reps, candidate)
		if !ok {
			continue
		}
		entries = append(entries, NearbyEntry{
			RPE:        candidate,
			Percentage: pct,
			Weight:     RoundToIncrement(oneRepMax*pct, increment),
		})
	}
	return entries
}
