package analytics

import "strings"

// LiftCategory is one of the lift classes scored for fatigue.
type LiftCategory string

// Tracked lift categories. LiftNone marks an exercise outside the tracked
// classes: it still contributes to volume (by raw name) but never to fatigue.
const (
	LiftSquat    LiftCategory = "squat"
	LiftBench    LiftCategory = "bench"
	LiftDeadlift LiftCategory = "deadlift"
	LiftNone     LiftCategory = "none"
)

// liftCategories is the fixed presentation order for active lift types.
var liftCategories = []LiftCategory{LiftSquat, LiftBench, LiftDeadlift}

// Classify maps a free-text exercise name to a tracked lift category using
// case-insensitive substring matching. Deadlift variants are tested before
// squat so that names like "Deadlift Squat Combo" land on deadlift; bench is
// tested last. The first match wins.
func Classify(exerciseName string) LiftCategory {
	name := strings.ToLower(exerciseName)

	switch {
	case strings.Contains(name, "deadlift"), strings.Contains(name, "dead lift"):
		return LiftDeadlift
	case strings.Contains(name, "squat"):
		return LiftSquat
	case strings.Contains(name, "bench"):
		return LiftBench
	default:
		return LiftNone
	}
}
