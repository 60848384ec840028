package structure

// Set is one planned or performed instance of an exercise. All measurement
// fields are optional pointers so that "absent" can be told apart from zero.
type Set struct {
	Reps   *float64 `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Time   *float64 `json:"time,omitempty"`
	Laps   *float64 `json:"laps,omitempty"`
}

// Entry is one exercise inside a workout structure: the exercise reference,
// the measurement units used, and the planned (or performed) sets keyed by
// an arbitrary set key ("1", "2", ...).
//
// The same shape is used for a workout's planned structure and for a
// workout log's actual performance.
type Entry struct {
	ExerciseID int            `json:"exercise_id"`
	WeightUnit string         `json:"weight_unit,omitempty"`
	TimeUnit   string         `json:"time_unit,omitempty"`
	Sets       map[string]Set `json:"sets"`
}

const (
	WeightUnitKilos  = "kg"
	WeightUnitPounds = "lbs"

	TimeUnitSeconds = "seconds"
	TimeUnitMinutes = "minutes"
)

// Units an exercise can declare as legal for its sets.
const (
	UnitReps   = "reps"
	UnitWeight = "weight"
	UnitTime   = "time"
	UnitLaps   = "laps"
)

func KnownUnit(unit string) bool {
	switch unit {
	case UnitReps, UnitWeight, UnitTime, UnitLaps:
		return true
	default:
		return false
	}
}

// ExerciseIDs returns the distinct exercise ids referenced by the entries,
// in order of first appearance.
func ExerciseIDs(entries []Entry) []int {
	seen := make(map[int]bool)
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		if seen[e.ExerciseID] {
			continue
		}
		seen[e.ExerciseID] = true
		ids = append(ids, e.ExerciseID)
	}
	return ids
}
