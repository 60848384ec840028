package workouts

import (
	"time"

	"github.com/ironlog/ironlog/internal/gym/exercises"
	"github.com/ironlog/ironlog/internal/gym/structure"
)

// Workout is one planned training session: an ordered structure of exercises
// with their planned sets, stored as an embedded JSON document.
type Workout struct {
	ID          int               `json:"workout_id"`
	Name        string            `json:"name"`
	CreatedBy   int               `json:"created_by"`
	Description string            `json:"description"`
	Structure   []structure.Entry `json:"structure"`
	Score       *int              `json:"score,omitempty"`
	Intensity   string            `json:"intensity,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// HydratedEntry is a structure entry with its exercise reference resolved.
// ExerciseDetails is deliberately not omitempty: a dangling exercise_id is
// rendered as an explicit null so consumers see the reference is broken.
type HydratedEntry struct {
	structure.Entry
	ExerciseDetails *exercises.Exercise `json:"exercise_details"`
}

// HydratedWorkout is a workout whose structure entries carry resolved
// exercise details.
type HydratedWorkout struct {
	Workout
	Structure []HydratedEntry `json:"structure"`
}

// Hydrate resolves the exercise references of the given entries against the
// provided details map. Missing ids get a nil ExerciseDetails, the entry
// itself is kept.
func Hydrate(entries []structure.Entry, details map[int]exercises.Exercise) []HydratedEntry {
	hydrated := make([]HydratedEntry, 0, len(entries))
	for _, e := range entries {
		he := HydratedEntry{Entry: e}
		if d, ok := details[e.ExerciseID]; ok {
			dCopy := d
			he.ExerciseDetails = &dCopy
		}
		hydrated = append(hydrated, he)
	}
	return hydrated
}

// HydrateWorkout wraps a workout with its hydrated structure.
func HydrateWorkout(w Workout, details map[int]exercises.Exercise) HydratedWorkout {
	return HydratedWorkout{
		Workout:   w,
		Structure: Hydrate(w.Structure, details),
	}
}
