package regiments

import (
	"errors"
	"fmt"
	"time"

	"github.com/ironlog/ironlog/internal/gym/workouts"
)

var ErrInvalidWorkoutStructure = errors.New("invalid workout structure")

// DayEntry maps one day of a regiment to a planned workout.
type DayEntry struct {
	Name      string `json:"name"`
	WorkoutID int    `json:"workout_id"`
}

// Regiment is an ordered multi-day plan, each day referencing a workout. The
// day sequence is stored as an embedded JSON document.
type Regiment struct {
	ID               int        `json:"regiment_id"`
	CreatedBy        int        `json:"created_by"`
	CreatedByName    string     `json:"created_by_name,omitempty"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	WorkoutStructure []DayEntry `json:"workout_structure"`
	Intensity        string     `json:"intensity,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// HydratedDayEntry is a day entry with its workout reference resolved.
// WorkoutDetails stays an explicit null when the referenced workout no
// longer exists.
type HydratedDayEntry struct {
	DayEntry
	WorkoutDetails *workouts.Workout `json:"workout_details"`
}

type HydratedRegiment struct {
	Regiment
	WorkoutStructure []HydratedDayEntry `json:"workout_structure"`
}

// ValidateWorkoutStructure checks a regiment's day sequence: every day needs
// a name and a workout reference, and a workout can appear on one day only.
func ValidateWorkoutStructure(entries []DayEntry) error {
	if entries == nil {
		return fmt.Errorf("%w: not a sequence", ErrInvalidWorkoutStructure)
	}
	seen := make(map[int]bool, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("%w: entry %d: day name missing", ErrInvalidWorkoutStructure, i)
		}
		if e.WorkoutID == 0 {
			return fmt.Errorf("%w: entry %d: workout_id missing", ErrInvalidWorkoutStructure, i)
		}
		if seen[e.WorkoutID] {
			return fmt.Errorf("%w: entry %d: duplicate workout_id %d", ErrInvalidWorkoutStructure, i, e.WorkoutID)
		}
		seen[e.WorkoutID] = true
	}
	return nil
}

// WorkoutIDs returns the distinct workout ids referenced by the day entries,
// in order of first appearance.
func WorkoutIDs(entries []DayEntry) []int {
	seen := make(map[int]bool)
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		if seen[e.WorkoutID] {
			continue
		}
		seen[e.WorkoutID] = true
		ids = append(ids, e.WorkoutID)
	}
	return ids
}

// Hydrate resolves workout references against the provided details map,
// keeping entries whose workout is gone.
func Hydrate(entries []DayEntry, details map[int]workouts.Workout) []HydratedDayEntry {
	hydrated := make([]HydratedDayEntry, 0, len(entries))
	for _, e := range entries {
		he := HydratedDayEntry{DayEntry: e}
		if d, ok := details[e.WorkoutID]; ok {
			dCopy := d
			he.WorkoutDetails = &dCopy
		}
		hydrated = append(hydrated, he)
	}
	return hydrated
}

func HydrateRegiment(r Regiment, details map[int]workouts.Workout) HydratedRegiment {
	return HydratedRegiment{
		Regiment:         r,
		WorkoutStructure: Hydrate(r.WorkoutStructure, details),
	}
}
