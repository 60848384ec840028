package structure

import (
	"errors"
	"fmt"
)

// ErrInvalidStructure is wrapped by every validation failure, so callers can
// map any shape violation to a client error with errors.Is.
var ErrInvalidStructure = errors.New("invalid workout structure")

// Validate checks a workout structure (or a workout log's actual performance,
// both share the shape) and returns a descriptive error on the first
// violation. Nothing should be persisted when an error is returned.
//
// Rules:
//   - the structure itself must be a non-null array
//   - every entry needs a non-zero exercise_id and a non-null sets object
//   - every set needs at least one of reps, weight or time
//     (laps alone does not make a set valid, it is an optional extra)
//   - weight_unit, when given, must be "kg" or "lbs"
//   - time_unit, when given, must be "seconds" or "minutes"
func Validate(entries []Entry) error {
	if entries == nil {
		return fmt.Errorf("%w: structure must be a non-null array", ErrInvalidStructure)
	}

	for i, entry := range entries {
		if entry.ExerciseID == 0 {
			return fmt.Errorf("%w: entry %d: exercise_id missing", ErrInvalidStructure, i)
		}

		if entry.Sets == nil {
			return fmt.Errorf("%w: entry %d: sets must be a non-null object", ErrInvalidStructure, i)
		}

		for setKey, set := range entry.Sets {
			if set.Reps == nil && set.Weight == nil && set.Time == nil {
				return fmt.Errorf(
					"%w: entry %d, set %q: at least one of reps, weight or time required",
					ErrInvalidStructure, i, setKey,
				)
			}
		}

		switch entry.WeightUnit {
		case "", WeightUnitKilos, WeightUnitPounds:
		default:
			return fmt.Errorf(
				"%w: entry %d: weight_unit must be %q or %q",
				ErrInvalidStructure, i, WeightUnitKilos, WeightUnitPounds,
			)
		}

		switch entry.TimeUnit {
		case "", TimeUnitSeconds, TimeUnitMinutes:
		default:
			return fmt.Errorf(
				"%w: entry %d: time_unit must be %q or %q",
				ErrInvalidStructure, i, TimeUnitSeconds, TimeUnitMinutes,
			)
		}
	}

	return nil
}
