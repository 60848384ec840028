package exercises

import "time"

// Exercise is a named movement template with a declared set of measurement
// units (reps/weight/time/laps) that are legal for its sets.
type Exercise struct {
	ID          int       `json:"exercise_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MuscleGroup string    `json:"muscle_group"`
	Units       []string  `json:"units"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
