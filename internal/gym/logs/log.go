package logs

import (
	"time"

	"github.com/ironlog/ironlog/internal/gym/structure"
)

// WorkoutLog records what a user actually performed on a given date,
// optionally tied to a regiment day. Logs are the sole source of truth for
// regiment completion, there is no completed flag anywhere else.
type WorkoutLog struct {
	ID               int               `json:"workout_log_id"`
	UserID           int               `json:"user_id"`
	RegimentID       *int              `json:"regiment_id,omitempty"`
	RegimentDayIndex *int              `json:"regiment_day_index,omitempty"`
	LogDate          time.Time         `json:"log_date"`
	PlannedWorkoutID int               `json:"planned_workout_id"`
	ActualWorkout    []structure.Entry `json:"actual_workout"`
	Score            int               `json:"score"`
	CreatedAt        time.Time         `json:"created_at"`
}
