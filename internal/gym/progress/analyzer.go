package progress

import (
	"time"

	"github.com/ironlog/ironlog/internal/gym/logs"
	"github.com/ironlog/ironlog/internal/gym/regiments"
)

// CurrentKind says how the current regiment was resolved: explicitly via the
// user's marker, inferred from log history, or not at all.
type CurrentKind string

const (
	CurrentExplicit CurrentKind = "explicit"
	CurrentInferred CurrentKind = "inferred"
	CurrentNone     CurrentKind = "none"
)

const recommendedCap = 5

// RegimentProgress is a regiment together with its completion state derived
// from the user's logs.
type RegimentProgress struct {
	Regiment            regiments.Regiment `json:"regiment"`
	CompletedWorkoutIDs []int              `json:"completed_workout_ids"`
	Complete            bool               `json:"complete"`
}

// TodayStatus says what is due within the current regiment today.
type TodayStatus struct {
	CompletedForToday bool   `json:"completed_for_today"`
	NextWorkoutID     int    `json:"next_workout_id,omitempty"`
	NextDayName       string `json:"next_day_name,omitempty"`
	NextDayIndex      int    `json:"next_day_index"`
}

// Overview is the full progress picture for one user: the current regiment,
// the incomplete/completed buckets, up to five recommended regiments and
// today's status within the current one.
type Overview struct {
	UserID      int                  `json:"user_id"`
	CurrentKind CurrentKind          `json:"current_kind"`
	Current     *RegimentProgress    `json:"current,omitempty"`
	Incomplete  []RegimentProgress   `json:"incomplete"`
	Completed   []RegimentProgress   `json:"completed"`
	Recommended []regiments.Regiment `json:"recommended"`
	Today       *TodayStatus         `json:"today,omitempty"`
}

// CompletedWorkoutIDs collects the planned workout ids logged against the
// given regiment, in order of first appearance.
func CompletedWorkoutIDs(regimentID int, workoutLogs []logs.WorkoutLog) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, wl := range workoutLogs {
		if wl.RegimentID == nil || *wl.RegimentID != regimentID {
			continue
		}
		if seen[wl.PlannedWorkoutID] {
			continue
		}
		seen[wl.PlannedWorkoutID] = true
		ids = append(ids, wl.PlannedWorkoutID)
	}
	if ids == nil {
		ids = make([]int, 0)
	}
	return ids
}

// IsComplete reports whether every workout of the regiment's day sequence
// appears among the completed ids. An empty day sequence is never complete,
// and a dangling workout reference keeps the regiment incomplete forever, it
// can never be logged against.
func IsComplete(regiment regiments.Regiment, completedIDs []int) bool {
	completed := make(map[int]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}
	if len(regiment.WorkoutStructure) == 0 {
		return false
	}
	for _, day := range regiment.WorkoutStructure {
		if !completed[day.WorkoutID] {
			return false
		}
	}
	return true
}

// InferCurrent picks the fallback current regiment: the first regiment in
// list order with at least one log that is not yet complete. Returns 0 when
// no regiment qualifies.
func InferCurrent(regs []regiments.Regiment, workoutLogs []logs.WorkoutLog) int {
	for _, reg := range regs {
		completed := CompletedWorkoutIDs(reg.ID, workoutLogs)
		if len(completed) == 0 {
			continue
		}
		if !IsComplete(reg, completed) {
			return reg.ID
		}
	}
	return 0
}

// NextDue finds the first day of the regiment whose workout has not been
// completed yet. Returns the day index or -1 when every day is done.
func NextDue(regiment regiments.Regiment, completedIDs []int) int {
	completed := make(map[int]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}
	for i, day := range regiment.WorkoutStructure {
		if !completed[day.WorkoutID] {
			return i
		}
	}
	return -1
}

// CompletedForToday reports whether a log for the given regiment exists on
// today's calendar date.
func CompletedForToday(regimentID int, workoutLogs []logs.WorkoutLog, now time.Time) bool {
	for _, wl := range workoutLogs {
		if wl.RegimentID == nil || *wl.RegimentID != regimentID {
			continue
		}
		if sameDay(wl.LogDate, now) {
			return true
		}
	}
	return false
}

// sameDay compares calendar dates as stored. log_date round-trips through a
// DATE column as midnight UTC, converting it into the server zone would shift
// it to the previous day anywhere west of UTC.
func sameDay(a, b time.Time) bool {
	aY, aM, aD := a.Date()
	bY, bM, bD := b.Date()
	return aY == bY && aM == bM && aD == bD
}

// BuildOverview computes the whole progress picture from the user's
// regiments, logs and the optional explicit current-regiment marker.
// markerRegimentID == 0 means no marker is set. The regs slice is expected
// in listing order, newest first.
func BuildOverview(
	userID int,
	regs []regiments.Regiment,
	workoutLogs []logs.WorkoutLog,
	markerRegimentID int,
	now time.Time,
) Overview {
	overview := Overview{
		UserID:      userID,
		CurrentKind: CurrentNone,
		Incomplete:  make([]RegimentProgress, 0),
		Completed:   make([]RegimentProgress, 0),
		Recommended: make([]regiments.Regiment, 0),
	}

	currentID := 0
	if markerRegimentID != 0 && regimentKnown(regs, markerRegimentID) {
		currentID = markerRegimentID
		overview.CurrentKind = CurrentExplicit
	} else if inferredID := InferCurrent(regs, workoutLogs); inferredID != 0 {
		currentID = inferredID
		overview.CurrentKind = CurrentInferred
	}

	for _, reg := range regs {
		completed := CompletedWorkoutIDs(reg.ID, workoutLogs)
		progress := RegimentProgress{
			Regiment:            reg,
			CompletedWorkoutIDs: completed,
			Complete:            IsComplete(reg, completed),
		}

		switch {
		case reg.ID == currentID:
			regProgress := progress
			overview.Current = &regProgress
		case progress.Complete:
			overview.Completed = append(overview.Completed, progress)
		case len(completed) > 0:
			overview.Incomplete = append(overview.Incomplete, progress)
		case reg.CreatedBy != userID && len(overview.Recommended) < recommendedCap:
			overview.Recommended = append(overview.Recommended, reg)
		}
	}

	if overview.Current != nil {
		today := TodayStatus{NextDayIndex: -1}
		if CompletedForToday(currentID, workoutLogs, now) {
			today.CompletedForToday = true
		} else if dayIndex := NextDue(overview.Current.Regiment, overview.Current.CompletedWorkoutIDs); dayIndex >= 0 {
			day := overview.Current.Regiment.WorkoutStructure[dayIndex]
			today.NextWorkoutID = day.WorkoutID
			today.NextDayName = day.Name
			today.NextDayIndex = dayIndex
		}
		overview.Today = &today
	}

	return overview
}

func regimentKnown(regs []regiments.Regiment, id int) bool {
	for _, reg := range regs {
		if reg.ID == id {
			return true
		}
	}
	return false
}
