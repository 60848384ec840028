package logs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ironlog/ironlog/internal/gym/structure"
	"github.com/ironlog/ironlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutLogNotFound = errors.New("workout log not found")

// UpdateParams carries a correction of an existing log. Nil fields keep the
// previous value.
type UpdateParams struct {
	LogDate       *time.Time
	ActualWorkout []structure.Entry
	Score         *int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workoutLog WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	actualWorkoutJson, err := json.Marshal(workoutLog.ActualWorkout)
	if err != nil {
		return nil, fmt.Errorf("marshal actual workout: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_log
				(user_id, regiment_id, regiment_day_index, log_date,
				 planned_workout_id, actual_workout, score, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		workoutLog.UserID, workoutLog.RegimentID, workoutLog.RegimentDayIndex,
		workoutLog.LogDate, workoutLog.PlannedWorkoutID,
		actualWorkoutJson, workoutLog.Score, workoutLog.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workoutlog.id", id))

	workoutLog.ID = id
	return &workoutLog, nil
}

// ListForUser returns one page of a user's logs, newest first, plus the
// total count of that user's logs.
func (r *Repo) ListForUser(ctx context.Context, userID, limit, offset int) (_ []WorkoutLog, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("limit", limit),
		attribute.Int("offset", offset),
	)

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_log WHERE user_id = $1;`,
		userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, regiment_id, regiment_day_index, log_date,
				planned_workout_id, actual_workout, score, created_at
			FROM workout_log
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows: %w", err)
	}

	workoutLogs, err := rows2workoutLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return workoutLogs, total, nil
}

// ListAllForUser returns all of a user's logs, oldest first. Used when
// reconciling regiment progress, where every log matters.
func (r *Repo) ListAllForUser(ctx context.Context, userID int) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.listallforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, regiment_id, regiment_day_index, log_date,
				planned_workout_id, actual_workout, score, created_at
			FROM workout_log
			WHERE user_id = $1
			ORDER BY created_at ASC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2workoutLogs(rows)
}

// Update corrects an existing log, merging only the supplied fields.
func (r *Repo) Update(ctx context.Context, id int, params UpdateParams) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var actualWorkoutJson []byte
	if params.ActualWorkout != nil {
		actualWorkoutJson, err = json.Marshal(params.ActualWorkout)
		if err != nil {
			return nil, fmt.Errorf("marshal actual workout: %w", err)
		}
	}

	rows, err := r.db.Query(
		ctx,
		`UPDATE workout_log SET
				log_date = COALESCE($2, log_date),
				actual_workout = COALESCE($3, actual_workout),
				score = COALESCE($4, score)
			WHERE id = $1
			RETURNING id, user_id, regiment_id, regiment_day_index, log_date,
				planned_workout_id, actual_workout, score, created_at;`,
		id, params.LogDate, actualWorkoutJson, params.Score,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workoutLogs, err := rows2workoutLogs(rows)
	if err != nil {
		return nil, err
	}

	if len(workoutLogs) != 1 {
		return nil, ErrWorkoutLogNotFound
	}

	return &workoutLogs[0], nil
}

func rows2workoutLogs(rows pgx.Rows) ([]WorkoutLog, error) {
	var workoutLogs []WorkoutLog
	for rows.Next() {
		var id int
		var userID int
		var regimentID *int
		var regimentDayIndex *int
		var logDate time.Time
		var plannedWorkoutID int
		var actualWorkoutJson []byte
		var score int
		var createdAt time.Time
		if err := rows.Scan(
			&id, &userID, &regimentID, &regimentDayIndex, &logDate,
			&plannedWorkoutID, &actualWorkoutJson, &score, &createdAt,
		); err != nil {
			return nil, err
		}

		var entries []structure.Entry
		if len(actualWorkoutJson) > 0 {
			if err := json.Unmarshal(actualWorkoutJson, &entries); err != nil {
				return nil, fmt.Errorf("unmarshal actual workout [log %d]: %w", id, err)
			}
		}
		if entries == nil {
			entries = make([]structure.Entry, 0)
		}

		workoutLogs = append(workoutLogs, WorkoutLog{
			ID:               id,
			UserID:           userID,
			RegimentID:       regimentID,
			RegimentDayIndex: regimentDayIndex,
			LogDate:          logDate,
			PlannedWorkoutID: plannedWorkoutID,
			ActualWorkout:    entries,
			Score:            score,
			CreatedAt:        createdAt,
		})
	}

	if workoutLogs == nil {
		workoutLogs = make([]WorkoutLog, 0)
	}

	return workoutLogs, nil
}
