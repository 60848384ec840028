package workouts

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

var ErrWorkoutNotFound = errors.New("workout not found")

// UpdateParams carries a partial workout update. Nil fields keep the
// previous value.
type UpdateParams struct {
	Name        *string
	Description *string
	Structure   []structure.Entry
	Score       *int
	Intensity   *string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	structureJson, err := json.Marshal(workout.Structure)
	if err != nil {
		return nil, fmt.Errorf("marshal structure: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout
				(name, created_by, description, structure, score, intensity, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		workout.Name, workout.CreatedBy, workout.Description,
		structureJson, workout.Score, nullableString(workout.Intensity), workout.CreatedAt,
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

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, created_by, description, structure, score, intensity, created_at
			FROM workout
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

// GetMap batch-fetches the workouts with the given ids, keyed by id. Missing
// ids are absent from the result, never an error.
func (r *Repo) GetMap(ctx context.Context, ids []int) (_ map[int]Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getmap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	workoutsMap := make(map[int]Workout)
	if len(ids) == 0 {
		return workoutsMap, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, created_by, description, structure, score, intensity, created_at
			FROM workout
			WHERE id = ANY($1);`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	for _, w := range workouts {
		workoutsMap[w.ID] = w
	}
	return workoutsMap, nil
}

func (r *Repo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, created_by, description, structure, score, intensity, created_at
			FROM workout
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2workouts(rows)
}

// Update merges only the supplied fields into the stored row, absent fields
// keep their previous values.
func (r *Repo) Update(ctx context.Context, id int, params UpdateParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var structureJson []byte
	if params.Structure != nil {
		structureJson, err = json.Marshal(params.Structure)
		if err != nil {
			return nil, fmt.Errorf("marshal structure: %w", err)
		}
	}

	rows, err := r.db.Query(
		ctx,
		`UPDATE workout SET
				name = COALESCE($2, name),
				description = COALESCE($3, description),
				structure = COALESCE($4, structure),
				score = COALESCE($5, score),
				intensity = COALESCE($6, intensity)
			WHERE id = $1
			RETURNING id, name, created_by, description, structure, score, intensity, created_at;`,
		id, params.Name, params.Description, structureJson, params.Score, params.Intensity,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

// Delete removes the workout and returns the deleted row. Regiments that
// reference it keep their dangling workout_id, resolved to null details on
// read.
func (r *Repo) Delete(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM workout
			WHERE id = $1
			RETURNING id, name, created_by, description, structure, score, intensity, created_at;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var id int
		var name string
		var createdBy int
		var description string
		var structureJson []byte
		var score *int
		var intensity *string
		var createdAt time.Time
		if err := rows.Scan(
			&id, &name, &createdBy, &description,
			&structureJson, &score, &intensity, &createdAt,
		); err != nil {
			return nil, err
		}

		var entries []structure.Entry
		if len(structureJson) > 0 {
			if err := json.Unmarshal(structureJson, &entries); err != nil {
				return nil, fmt.Errorf("unmarshal structure [workout %d]: %w", id, err)
			}
		}
		if entries == nil {
			entries = make([]structure.Entry, 0)
		}

		w := Workout{
			ID:          id,
			Name:        name,
			CreatedBy:   createdBy,
			Description: description,
			Structure:   entries,
			Score:       score,
			CreatedAt:   createdAt,
		}
		if intensity != nil {
			w.Intensity = *intensity
		}
		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}

	return workouts, nil
}
