package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ironlog/ironlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise
				(name, description, muscle_group, units, created_by, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		exercise.Name, exercise.Description, exercise.MuscleGroup,
		exercise.Units, exercise.CreatedBy, exercise.CreatedAt,
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

	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise.ID = id
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, muscle_group, units, created_by, created_at
			FROM exercise
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

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

// GetMap batch-fetches the exercises with the given ids, keyed by id.
// Ids without a matching row are simply absent from the result, never an
// error - callers resolving embedded references handle the missing case.
func (r *Repo) GetMap(ctx context.Context, ids []int) (_ map[int]Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.getmap")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	exercisesMap := make(map[int]Exercise)
	if len(ids) == 0 {
		return exercisesMap, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, muscle_group, units, created_by, created_at
			FROM exercise
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

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	for _, e := range exercises {
		exercisesMap[e.ID] = e
	}
	return exercisesMap, nil
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, muscle_group, units, created_by, created_at
			FROM exercise
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2exercises: %w", err)
	}
	return exercises, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var id int
		var name string
		var description string
		var muscleGroup string
		var units []string
		var createdBy int
		var createdAt time.Time
		if err := rows.Scan(&id, &name, &description, &muscleGroup, &units, &createdBy, &createdAt); err != nil {
			return nil, err
		}

		if units == nil {
			units = make([]string, 0)
		}

		exercises = append(exercises, Exercise{
			ID:          id,
			Name:        name,
			Description: description,
			MuscleGroup: muscleGroup,
			Units:       units,
			CreatedBy:   createdBy,
			CreatedAt:   createdAt,
		})
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}

	return exercises, nil
}
