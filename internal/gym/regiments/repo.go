package regiments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ironlog/ironlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRegimentNotFound = errors.New("regiment not found")

// UpdateParams carries a partial regiment update. Nil fields keep the
// previous value.
type UpdateParams struct {
	Name             *string
	Description      *string
	WorkoutStructure []DayEntry
	Intensity        *string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, regiment Regiment) (_ *Regiment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.regiments.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	structureJson, err := json.Marshal(regiment.WorkoutStructure)
	if err != nil {
		return nil, fmt.Errorf("marshal workout structure: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO regiment
				(created_by, name, description, workout_structure, intensity, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		regiment.CreatedBy, regiment.Name, regiment.Description,
		structureJson, nullableString(regiment.Intensity), regiment.CreatedAt,
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

	span.SetAttributes(attribute.Int("regiment.id", id))

	regiment.ID = id
	return &regiment, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Regiment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.regiments.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, created_by, '', name, description, workout_structure, intensity, created_at
			FROM regiment
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

	regiments, err := rows2regiments(rows)
	if err != nil {
		return nil, err
	}

	if len(regiments) != 1 {
		return nil, ErrRegimentNotFound
	}

	return &regiments[0], nil
}

// List returns all regiments, newest first, with the creator's username
// denormalized. Nested workouts are not expanded, detail expansion happens
// per regiment on demand.
func (r *Repo) List(ctx context.Context) (_ []Regiment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.regiments.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT r.id, r.created_by, COALESCE(u.username, ''), r.name, r.description,
				r.workout_structure, r.intensity, r.created_at
			FROM regiment r
			LEFT JOIN users u ON u.id = r.created_by
			ORDER BY r.created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2regiments(rows)
}

func (r *Repo) Update(ctx context.Context, id int, params UpdateParams) (_ *Regiment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.regiments.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var structureJson []byte
	if params.WorkoutStructure != nil {
		structureJson, err = json.Marshal(params.WorkoutStructure)
		if err != nil {
			return nil, fmt.Errorf("marshal workout structure: %w", err)
		}
	}

	rows, err := r.db.Query(
		ctx,
		`UPDATE regiment SET
				name = COALESCE($2, name),
				description = COALESCE($3, description),
				workout_structure = COALESCE($4, workout_structure),
				intensity = COALESCE($5, intensity)
			WHERE id = $1
			RETURNING id, created_by, '', name, description, workout_structure, intensity, created_at;`,
		id, params.Name, params.Description, structureJson, params.Intensity,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	regiments, err := rows2regiments(rows)
	if err != nil {
		return nil, err
	}

	if len(regiments) != 1 {
		return nil, ErrRegimentNotFound
	}

	return &regiments[0], nil
}

func (r *Repo) Delete(ctx context.Context, id int) (_ *Regiment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.regiments.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM regiment
			WHERE id = $1
			RETURNING id, created_by, '', name, description, workout_structure, intensity, created_at;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	regiments, err := rows2regiments(rows)
	if err != nil {
		return nil, err
	}

	if len(regiments) != 1 {
		return nil, ErrRegimentNotFound
	}

	return &regiments[0], nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func rows2regiments(rows pgx.Rows) ([]Regiment, error) {
	var regiments []Regiment
	for rows.Next() {
		var id int
		var createdBy int
		var createdByName string
		var name string
		var description string
		var structureJson []byte
		var intensity *string
		var createdAt time.Time
		if err := rows.Scan(
			&id, &createdBy, &createdByName, &name, &description,
			&structureJson, &intensity, &createdAt,
		); err != nil {
			return nil, err
		}

		var entries []DayEntry
		if len(structureJson) > 0 {
			if err := json.Unmarshal(structureJson, &entries); err != nil {
				return nil, fmt.Errorf("unmarshal workout structure [regiment %d]: %w", id, err)
			}
		}
		if entries == nil {
			entries = make([]DayEntry, 0)
		}

		reg := Regiment{
			ID:               id,
			CreatedBy:        createdBy,
			CreatedByName:    createdByName,
			Name:             name,
			Description:      description,
			WorkoutStructure: entries,
			CreatedAt:        createdAt,
		}
		if intensity != nil {
			reg.Intensity = *intensity
		}
		regiments = append(regiments, reg)
	}

	if regiments == nil {
		regiments = make([]Regiment, 0)
	}

	return regiments, nil
}
