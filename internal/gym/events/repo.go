package events

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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if event.Data == nil {
		event.Data = map[string]string{}
	}
	dataJson, err := json.Marshal(event.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal event data: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO gym_event (user_id, type, timestamp, data)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		event.UserID, event.Type, event.Timestamp, dataJson,
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

	span.SetAttributes(attribute.Int("event.id", id))

	event.ID = id
	return &event, nil
}

// ListForUser returns a user's most recent events, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID, limit int) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, type, timestamp, data
			FROM gym_event
			WHERE user_id = $1
			ORDER BY timestamp DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2events(rows)
}

func rows2events(rows pgx.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var id int
		var userID int
		var eventType string
		var timestamp time.Time
		var dataJson []byte
		if err := rows.Scan(&id, &userID, &eventType, &timestamp, &dataJson); err != nil {
			return nil, err
		}

		data := map[string]string{}
		if len(dataJson) > 0 {
			if err := json.Unmarshal(dataJson, &data); err != nil {
				return nil, fmt.Errorf("unmarshal event data [event %d]: %w", id, err)
			}
		}

		events = append(events, Event{
			ID:        id,
			UserID:    userID,
			Type:      eventType,
			Timestamp: timestamp,
			Data:      data,
		})
	}

	if events == nil {
		events = make([]Event, 0)
	}

	return events, nil
}
