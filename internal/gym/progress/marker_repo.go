package progress

import (
	"context"
	"errors"

	"github.com/ironlog/ironlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNoCurrentRegiment = errors.New("no current regiment")

// MarkerRepo stores the explicit current-regiment selection per user, a
// single row keyed by user id.
type MarkerRepo struct {
	db *pgxpool.Pool
}

func NewMarkerRepo(db *pgxpool.Pool) *MarkerRepo {
	return &MarkerRepo{
		db: db,
	}
}

func (r *MarkerRepo) Set(ctx context.Context, userID, regimentID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.currentregiment.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("regiment.id", regimentID),
	)

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_current_regiment (user_id, regiment_id, updated_at)
				VALUES ($1, $2, now())
			ON CONFLICT (user_id)
				DO UPDATE SET regiment_id = $2, updated_at = now();`,
		userID, regimentID,
	)
	return err
}

func (r *MarkerRepo) Get(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.currentregiment.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var regimentID int
	err = r.db.QueryRow(
		ctx,
		`SELECT regiment_id FROM user_current_regiment WHERE user_id = $1;`,
		userID,
	).Scan(&regimentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNoCurrentRegiment
		}
		return 0, err
	}
	return regimentID, nil
}
