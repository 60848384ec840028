package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserExists = errors.New("user already exists")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	createdAt := time.Now()
	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (username, created_at) VALUES ($1, $2) RETURNING id;`,
		username, createdAt,
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", id))

	return &User{
		ID:        id,
		Username:  username,
		CreatedAt: createdAt,
	}, nil
}

// Exists reports whether a user with the given id is stored.
func (r *Repo) Exists(ctx context.Context, id int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
