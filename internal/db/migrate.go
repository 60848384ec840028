package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the database schema up to date using the embedded
// migration files.
func Migrate(params NewDBPoolParams) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance(
		"iofs", src,
		params.ConnString()+"?sslmode=disable",
	)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Errorf("close migrations source: %s", srcErr)
		}
		if dbErr != nil {
			log.Errorf("close migrations db conn: %s", dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debugln("db schema up to date")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	log.Infoln("db schema migrated")
	return nil
}
