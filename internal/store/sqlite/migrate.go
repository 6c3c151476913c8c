package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the schema of the in-memory database named by dsn up
// to date and returns the resulting schema version.
//
// The migrator closes its connection when done. A shared-cache memory
// database survives that only while another connection stays open, so the
// caller must already hold one.
func RunMigrations(dsn string) (uint, error) {
	if !IsMemoryDSN(dsn) {
		return 0, fmt.Errorf("%w: %q", ErrNotInMemory, dsn)
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return 0, fmt.Errorf("open migration connection to %q: %w", dsn, err)
	}
	defer conn.Close()

	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return 0, fmt.Errorf("attach migrate driver to shared cache: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("load embedded bill schema: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return 0, fmt.Errorf("prepare bill schema migration: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply bill schema: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read bill schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("bill schema left dirty at version %d", version)
	}
	return version, nil
}
