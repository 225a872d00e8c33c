package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var embedded embed.FS

// sourceFor returns a migration source: the directory at path, or the
// migrations compiled into the binary when path is empty.
func sourceFor(path string) (string, source.Driver, error) {
	if path != "" {
		return fmt.Sprintf("file://%s", path), nil, nil
	}
	d, err := iofs.New(embedded, "migrations")
	if err != nil {
		return "", nil, err
	}
	return "iofs", d, nil
}

// RunMigrationsWithDB applies all up migrations at migrationsPath to db.
// An empty migrationsPath uses the embedded set.
func RunMigrationsWithDB(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	url, src, err := sourceFor(migrationsPath)
	if err != nil {
		return err
	}
	var m *migrate.Migrate
	if src != nil {
		m, err = migrate.NewWithInstance(url, src, "sqlite3", driver)
	} else {
		m, err = migrate.NewWithDatabaseInstance(url, "sqlite3", driver)
	}
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	// Closing m would close db, which the caller owns.

	return up(m)
}

func up(m *migrate.Migrate) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
