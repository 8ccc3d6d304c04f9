// gensudoku - an exhaustive-search Sudoku solver and server.
// Copyright (C) 2025-2026 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package dbprep

import (
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
)

// The schema ships inside the binary, so there is no migrations
// directory to locate at run time.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrateURL rewrites a postgres connection URL into the scheme
// that selects the pgx database driver inside the migrator.
func migrateURL(databaseURL string) string {
	if rest, ok := strings.CutPrefix(databaseURL, "postgres://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(databaseURL, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	return databaseURL
}

// newMigrator builds a migrator over the embedded migrations and
// the database at the given URL.
func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("Couldn't read embedded migrations: %v", err)
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, migrateURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("Couldn't open migrator against %q: %v", databaseURL, err)
	}
	return migrator, nil
}

// closeMigrator releases the migrator's connections; failures
// here can't hurt the schema, so they are only logged.
func closeMigrator(migrator *migrate.Migrate) {
	if sourceErr, databaseErr := migrator.Close(); sourceErr != nil || databaseErr != nil {
		log.Warnf("Error closing migrator: source %v, database %v", sourceErr, databaseErr)
	}
}

// SchemaUp migrates the database to the current schema version.
// Already being there is not an error.
func SchemaUp(databaseURL string) error {
	migrator, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator)
	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table creation had errors: %v", err)
	}
	return nil
}

// SchemaDown removes every migrated table from the database.
// An empty database is not an error.
func SchemaDown(databaseURL string) error {
	migrator, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator)
	if err := migrator.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table deletion had errors: %v", err)
	}
	return nil
}

// SchemaVersion returns the schema version of the database, 0
// when no migrations have been applied.
func SchemaVersion(databaseURL string) (uint, error) {
	migrator, err := newMigrator(databaseURL)
	if err != nil {
		return 0, err
	}
	defer closeMigrator(migrator)
	version, dirty, err := migrator.Version()
	if err == migrate.ErrNilVersion {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Couldn't read schema version: %v", err)
	}
	if dirty {
		return version, fmt.Errorf("Schema version %d is dirty; repair the database before continuing", version)
	}
	return version, nil
}
