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

// Package dbprep brings the backing stores to a usable state:
// it installs the database schema from embedded migrations,
// seeds the built-in puzzle catalog, and can tear everything
// back down for a clean slate.
package dbprep

import (
	"fmt"
)

// EnsureData migrates the database schema to the current version
// and, when the version actually moved, loads the seed data.  An
// up-to-date database passes through untouched, so every server
// start can call this.
func EnsureData(databaseURL string) error {
	inVersion, err := SchemaVersion(databaseURL)
	if err != nil {
		return fmt.Errorf("Couldn't get initial data schema version: %v", err)
	}
	if err := SchemaUp(databaseURL); err != nil {
		return fmt.Errorf("Couldn't install data schema: %v", err)
	}
	outVersion, err := SchemaVersion(databaseURL)
	if err != nil {
		return fmt.Errorf("Couldn't get final data schema version: %v", err)
	}
	if outVersion == 0 {
		return fmt.Errorf("Database schema still at version 0, shouldn't be.")
	}
	if inVersion != outVersion {
		if err := DataUp(databaseURL); err != nil {
			return fmt.Errorf("Couldn't load data: %v", err)
		}
	}
	return nil
}

// RemoveData tears the database back down to an empty schema.
func RemoveData(databaseURL string) error {
	version, err := SchemaVersion(databaseURL)
	if err != nil {
		return fmt.Errorf("Couldn't get initial data schema version: %v", err)
	}
	if version > 0 {
		if err := SchemaDown(databaseURL); err != nil {
			return fmt.Errorf("Couldn't remove tables: %v", err)
		}
	}
	return nil
}

// ReinitializeAll resets both stores: flushes the cache, drops
// the database schema, and rebuilds schema and seed data from
// scratch.
func ReinitializeAll(cacheURL, databaseURL string) error {
	if err := ClearCache(cacheURL); err != nil {
		return fmt.Errorf("Couldn't clear cache: %v", err)
	}
	if err := RemoveData(databaseURL); err != nil {
		return fmt.Errorf("Couldn't clear database: %v", err)
	}
	if err := EnsureData(databaseURL); err != nil {
		return fmt.Errorf("Couldn't load database: %v", err)
	}
	return nil
}
