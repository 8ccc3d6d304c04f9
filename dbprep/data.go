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
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ancientHacker/gensudoku/puzzle"
)

/*

data loading machinery

*/

// A dataFunction makes one self-contained change to the data.
// Each one runs in its own transaction.
type dataFunction func(ctx context.Context, tx pgx.Tx) error

// applyFunctions runs each function in sequence, committing
// after each one and stopping at the first failure.
func applyFunctions(databaseURL string, functions []dataFunction) error {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("Can't connect to database at %q: %v", databaseURL, err)
	}
	defer conn.Close(ctx)
	for _, function := range functions {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("Can't open a transaction against the database: %v", err)
		}
		if err := function(ctx, tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("Can't commit transaction against the database: %v", err)
		}
	}
	return nil
}

// DataUp loads the seed data.  Loading twice is harmless.
func DataUp(databaseURL string) error {
	return applyFunctions(databaseURL, []dataFunction{seedPuzzles})
}

// DataDown removes the seed data, leaving the schema in place.
func DataDown(databaseURL string) error {
	return applyFunctions(databaseURL, []dataFunction{deleteSeeds})
}

/*

seed data

*/

// seedNames lists the built-in catalog puzzles that get seeded,
// in catalog order.
var seedNames = puzzle.KnownPuzzles()

// seedSignatures holds the signature of each seeded puzzle,
// computed once at startup.
var seedSignatures []string

func init() {
	seedSignatures = make([]string, len(seedNames))
	for i, name := range seedNames {
		board, err := puzzle.KnownPuzzle(name)
		if err != nil {
			panic(fmt.Errorf("Can't load built-in puzzle %q: %v", name, err))
		}
		seedSignatures[i] = board.Signature()
	}
}

// seedPuzzles inserts the built-in catalog puzzles, so a fresh
// deployment has something to serve.  If any of them is already
// present the whole load is skipped, which makes repeat loads
// harmless.
func seedPuzzles(ctx context.Context, tx pgx.Tx) error {
	var count int
	row := tx.QueryRow(ctx, "SELECT COUNT(*) FROM puzzles WHERE signature = ANY($1)", seedSignatures)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("Couldn't look for seeded puzzles: %v", err)
	}
	if count > 0 {
		return nil
	}
	created := time.Now()
	for i, name := range seedNames {
		board, err := puzzle.KnownPuzzle(name)
		if err != nil {
			return fmt.Errorf("Can't load built-in puzzle %q: %v", name, err)
		}
		values := board.Values()
		stored := make([]int32, len(values))
		for j, value := range values {
			stored[j] = int32(value)
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO puzzles (signature, name, sideLength, valueList, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			seedSignatures[i], name, int32(board.SideLength()), stored, created)
		if err != nil {
			return fmt.Errorf("Couldn't insert puzzle %q: %v", name, err)
		}
	}
	return nil
}

// deleteSeeds removes the built-in catalog puzzles.  Solutions
// recorded for them go too, through the foreign key.
func deleteSeeds(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, "DELETE FROM puzzles WHERE signature = ANY($1)", seedSignatures); err != nil {
		return fmt.Errorf("Couldn't delete seeded puzzles: %v", err)
	}
	return nil
}
