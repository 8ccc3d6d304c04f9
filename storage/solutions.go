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

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/gensudoku/puzzle"
)

/*

solution info

*/

// A SolutionInfo describes one stored solution: the solved
// values for the starting position with the given signature, and
// what the search cost.
type SolutionInfo struct {
	Signature string        `json:"signature"`
	Values    []int         `json:"values"`
	Steps     int           `json:"steps"`
	Elapsed   time.Duration `json:"elapsed"`
	Created   time.Time     `json:"created"`
}

// Board reconstructs the solved board described by the info.
// The side length comes from the value count, which is always a
// fourth power for stored boards.
func (info *SolutionInfo) Board() (puzzle.Board, error) {
	return puzzle.New(info.Values)
}

/*

solution entries

*/

// A solutionEntry is the stored form of one solution, keyed by
// the signature of the puzzle it solves.  Elapsed time is kept
// in milliseconds so the database column can be a plain bigint.
type solutionEntry struct {
	Signature string
	Values    []int32
	Steps     int64
	ElapsedMS int64
	Created   time.Time
}

// key returns the cache key for the entry.
func (entry *solutionEntry) key() string {
	return "SOL:" + entry.Signature
}

// info expands the entry into its client-facing form.
func (entry *solutionEntry) info() *SolutionInfo {
	values := make([]int, len(entry.Values))
	for i, value := range entry.Values {
		values[i] = int(value)
	}
	return &SolutionInfo{
		Signature: entry.Signature,
		Values:    values,
		Steps:     int(entry.Steps),
		Elapsed:   time.Duration(entry.ElapsedMS) * time.Millisecond,
		Created:   entry.Created,
	}
}

// cacheLoad fills the entry from the cache, returning whether it
// was found there.  Panics on cache failure.
func (entry *solutionEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", entry.key()))
		if err == redis.ErrNil {
			bytes, err = nil, nil
		} else if err != nil {
			err = fmt.Errorf("Cache failure reading solution %q: %v", entry.Signature, err)
		}
		return
	}
	rdExecute(body)
	if bytes == nil {
		return false
	}
	saved := entry.Signature
	if err := json.Unmarshal(bytes, entry); err != nil {
		panic(fmt.Errorf("Failed to unmarshal cached solution %q: %v", saved, err))
	}
	if entry.Signature != saved {
		panic(fmt.Errorf("Cached solution %q has signature %q", saved, entry.Signature))
	}
	return true
}

// cacheInsert writes the entry through to the cache.  Panics on
// cache failure.
func (entry *solutionEntry) cacheInsert() {
	bytes, err := json.Marshal(entry)
	if err != nil {
		panic(fmt.Errorf("Failed to marshal solution %q: %v", entry.Signature, err))
	}
	body := func(tx redis.Conn) (err error) {
		if _, err = tx.Do("SET", entry.key(), bytes); err != nil {
			err = fmt.Errorf("Cache failure writing solution %q: %v", entry.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad fills the entry from the database, returning
// whether it was found there.  Panics on database failure.
func (entry *solutionEntry) databaseLoad(ctx context.Context) bool {
	found := true
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT valueList, steps, elapsedMs, created FROM solutions WHERE signature = $1",
			entry.Signature)
		err := row.Scan(&entry.Values, &entry.Steps, &entry.ElapsedMS, &entry.Created)
		if err == pgx.ErrNoRows {
			found = false
			return nil
		}
		if err != nil {
			return fmt.Errorf("Database failure reading solution %q: %v", entry.Signature, err)
		}
		return nil
	}
	pgExecute(ctx, body)
	return found
}

// databaseInsert writes the entry to the database.  A solution
// found again for the same puzzle leaves the original row alone:
// the search is deterministic, so the values can't differ.
// Panics on database failure.
func (entry *solutionEntry) databaseInsert(ctx context.Context) {
	body := func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO solutions (signature, valueList, steps, elapsedMs, created) "+
				"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (signature) DO NOTHING",
			entry.Signature, entry.Values, entry.Steps, entry.ElapsedMS, entry.Created)
		if err != nil {
			return fmt.Errorf("Database failure writing solution %q: %v", entry.Signature, err)
		}
		return nil
	}
	pgExecute(ctx, body)
}

/*

operations

*/

// SaveSolution records the solution of the puzzle with the given
// signature in both the database and the cache.
func SaveSolution(ctx context.Context, signature string, solved puzzle.Board, steps int, elapsed time.Duration) (err error) {
	defer guard(&err)
	values := solved.Values()
	stored := make([]int32, len(values))
	for i, value := range values {
		stored[i] = int32(value)
	}
	entry := &solutionEntry{
		Signature: signature,
		Values:    stored,
		Steps:     int64(steps),
		ElapsedMS: elapsed.Milliseconds(),
		Created:   time.Now(),
	}
	entry.databaseInsert(ctx)
	entry.cacheInsert()
	log.WithFields(log.Fields{
		"signature": entry.Signature,
		"steps":     entry.Steps,
	}).Info("Saved solution")
	return nil
}

// LoadSolution finds the stored solution for the puzzle with the
// given signature, checking the cache first and falling back to
// the database.  A database hit is written back to the cache.
// Returns nil, with no error, when the puzzle has no stored
// solution.
func LoadSolution(ctx context.Context, signature string) (info *SolutionInfo, err error) {
	defer guard(&err)
	entry := &solutionEntry{Signature: signature}
	if entry.cacheLoad() {
		return entry.info(), nil
	}
	if !entry.databaseLoad(ctx) {
		return nil, nil
	}
	entry.cacheInsert()
	return entry.info(), nil
}
