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

puzzle info

*/

// A PuzzleInfo is the client-facing description of one stored
// puzzle.
type PuzzleInfo struct {
	Signature  string    `json:"signature"`
	Name       string    `json:"name,omitempty"`
	SideLength int       `json:"sideLength"`
	Givens     int       `json:"givens"`
	Values     []int     `json:"values"`
	Created    time.Time `json:"created"`
}

// Board reconstructs the puzzle board described by the info.
func (info *PuzzleInfo) Board() (puzzle.Board, error) {
	return puzzle.NewSized(info.SideLength, info.Values)
}

// ByName sorts puzzle infos by name, unnamed puzzles last, with
// signature breaking ties.
type ByName []*PuzzleInfo

func (infos ByName) Len() int      { return len(infos) }
func (infos ByName) Swap(i, j int) { infos[i], infos[j] = infos[j], infos[i] }
func (infos ByName) Less(i, j int) bool {
	left, right := infos[i].Name, infos[j].Name
	if left != right {
		if left == "" {
			return false
		}
		if right == "" {
			return true
		}
		return left < right
	}
	return infos[i].Signature < infos[j].Signature
}

// ByCreation sorts puzzle infos by creation time, newest first.
type ByCreation []*PuzzleInfo

func (infos ByCreation) Len() int      { return len(infos) }
func (infos ByCreation) Swap(i, j int) { infos[i], infos[j] = infos[j], infos[i] }
func (infos ByCreation) Less(i, j int) bool {
	if !infos[i].Created.Equal(infos[j].Created) {
		return infos[i].Created.After(infos[j].Created)
	}
	return infos[i].Signature < infos[j].Signature
}

// countZeroes computes the number of empty squares in a stored
// value list.
func countZeroes(values []int32) (count int) {
	for _, value := range values {
		if value == 0 {
			count++
		}
	}
	return
}

/*

puzzle entries

*/

// A puzzleEntry is the stored form of one starting position.  It
// is JSON-serializable, so the same shape goes into the cache
// and comes back out of the database.  Values are 4-byte ints
// because that's how the database column is declared.
type puzzleEntry struct {
	Signature  string
	Name       string
	SideLength int32
	Values     []int32
	Created    time.Time
}

// key returns the cache key for the entry.
func (entry *puzzleEntry) key() string {
	return "PUZ:" + entry.Signature
}

// info expands the entry into its client-facing form.
func (entry *puzzleEntry) info() *PuzzleInfo {
	values := make([]int, len(entry.Values))
	for i, value := range entry.Values {
		values[i] = int(value)
	}
	return &PuzzleInfo{
		Signature:  entry.Signature,
		Name:       entry.Name,
		SideLength: int(entry.SideLength),
		Givens:     len(entry.Values) - countZeroes(entry.Values),
		Values:     values,
		Created:    entry.Created,
	}
}

// cacheLoad fills the entry from the cache, returning whether it
// was found there.  Panics on cache failure.
func (entry *puzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", entry.key()))
		if err == redis.ErrNil {
			bytes, err = nil, nil
		} else if err != nil {
			err = fmt.Errorf("Cache failure reading puzzle %q: %v", entry.Signature, err)
		}
		return
	}
	rdExecute(body)
	if bytes == nil {
		return false
	}
	saved := entry.Signature
	if err := json.Unmarshal(bytes, entry); err != nil {
		panic(fmt.Errorf("Failed to unmarshal cached puzzle %q: %v", saved, err))
	}
	if entry.Signature != saved {
		panic(fmt.Errorf("Cached puzzle %q has signature %q", saved, entry.Signature))
	}
	return true
}

// cacheInsert writes the entry through to the cache.  Panics on
// cache failure.
func (entry *puzzleEntry) cacheInsert() {
	bytes, err := json.Marshal(entry)
	if err != nil {
		panic(fmt.Errorf("Failed to marshal puzzle %q: %v", entry.Signature, err))
	}
	body := func(tx redis.Conn) (err error) {
		if _, err = tx.Do("SET", entry.key(), bytes); err != nil {
			err = fmt.Errorf("Cache failure writing puzzle %q: %v", entry.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad fills the entry from the database, returning
// whether it was found there.  Panics on database failure.
func (entry *puzzleEntry) databaseLoad(ctx context.Context) bool {
	found := true
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT name, sideLength, valueList, created FROM puzzles WHERE signature = $1",
			entry.Signature)
		err := row.Scan(&entry.Name, &entry.SideLength, &entry.Values, &entry.Created)
		if err == pgx.ErrNoRows {
			found = false
			return nil
		}
		if err != nil {
			return fmt.Errorf("Database failure reading puzzle %q: %v", entry.Signature, err)
		}
		return nil
	}
	pgExecute(ctx, body)
	return found
}

// databaseInsert writes the entry to the database.  Re-inserting
// an existing signature leaves the original row alone, so saves
// are idempotent.  Panics on database failure.
func (entry *puzzleEntry) databaseInsert(ctx context.Context) {
	body := func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (signature, name, sideLength, valueList, created) "+
				"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (signature) DO NOTHING",
			entry.Signature, entry.Name, entry.SideLength, entry.Values, entry.Created)
		if err != nil {
			return fmt.Errorf("Database failure writing puzzle %q: %v", entry.Signature, err)
		}
		return nil
	}
	pgExecute(ctx, body)
}

/*

operations

*/

// SavePuzzle stores a starting position in both the database and
// the cache and returns its signature.  Saving the same board
// again is harmless and keeps the first creation time.
func SavePuzzle(ctx context.Context, name string, board puzzle.Board) (signature string, err error) {
	defer guard(&err)
	values := board.Values()
	stored := make([]int32, len(values))
	for i, value := range values {
		stored[i] = int32(value)
	}
	entry := &puzzleEntry{
		Signature:  board.Signature(),
		Name:       name,
		SideLength: int32(board.SideLength()),
		Values:     stored,
		Created:    time.Now(),
	}
	entry.databaseInsert(ctx)
	// the database keeps the original row on repeat saves; read
	// it back so the cache agrees with it
	if !entry.databaseLoad(ctx) {
		panic(fmt.Errorf("Puzzle %q vanished between insert and read", entry.Signature))
	}
	entry.cacheInsert()
	log.WithFields(log.Fields{
		"signature": entry.Signature,
		"name":      entry.Name,
		"side":      entry.SideLength,
	}).Info("Saved puzzle")
	return entry.Signature, nil
}

// LoadPuzzle finds the stored puzzle with the given signature,
// checking the cache first and falling back to the database.  A
// database hit is written back to the cache.  Returns nil, with
// no error, when no such puzzle is stored.
func LoadPuzzle(ctx context.Context, signature string) (info *PuzzleInfo, err error) {
	defer guard(&err)
	entry := &puzzleEntry{Signature: signature}
	if entry.cacheLoad() {
		return entry.info(), nil
	}
	if !entry.databaseLoad(ctx) {
		return nil, nil
	}
	entry.cacheInsert()
	return entry.info(), nil
}

// ListPuzzles returns every stored puzzle, newest first.  The
// listing always comes from the database: it's not a hot path,
// and the database is the one place guaranteed to have every
// entry.
func ListPuzzles(ctx context.Context) (infos []*PuzzleInfo, err error) {
	defer guard(&err)
	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT signature, name, sideLength, valueList, created FROM puzzles "+
				"ORDER BY created DESC, signature")
		if err != nil {
			return fmt.Errorf("Database failure listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			entry := &puzzleEntry{}
			if err := rows.Scan(&entry.Signature, &entry.Name, &entry.SideLength,
				&entry.Values, &entry.Created); err != nil {
				return fmt.Errorf("Database failure reading puzzle row: %v", err)
			}
			infos = append(infos, entry.info())
		}
		return rows.Err()
	}
	pgExecute(ctx, body)
	return infos, nil
}
