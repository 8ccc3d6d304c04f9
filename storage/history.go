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
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

/*

solve history

*/

// A SolveEvent is one entry of the recent-solve history: which
// puzzle was attempted, how the search went, and when.
type SolveEvent struct {
	Signature  string        `json:"signature"`
	Name       string        `json:"name,omitempty"`
	SideLength int           `json:"sideLength"`
	Solved     bool          `json:"solved"`
	Steps      int           `json:"steps"`
	Elapsed    time.Duration `json:"elapsed"`
	When       time.Time     `json:"when"`
}

// The history lives only in the cache: it's ephemeral by nature,
// and losing it on a cache flush costs nothing.
const historyKey = "Recent:Solves"

// historyLength caps the history list; Connect sets it from the
// configuration.
var historyLength = DefaultConfig().HistorySize

// RecordSolve appends the event to the recent-solve history and
// trims the history to its configured length, keeping the newest
// events.
func RecordSolve(event *SolveEvent) (err error) {
	defer guard(&err)
	bytes, e := json.Marshal(event)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal solve event: %v", e))
	}
	body := func(tx redis.Conn) (err error) {
		tx.Send("RPUSH", historyKey, bytes)
		if _, err = tx.Do("LTRIM", historyKey, -historyLength, -1); err != nil {
			err = fmt.Errorf("Cache failure recording solve event: %v", err)
		}
		return
	}
	rdExecute(body)
	return nil
}

// RecentSolves returns up to max recent events, newest first.
// Non-positive max means as many as the history holds.
func RecentSolves(max int) (events []*SolveEvent, err error) {
	defer guard(&err)
	if max <= 0 || max > historyLength {
		max = historyLength
	}
	var raws [][]byte
	body := func(tx redis.Conn) (err error) {
		raws, err = redis.ByteSlices(tx.Do("LRANGE", historyKey, -max, -1))
		if err != nil {
			err = fmt.Errorf("Cache failure reading solve history: %v", err)
		}
		return
	}
	rdExecute(body)
	events = make([]*SolveEvent, 0, len(raws))
	for i := len(raws) - 1; i >= 0; i-- {
		event := &SolveEvent{}
		if e := json.Unmarshal(raws[i], event); e != nil {
			panic(fmt.Errorf("Failed to unmarshal solve event: %v", e))
		}
		events = append(events, event)
	}
	return events, nil
}
