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
	"os"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/ancientHacker/gensudoku/puzzle"
)

/*

Test Values

*/

var storageTestValues = []int{
	1, 2, 0, 0,
	0, 4, 0, 2,
	2, 0, 4, 0,
	0, 0, 2, 1,
}

/*

infos and entries

*/

func TestCountZeroes(t *testing.T) {
	valueses := [][]int32{
		nil,
		{},
		{0},
		{1, 2, 3},
		{0, 1, 0, 2, 0},
	}
	counts := []int{0, 0, 1, 0, 3}
	for i := range valueses {
		if count := countZeroes(valueses[i]); count != counts[i] {
			t.Errorf("case %d: got %d zeroes, expected %d", i+1, count, counts[i])
		}
	}
}

func TestPuzzleEntryInfo(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	entry := &puzzleEntry{
		Signature:  "deadbeef",
		Name:       "starter",
		SideLength: 4,
		Values:     []int32{1, 2, 0, 0, 0, 4, 0, 2, 2, 0, 4, 0, 0, 0, 2, 1},
		Created:    created,
	}
	info := entry.info()
	if info.Signature != entry.Signature || info.Name != entry.Name {
		t.Errorf("Info doesn't carry the entry identity: %+v", *info)
	}
	if info.SideLength != 4 {
		t.Errorf("Info has side length %d, expected 4", info.SideLength)
	}
	if info.Givens != 8 {
		t.Errorf("Info has %d givens, expected 8", info.Givens)
	}
	if !reflect.DeepEqual(info.Values, storageTestValues) {
		t.Errorf("Info has values %v, expected %v", info.Values, storageTestValues)
	}
	if !info.Created.Equal(created) {
		t.Errorf("Info has creation time %v, expected %v", info.Created, created)
	}
	board, err := info.Board()
	if err != nil {
		t.Fatalf("Info didn't produce a board: %v", err)
	}
	if !reflect.DeepEqual(board.Values(), storageTestValues) {
		t.Errorf("Info board has values %v, expected %v", board.Values(), storageTestValues)
	}
	if entry.key() != "PUZ:deadbeef" {
		t.Errorf("Entry has key %q, expected %q", entry.key(), "PUZ:deadbeef")
	}
}

func TestSolutionEntryInfo(t *testing.T) {
	entry := &solutionEntry{
		Signature: "deadbeef",
		Values:    []int32{1, 2, 3, 4, 3, 4, 1, 2, 2, 1, 4, 3, 4, 3, 2, 1},
		Steps:     8,
		ElapsedMS: 1500,
		Created:   time.Now(),
	}
	info := entry.info()
	if info.Steps != 8 {
		t.Errorf("Info has %d steps, expected 8", info.Steps)
	}
	if info.Elapsed != 1500*time.Millisecond {
		t.Errorf("Info has elapsed time %v, expected 1.5s", info.Elapsed)
	}
	board, err := info.Board()
	if err != nil {
		t.Fatalf("Info didn't produce a board: %v", err)
	}
	if !board.IsSolved() {
		t.Errorf("Info board isn't solved:\n%v", board)
	}
	if entry.key() != "SOL:deadbeef" {
		t.Errorf("Entry has key %q, expected %q", entry.key(), "SOL:deadbeef")
	}
}

/*

sorting

*/

func TestPuzzleInfoSorts(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	infos := []*PuzzleInfo{
		{Signature: "bb", Name: "", Created: base.Add(2 * time.Hour)},
		{Signature: "cc", Name: "beta", Created: base.Add(3 * time.Hour)},
		{Signature: "aa", Name: "beta", Created: base.Add(1 * time.Hour)},
		{Signature: "dd", Name: "alpha", Created: base.Add(1 * time.Hour)},
	}
	sortByName := make([]*PuzzleInfo, len(infos))
	copy(sortByName, infos)
	sort.Sort(ByName(sortByName))
	nameOrder := []string{"dd", "aa", "cc", "bb"}
	for i, info := range sortByName {
		if info.Signature != nameOrder[i] {
			t.Errorf("ByName position %d is %q, expected %q", i, info.Signature, nameOrder[i])
		}
	}
	sortByCreation := make([]*PuzzleInfo, len(infos))
	copy(sortByCreation, infos)
	sort.Sort(ByCreation(sortByCreation))
	creationOrder := []string{"cc", "bb", "aa", "dd"}
	for i, info := range sortByCreation {
		if info.Signature != creationOrder[i] {
			t.Errorf("ByCreation position %d is %q, expected %q", i, info.Signature, creationOrder[i])
		}
	}
}

/*

live stores

*/

// requireStores connects to the live stores, or skips the test
// when they aren't asked for.  Tests that call this exercise
// real Redis and Postgres servers, so they only run when
// SUDOKU_TEST_STORAGE is set.
func requireStores(t *testing.T) {
	t.Helper()
	if os.Getenv("SUDOKU_TEST_STORAGE") == "" {
		t.Skip("set SUDOKU_TEST_STORAGE to run live store tests")
	}
	if Connected() {
		return
	}
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	cacheId, databaseId, err := Connect(context.Background(), config)
	if err != nil {
		t.Fatalf("Failed to connect to stores: %v", err)
	}
	t.Logf("Connected to cache %q and database %q", cacheId, databaseId)
}

func TestLivePuzzleRoundTrip(t *testing.T) {
	requireStores(t)
	ctx := context.Background()
	board, err := puzzle.New(storageTestValues)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	sig, err := SavePuzzle(ctx, "round-trip", board)
	if err != nil {
		t.Fatalf("Failed to save puzzle: %v", err)
	}
	again, err := SavePuzzle(ctx, "round-trip", board)
	if err != nil {
		t.Fatalf("Failed to re-save puzzle: %v", err)
	}
	if again != sig {
		t.Errorf("Re-save produced signature %q, expected %q", again, sig)
	}
	info, err := LoadPuzzle(ctx, sig)
	if err != nil {
		t.Fatalf("Failed to load puzzle: %v", err)
	}
	if info == nil {
		t.Fatalf("Saved puzzle %q not found", sig)
	}
	if !reflect.DeepEqual(info.Values, storageTestValues) {
		t.Errorf("Loaded values %v, expected %v", info.Values, storageTestValues)
	}
	missing, err := LoadPuzzle(ctx, "no-such-signature")
	if err != nil {
		t.Fatalf("Missing puzzle load failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Missing puzzle load returned %+v", *missing)
	}
	infos, err := ListPuzzles(ctx)
	if err != nil {
		t.Fatalf("Failed to list puzzles: %v", err)
	}
	found := false
	for _, listed := range infos {
		if listed.Signature == sig {
			found = true
		}
	}
	if !found {
		t.Errorf("Saved puzzle %q not in the listing", sig)
	}
}

func TestLiveSolutionRoundTrip(t *testing.T) {
	requireStores(t)
	ctx := context.Background()
	board, err := puzzle.New(storageTestValues)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	sig, err := SavePuzzle(ctx, "round-trip", board)
	if err != nil {
		t.Fatalf("Failed to save puzzle: %v", err)
	}
	solved := board.Solve()
	if !solved.IsSolved() {
		t.Fatalf("Failed to solve board:\n%v", board)
	}
	if err := SaveSolution(ctx, sig, solved, 8, 1500*time.Millisecond); err != nil {
		t.Fatalf("Failed to save solution: %v", err)
	}
	info, err := LoadSolution(ctx, sig)
	if err != nil {
		t.Fatalf("Failed to load solution: %v", err)
	}
	if info == nil {
		t.Fatalf("Saved solution %q not found", sig)
	}
	if !reflect.DeepEqual(info.Values, solved.Values()) {
		t.Errorf("Loaded solution values %v, expected %v", info.Values, solved.Values())
	}
	if info.Steps != 8 || info.Elapsed != 1500*time.Millisecond {
		t.Errorf("Loaded solution cost %d steps in %v, expected 8 steps in 1.5s",
			info.Steps, info.Elapsed)
	}
	missing, err := LoadSolution(ctx, "no-such-signature")
	if err != nil {
		t.Fatalf("Missing solution load failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Missing solution load returned %+v", *missing)
	}
}

func TestLiveSolveHistory(t *testing.T) {
	requireStores(t)
	first := &SolveEvent{
		Signature: "live-history-1", Name: "starter", SideLength: 4,
		Solved: true, Steps: 8, Elapsed: time.Millisecond, When: time.Now(),
	}
	second := &SolveEvent{
		Signature: "live-history-2", SideLength: 9,
		Solved: false, Steps: 100, Elapsed: time.Second, When: time.Now(),
	}
	if err := RecordSolve(first); err != nil {
		t.Fatalf("Failed to record first event: %v", err)
	}
	if err := RecordSolve(second); err != nil {
		t.Fatalf("Failed to record second event: %v", err)
	}
	events, err := RecentSolves(2)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("History has %d events, expected 2", len(events))
	}
	if events[0].Signature != second.Signature || events[1].Signature != first.Signature {
		t.Errorf("History out of order: got %q then %q", events[0].Signature, events[1].Signature)
	}
	if events[0].Solved || !events[1].Solved {
		t.Errorf("History events have wrong outcomes")
	}
}
