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

package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/ancientHacker/gensudoku/puzzle"
	"github.com/ancientHacker/gensudoku/storage"
)

/*

Test Values

*/

var serviceStartValues = []int{
	1, 2, 0, 0,
	0, 4, 0, 2,
	2, 0, 4, 0,
	0, 0, 2, 1,
}

var serviceSolvedValues = []int{
	1, 2, 3, 4,
	3, 4, 1, 2,
	2, 1, 4, 3,
	4, 3, 2, 1,
}

var serviceStuckValues = []int{
	1, 2, 3, 0,
	0, 0, 0, 4,
	0, 0, 0, 0,
	0, 0, 0, 0,
}

const serviceStartText = "1 2 . .\n. 4 . 2\n2 . 4 .\n. . 2 1\n"

// testServer builds a server over the default settings; the
// stores stay unconnected, so these tests cover the degraded
// path where every solution is computed fresh.
func testServer() *httptest.Server {
	return httptest.NewServer(New(storage.DefaultConfig()).Routes())
}

// getJSON reads a response body into out, failing the test on
// transport or decoding trouble.
func getJSON(t *testing.T, r *http.Response, out interface{}) {
	t.Helper()
	b, e := io.ReadAll(r.Body)
	r.Body.Close()
	if e != nil {
		t.Fatalf("Read error on response body: %v", e)
	}
	if e := json.Unmarshal(b, out); e != nil {
		t.Logf("Response body: %s", b)
		t.Fatalf("Unmarshal failed: %v", e)
	}
}

/*

GET handlers

*/

func TestPuzzlesHandler(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	r, e := http.Get(ts.URL + "/api/puzzles")
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("Incorrect status: %q", r.Status)
	}
	var infos []*storage.PuzzleInfo
	getJSON(t, r, &infos)
	if len(infos) != len(puzzle.KnownPuzzles()) {
		t.Fatalf("Listed %d puzzles, expected %d", len(infos), len(puzzle.KnownPuzzles()))
	}
	for i, info := range infos {
		if i > 0 && infos[i-1].Name > info.Name {
			t.Errorf("Listing out of order: %q before %q", infos[i-1].Name, info.Name)
		}
		if len(info.Signature) != 64 {
			t.Errorf("Puzzle %q has signature %q", info.Name, info.Signature)
		}
		if info.Givens <= 0 || info.Givens >= len(info.Values) {
			t.Errorf("Puzzle %q has %d givens of %d cells", info.Name, info.Givens, len(info.Values))
		}
	}
}

func TestPuzzleHandler(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	r, e := http.Get(ts.URL + "/api/puzzles/starter")
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("Incorrect status: %q", r.Status)
	}
	var info storage.PuzzleInfo
	getJSON(t, r, &info)
	if info.Name != "starter" || info.SideLength != 4 || info.Givens != 8 {
		t.Errorf("Incorrect info: %+v", info)
	}
	if !reflect.DeepEqual(info.Values, serviceStartValues) {
		t.Errorf("Incorrect values: %v", info.Values)
	}
}

func TestPuzzleHandlerErrors(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	paths := []string{
		"/api/puzzles/bogus",
		"/api/puzzles/",
		"/api/puzzles/a/b",
	}
	for i, path := range paths {
		r, e := http.Get(ts.URL + path)
		if e != nil {
			t.Fatalf("case %d: Request error: %v", i+1, e)
		}
		if r.StatusCode != http.StatusNotFound {
			t.Errorf("case %d: Response status was %d (expected %d)",
				i+1, r.StatusCode, http.StatusNotFound)
		}
		r.Body.Close()
	}

	// an unknown name carries the library's own error structure
	r, e := http.Get(ts.URL + "/api/puzzles/bogus")
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	var perr puzzle.Error
	getJSON(t, r, &perr)
	if perr.Condition != puzzle.UnknownPuzzleCondition {
		t.Logf("Error body: %+v", perr)
		t.Errorf("Incorrect error!")
	}
}

/*

solve handler

*/

func postSolve(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	r, e := http.Post(ts.URL+"/api/solve", "application/json", strings.NewReader(body))
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	return r
}

func TestSolveHandler(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	bodies := []string{
		`{"name": "starter"}`,
		`{"values": [1,2,0,0, 0,4,0,2, 2,0,4,0, 0,0,2,1]}`,
		`{"text": "` + strings.ReplaceAll(serviceStartText, "\n", `\n`) + `"}`,
	}
	for i, body := range bodies {
		r := postSolve(t, ts, body)
		if r.StatusCode != http.StatusOK {
			t.Errorf("case %d: Incorrect status: %q", i+1, r.Status)
		}
		var response SolveResponse
		getJSON(t, r, &response)
		if !response.Solved {
			t.Errorf("case %d: Puzzle went unsolved", i+1)
		}
		if !reflect.DeepEqual(response.Values, serviceSolvedValues) {
			t.Errorf("case %d: Incorrect solution: %v", i+1, response.Values)
		}
		if response.Steps <= 0 {
			t.Errorf("case %d: Solve took %d steps", i+1, response.Steps)
		}
		if response.Replayed {
			t.Errorf("case %d: Solve claims a stored solution with no stores", i+1)
		}
		if len(response.Signature) != 64 {
			t.Errorf("case %d: Incorrect signature: %q", i+1, response.Signature)
		}
	}
}

func TestSolveHandlerUnsolvable(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	r := postSolve(t, ts, `{"values": [1,2,3,0, 0,0,0,4, 0,0,0,0, 0,0,0,0]}`)
	if r.StatusCode != http.StatusOK {
		t.Errorf("Incorrect status: %q", r.Status)
	}
	var response SolveResponse
	getJSON(t, r, &response)
	if response.Solved {
		t.Errorf("Unsolvable puzzle claims a solution: %v", response.Values)
	}
	if !reflect.DeepEqual(response.Values, serviceStuckValues) {
		t.Errorf("Unsolvable puzzle did not echo its start: %v", response.Values)
	}
}

func TestSolveHandlerBudget(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	r := postSolve(t, ts, `{"name": "standard-1", "maxSteps": 1}`)
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("Incorrect status: %q", r.Status)
	}
	var perr puzzle.Error
	getJSON(t, r, &perr)
	if perr.Scope != puzzle.SearchScope || perr.Condition != puzzle.SearchExhaustedCondition {
		t.Logf("Error body: %+v", perr)
		t.Errorf("Incorrect error!")
	}
}

func TestSolveHandlerErrors(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	bodies := []string{
		`{`,
		`{}`,
		`{"values": [1, 2, 3]}`,
		`{"name": "bogus"}`,
		`{"text": "1 q 3 4"}`,
	}
	statuses := []int{
		http.StatusBadRequest,
		http.StatusBadRequest,
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusBadRequest,
	}
	for i := range bodies {
		r := postSolve(t, ts, bodies[i])
		if r.StatusCode != statuses[i] {
			t.Errorf("case %d: Response status was %d (expected %d)",
				i+1, r.StatusCode, statuses[i])
		}
		r.Body.Close()
	}

	// solving is a POST-only affair
	r, e := http.Get(ts.URL + "/api/solve")
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	r.Body.Close()
	if r.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Response status was %d (expected %d)",
			r.StatusCode, http.StatusMethodNotAllowed)
	}
}

/*

history and health

*/

func TestRecentHandler(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	r, e := http.Get(ts.URL + "/api/recent")
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("Incorrect status: %q", r.Status)
	}
	var events []*storage.SolveEvent
	getJSON(t, r, &events)
	if len(events) != 0 {
		t.Errorf("History has %d events with no stores", len(events))
	}

	for i, arg := range []string{"x", "0", "-2"} {
		r, e := http.Get(ts.URL + "/api/recent?limit=" + arg)
		if e != nil {
			t.Fatalf("case %d: Request error: %v", i+1, e)
		}
		r.Body.Close()
		if r.StatusCode != http.StatusBadRequest {
			t.Errorf("case %d: Response status was %d (expected %d)",
				i+1, r.StatusCode, http.StatusBadRequest)
		}
	}
}

func TestHealthHandler(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	r, e := http.Get(ts.URL + "/healthz")
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	if r.StatusCode != http.StatusOK {
		t.Errorf("Incorrect status: %q", r.Status)
	}
	var report HealthReport
	getJSON(t, r, &report)
	if report.Status != "ok" {
		t.Errorf("Health status is %q", report.Status)
	}
	if report.Storage {
		t.Errorf("Health claims stores with none connected")
	}

	r, e = http.Post(ts.URL+"/healthz", "application/json", nil)
	if e != nil {
		t.Fatalf("Request error: %v", e)
	}
	r.Body.Close()
	if r.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Response status was %d (expected %d)",
			r.StatusCode, http.StatusMethodNotAllowed)
	}
}
