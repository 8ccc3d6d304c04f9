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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/gensudoku/puzzle"
	"github.com/ancientHacker/gensudoku/storage"
)

/*

Puzzle Listing

*/

// PuzzlesHandler responds with the known puzzles: the stored
// listing when the stores are up, the built-in catalog when they
// aren't.
func (s *Server) PuzzlesHandler(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return writeError(methodError, puzzle.ErrorData{"Method", r.Method, "Must be GET"}, w, r)
	}
	return writeJSON(listPuzzles(r.Context()), http.StatusOK, w, r)
}

// listPuzzles prefers the stored listing, which includes every
// puzzle clients have submitted; without stores it serves the
// built-in catalog.  Either way the result is sorted by name.
func listPuzzles(ctx context.Context) []*storage.PuzzleInfo {
	if storage.Connected() {
		infos, err := storage.ListPuzzles(ctx)
		if err == nil {
			sort.Sort(storage.ByName(infos))
			return infos
		}
		log.Warnf("Couldn't list stored puzzles, serving the catalog: %v", err)
	}
	infos := catalogInfos()
	sort.Sort(storage.ByName(infos))
	return infos
}

// catalogInfos builds the info form of the built-in puzzles.
func catalogInfos() []*storage.PuzzleInfo {
	names := puzzle.KnownPuzzles()
	infos := make([]*storage.PuzzleInfo, 0, len(names))
	for _, name := range names {
		board, err := puzzle.KnownPuzzle(name)
		if err != nil {
			log.Errorf("Built-in puzzle %q failed to load: %v", name, err)
			continue
		}
		infos = append(infos, catalogInfo(name, board))
	}
	return infos
}

// catalogInfo builds the info form of one built-in puzzle.
func catalogInfo(name string, board puzzle.Board) *storage.PuzzleInfo {
	values := board.Values()
	givens := 0
	for _, value := range values {
		if value != 0 {
			givens++
		}
	}
	return &storage.PuzzleInfo{
		Signature:  board.Signature(),
		Name:       name,
		SideLength: board.SideLength(),
		Givens:     givens,
		Values:     values,
	}
}

/*

Puzzle Lookup

*/

// PuzzleHandler responds with one puzzle, looked up under
// /api/puzzles/ by catalog name or, when the stores are up, by
// stored signature.
func (s *Server) PuzzleHandler(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return writeError(methodError, puzzle.ErrorData{"Method", r.Method, "Must be GET"}, w, r)
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/puzzles/")
	if name == "" || strings.Contains(name, "/") {
		return writeError(notFoundError, puzzle.ErrorData{r.URL.Path, "No puzzle"}, w, r)
	}
	board, err := puzzle.KnownPuzzle(name)
	if err == nil {
		return writeJSON(catalogInfo(name, board), http.StatusOK, w, r)
	}
	if storage.Connected() {
		info, lerr := storage.LoadPuzzle(r.Context(), name)
		if lerr != nil {
			log.Warnf("Couldn't load stored puzzle %q: %v", name, lerr)
		} else if info != nil {
			return writeJSON(info, http.StatusOK, w, r)
		}
	}
	return writePuzzleError("PuzzleHandler", err, w, r)
}

/*

Solving

*/

// A SolveRequest describes the puzzle to solve.  One of Values,
// Text, or Name must be given; when more than one is present the
// most explicit form wins, in that order.  MaxSteps can lower
// the server's search budget for this one request.
type SolveRequest struct {
	Name     string `json:"name,omitempty"`
	Values   []int  `json:"values,omitempty"`
	Text     string `json:"text,omitempty"`
	MaxSteps int    `json:"maxSteps,omitempty"`
}

// A SolveResponse reports the outcome of a solve.  Solved is
// false when the exhaustive search proved there is no solution;
// in that case Values echoes the starting position.  Replayed
// marks a response served from a stored solution rather than a
// fresh search.
type SolveResponse struct {
	Signature string `json:"signature"`
	Name      string `json:"name,omitempty"`
	Solved    bool   `json:"solved"`
	Values    []int  `json:"values"`
	Steps     int    `json:"steps"`
	ElapsedMS int64  `json:"elapsedMs"`
	Replayed  bool   `json:"replayed,omitempty"`
}

// requestBoard builds the board a solve request asks for.
func requestBoard(request SolveRequest) (puzzle.Board, error) {
	switch {
	case len(request.Values) > 0:
		return puzzle.New(request.Values)
	case request.Text != "":
		return puzzle.Parse(request.Text)
	case request.Name != "":
		return puzzle.KnownPuzzle(request.Name)
	}
	return puzzle.Board{}, puzzle.Error{
		Scope:     puzzle.RequestScope,
		Structure: puzzle.AttributeStructure,
		Attribute: puzzle.DecodeAttribute,
		Condition: puzzle.GeneralCondition,
		Values:    puzzle.ErrorData{"No puzzle in request"},
	}
}

// SolveHandler is a POST handler that solves the posted puzzle.
// When the stores are up it serves a stored solution if one
// exists, and otherwise stores what the search finds; every
// fresh search also lands in the solve history.  Store failures
// degrade to solving without them.
func (s *Server) SolveHandler(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return writeError(methodError, puzzle.ErrorData{"Method", r.Method, "Must be POST"}, w, r)
	}
	dec := json.NewDecoder(r.Body)
	var request SolveRequest
	if e := dec.Decode(&request); e != nil {
		return writeError(requestDecodingError, puzzle.ErrorData{e.Error()}, w, r)
	}
	board, e := requestBoard(request)
	if e != nil {
		return writePuzzleError("SolveHandler", e, w, r)
	}

	ctx := r.Context()
	connected := storage.Connected()
	signature := board.Signature()
	if connected {
		if info, lerr := storage.LoadSolution(ctx, signature); lerr != nil {
			log.Warnf("Couldn't consult stored solutions: %v", lerr)
		} else if info != nil {
			response := &SolveResponse{
				Signature: signature,
				Name:      request.Name,
				Solved:    true,
				Values:    info.Values,
				Steps:     info.Steps,
				ElapsedMS: info.Elapsed.Milliseconds(),
				Replayed:  true,
			}
			return writeJSON(response, http.StatusOK, w, r)
		}
	}

	budget := s.MaxSteps
	if request.MaxSteps > 0 && (budget == 0 || request.MaxSteps < budget) {
		budget = request.MaxSteps
	}
	start := time.Now()
	solved, steps, searchErr := board.SolveWithin(budget)
	elapsed := time.Since(start)

	if connected {
		event := &storage.SolveEvent{
			Signature:  signature,
			Name:       request.Name,
			SideLength: board.SideLength(),
			Solved:     searchErr == nil && solved.IsSolved(),
			Steps:      steps,
			Elapsed:    elapsed,
			When:       time.Now(),
		}
		if herr := storage.RecordSolve(event); herr != nil {
			log.Warnf("Couldn't record solve event: %v", herr)
		}
	}
	if searchErr != nil {
		return writePuzzleError("SolveHandler", searchErr, w, r)
	}

	response := &SolveResponse{
		Signature: signature,
		Name:      request.Name,
		Solved:    solved.IsSolved(),
		Values:    solved.Values(),
		Steps:     steps,
		ElapsedMS: elapsed.Milliseconds(),
	}
	if connected && response.Solved {
		if sig, serr := storage.SavePuzzle(ctx, request.Name, board); serr != nil {
			log.Warnf("Couldn't store puzzle: %v", serr)
		} else if serr := storage.SaveSolution(ctx, sig, solved, steps, elapsed); serr != nil {
			log.Warnf("Couldn't store solution: %v", serr)
		}
	}
	return writeJSON(response, http.StatusOK, w, r)
}

/*

History and Health

*/

// RecentHandler responds with the latest solve events, newest
// first.  Without stores the history is always empty.
func (s *Server) RecentHandler(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return writeError(methodError, puzzle.ErrorData{"Method", r.Method, "Must be GET"}, w, r)
	}
	limit := 0
	if arg := r.URL.Query().Get("limit"); arg != "" {
		value, e := strconv.Atoi(arg)
		if e != nil || value < 1 {
			return writeError(requestDecodingError,
				puzzle.ErrorData{fmt.Sprintf("Bad limit %q", arg)}, w, r)
		}
		limit = value
	}
	events := []*storage.SolveEvent{}
	if storage.Connected() {
		loaded, err := storage.RecentSolves(limit)
		if err != nil {
			log.Warnf("Couldn't read solve history: %v", err)
		} else {
			events = loaded
		}
	}
	return writeJSON(events, http.StatusOK, w, r)
}

// A HealthReport is the healthz payload.
type HealthReport struct {
	Status  string `json:"status"`
	Storage bool   `json:"storage"`
}

// HealthHandler responds 200 whenever the server is up; the
// payload says whether the stores are attached.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return writeError(methodError, puzzle.ErrorData{"Method", r.Method, "Must be GET"}, w, r)
	}
	return writeJSON(&HealthReport{Status: "ok", Storage: storage.Connected()}, http.StatusOK, w, r)
}
