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

package puzzle

/*

Backtracking search

The solver is a correctness reference, not a performance one: a
depth-first search that tries every candidate value in every empty
cell, with no propagation or pruning beyond the validity check at
each node.  Each branch works on its own copy of the board, so no
position is ever mutated once created, and abandoning a branch
needs no undo.

*/

// NextEmpty returns the coordinates of the first empty cell in
// row-major order.  ok is false when the board has no empty cell
// left.
func (b Board) NextEmpty() (x, y int, ok bool) {
	for i, v := range b.values {
		if v == 0 {
			return i / b.sidelen, i % b.sidelen, true
		}
	}
	return 0, 0, false
}

// Solve searches for a completion of the board and returns the
// first solved position found, trying candidate values in
// ascending order.  When the board is already invalid, or no
// completion exists, it returns the board unchanged; callers
// detect success by checking IsSolved on the result.  Termination
// is guaranteed because every recursion step fills one cell.
func (b Board) Solve() Board {
	var steps int
	result, _, _ := b.solve(&steps, 0)
	return result
}

// SolveWithin is Solve under a step budget, where a step is one
// candidate placement.  It returns the resulting board, the
// number of steps taken, and an Error with SearchExhaustedCondition
// if the budget ran out before the search finished.  A limit of
// zero or less means no budget.
func (b Board) SolveWithin(maxSteps int) (Board, int, error) {
	var steps int
	result, _, err := b.solve(&steps, maxSteps)
	return result, steps, err
}

// solve is the recursive search shared by Solve and SolveWithin.
// found is true when result is a complete and valid position; on
// a dead branch the receiver comes back unchanged.  The step
// counter is shared across the whole search.
func (b Board) solve(steps *int, limit int) (result Board, found bool, err error) {
	// A constraint is already violated: dead end.
	if !b.IsValid() {
		return b, false, nil
	}

	// No empty cell left: the board is complete, and by the guard
	// above, valid.
	x, y, ok := b.NextEmpty()
	if !ok {
		return b, true, nil
	}

	for val := 1; val <= b.sidelen; val++ {
		*steps++
		if limit > 0 && *steps > limit {
			return b, false, Error{
				Scope:     SearchScope,
				Structure: AttributeValueStructure,
				Attribute: StepLimitAttribute,
				Condition: SearchExhaustedCondition,
				Values:    ErrorData{limit},
			}
		}
		candidate, found, err := b.put(x, y, val).solve(steps, limit)
		if err != nil {
			return b, false, err
		}
		if found {
			// First complete and valid result wins; sibling
			// candidates are never explored.
			return candidate, true, nil
		}
	}

	// No candidate value completes this branch.
	return b, false, nil
}
