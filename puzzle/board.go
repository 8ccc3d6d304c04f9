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

// Package puzzle implements a generalized N-by-N Sudoku board and
// an exhaustive backtracking solver for it.  The side length N
// must itself be a perfect square, so the grid divides evenly
// into quadrants of side sqrt(N).  Cell value 0 denotes an empty
// square; 1 through N denote filled entries.
//
// Boards are values: no operation ever mutates its receiver.  The
// solver relies on this to branch from an unmodified parent
// position simply by taking copies.
package puzzle

/*

Boards

*/

// A Board holds the cell values of one puzzle position, row-major.
// An arbitrary grid may be constructed, including one that already
// violates the puzzle constraints; validity is a derived predicate
// (IsValid), never a construction invariant.
type Board struct {
	sidelen int   // cells per row, column, and quadrant
	quadlen int   // cells per quadrant side
	values  []int // sidelen*sidelen cell values, row-major
}

// New creates a Board from the given cell values, which must be
// exactly N*N values in row-major order for a perfect-square N.
// The board keeps its own copy of the values.
func New(values []int) (Board, error) {
	sidelen, quadlen, err := boardGeometry(len(values))
	if err != nil {
		return Board{}, err
	}
	vs := make([]int, len(values))
	copy(vs, values)
	return Board{sidelen: sidelen, quadlen: quadlen, values: vs}, nil
}

// NewSized creates a Board with an explicit side length, checking
// that the value count matches it.  Useful when the side length
// arrives separately from the values, as in stored records and
// decoded requests.
func NewSized(sidelen int, values []int) (Board, error) {
	if len(values) != sidelen*sidelen {
		return Board{}, Error{
			Scope:     BoardScope,
			Structure: AttributeValueStructure,
			Attribute: BoardSizeAttribute,
			Condition: WrongLengthCondition,
			Values:    ErrorData{len(values), sidelen},
		}
	}
	return New(values)
}

// SideLength returns the number of cells on a side of the board.
func (b Board) SideLength() int {
	return b.sidelen
}

// QuadrantLength returns the number of cells on a side of one
// quadrant, i.e. the integer square root of the side length.
func (b Board) QuadrantLength() int {
	return b.quadlen
}

// Size returns the total number of cells in the board.
func (b Board) Size() int {
	return len(b.values)
}

// Values returns a copy of the board's cell values in row-major
// order.
func (b Board) Values() []int {
	vs := make([]int, len(b.values))
	copy(vs, b.values)
	return vs
}

/*

Cell access

*/

// inRange reports whether (x, y) addresses a cell of the board.
func (b Board) inRange(x, y int) bool {
	return x >= 0 && x < b.sidelen && y >= 0 && y < b.sidelen
}

// Get returns the value of the cell at row x, column y.  An
// out-of-range coordinate reads as 0, the same as an empty cell;
// callers that need bounds enforcement should use Put, which
// rejects such coordinates.
func (b Board) Get(x, y int) int {
	if !b.inRange(x, y) {
		return 0
	}
	return b.values[x*b.sidelen+y]
}

// Put returns a new Board equal to the receiver except that the
// cell at row x, column y holds val.  The receiver is never
// modified.  Out-of-range coordinates fail; out-of-range values
// do not, since validity is a derived predicate.
func (b Board) Put(x, y, val int) (Board, error) {
	if !b.inRange(x, y) {
		return Board{}, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: IndexAttribute,
			Condition: OutOfRangeCondition,
			Values:    ErrorData{[2]int{x, y}, b.sidelen},
		}
	}
	return b.put(x, y, val), nil
}

// put is Put for coordinates already known to be in range.  The
// solver drives the search through it.
func (b Board) put(x, y, val int) Board {
	vs := make([]int, len(b.values))
	copy(vs, b.values)
	vs[x*b.sidelen+y] = val
	return Board{sidelen: b.sidelen, quadlen: b.quadlen, values: vs}
}
