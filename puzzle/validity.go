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

Constraint predicates

Validity and completeness are independent: a board is valid when
no filled value repeats within a section, and complete when no
cell is empty.  Only their conjunction, IsSolved, is success.

*/

// sectionValid reports whether no non-zero value occurs more than
// once in the section.  Empty cells never conflict.
func sectionValid(section []int) bool {
	seen := make(map[int]bool, len(section))
	for _, v := range section {
		if v == 0 {
			continue
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// sectionComplete reports whether the section has no empty cell.
func sectionComplete(section []int) bool {
	for _, v := range section {
		if v == 0 {
			return false
		}
	}
	return true
}

// RowValid reports whether row x holds no repeated value.
func (b Board) RowValid(x int) bool {
	return sectionValid(b.Row(x))
}

// ColValid reports whether column y holds no repeated value.
func (b Board) ColValid(y int) bool {
	return sectionValid(b.Col(y))
}

// QuadrantValid reports whether the quadrant at quadrant
// coordinates (bx, by) holds no repeated value.
func (b Board) QuadrantValid(bx, by int) bool {
	return sectionValid(b.Quadrant(bx, by))
}

// RowComplete reports whether row x has no empty cell.
func (b Board) RowComplete(x int) bool {
	return sectionComplete(b.Row(x))
}

// ColComplete reports whether column y has no empty cell.
func (b Board) ColComplete(y int) bool {
	return sectionComplete(b.Col(y))
}

// QuadrantComplete reports whether the quadrant at (bx, by) has
// no empty cell.
func (b Board) QuadrantComplete(bx, by int) bool {
	return sectionComplete(b.Quadrant(bx, by))
}

// IsValid reports whether every row, every column, and every
// quadrant of the board is valid.  This is a local check on the
// filled cells only; it does not imply the board is solvable.
func (b Board) IsValid() bool {
	for i := 0; i < b.sidelen; i++ {
		if !b.RowValid(i) || !b.ColValid(i) {
			return false
		}
	}
	for bx := 0; bx < b.quadlen; bx++ {
		for by := 0; by < b.quadlen; by++ {
			if !b.QuadrantValid(bx, by) {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every cell of the board is filled.
func (b Board) IsComplete() bool {
	return sectionComplete(b.values)
}

// IsSolved reports whether the board is both valid and complete.
// This is the single authoritative success predicate.
func (b Board) IsSolved() bool {
	return b.IsValid() && b.IsComplete()
}
