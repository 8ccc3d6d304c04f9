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

Built-in puzzles

A small catalog of known-good starting positions compiled into
the binary, so the command line and the service work without any
storage attached.  The standard-N puzzles are ordered roughly by
difficulty; "starter" is a 4x4 warm-up and "expert" is the
hardest of the set.

*/

// DefaultPuzzleName is the catalog puzzle used when no name is
// given.
const DefaultPuzzleName = "standard-1"

// A CatalogEntry is one built-in puzzle: a name and its starting
// values.
type CatalogEntry struct {
	Name   string
	Values []int
}

var catalog = []CatalogEntry{
	{"starter", []int{
		1, 2, 0, 0,
		0, 4, 0, 2,
		2, 0, 4, 0,
		0, 0, 2, 1,
	}},
	{"standard-1", []int{
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	}},
	{"standard-2", []int{
		0, 1, 0, 5, 0, 6, 0, 2, 0,
		0, 0, 0, 0, 0, 3, 0, 1, 8,
		0, 0, 0, 0, 7, 0, 0, 0, 6,
		0, 0, 5, 0, 0, 0, 0, 3, 0,
		0, 0, 8, 0, 9, 0, 7, 0, 0,
		0, 6, 0, 0, 0, 0, 4, 0, 0,
		5, 0, 0, 0, 4, 0, 0, 0, 0,
		6, 4, 0, 2, 0, 0, 0, 0, 0,
		0, 3, 0, 9, 0, 1, 0, 8, 0,
	}},
	{"standard-3", []int{
		9, 0, 0, 4, 5, 0, 0, 0, 8,
		0, 2, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 7, 2, 4, 0, 0,
		0, 7, 9, 0, 0, 0, 6, 8, 0,
		2, 0, 0, 0, 0, 0, 0, 0, 5,
		0, 4, 3, 0, 0, 0, 2, 7, 0,
		0, 0, 8, 3, 2, 5, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 6, 0,
		4, 0, 0, 0, 1, 6, 0, 0, 3,
	}},
	{"standard-4", []int{
		9, 4, 8, 0, 5, 0, 2, 0, 0,
		0, 0, 7, 8, 0, 3, 0, 0, 1,
		0, 5, 0, 0, 7, 0, 0, 0, 0,
		0, 7, 0, 0, 0, 0, 3, 0, 0,
		2, 0, 0, 6, 0, 5, 0, 0, 4,
		0, 0, 5, 0, 0, 0, 0, 9, 0,
		0, 0, 0, 0, 6, 0, 0, 1, 0,
		3, 0, 0, 5, 0, 9, 7, 0, 0,
		0, 0, 6, 0, 1, 0, 4, 2, 3,
	}},
	{"standard-5", []int{
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		9, 0, 0, 5, 0, 7, 0, 3, 0,
		0, 0, 0, 1, 0, 0, 6, 0, 7,
		0, 4, 0, 0, 6, 0, 0, 8, 2,
		6, 7, 0, 0, 0, 0, 0, 1, 3,
		3, 8, 0, 0, 1, 0, 0, 9, 0,
		7, 0, 5, 0, 0, 8, 0, 0, 0,
		0, 2, 0, 3, 0, 9, 0, 0, 8,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}},
	{"standard-6", []int{
		2, 0, 0, 8, 0, 0, 0, 5, 0,
		0, 8, 5, 0, 0, 0, 0, 0, 0,
		0, 3, 6, 7, 5, 0, 0, 0, 1,
		0, 0, 3, 0, 4, 0, 0, 9, 8,
		0, 0, 0, 3, 0, 5, 0, 0, 0,
		4, 1, 0, 0, 6, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 1, 2, 0,
		0, 0, 0, 0, 0, 0, 5, 6, 0,
		0, 2, 0, 0, 0, 0, 0, 0, 4,
	}},
	{"expert", []int{
		5, 0, 0, 9, 0, 0, 8, 0, 0,
		0, 0, 7, 0, 0, 2, 0, 0, 0,
		0, 4, 0, 0, 7, 0, 0, 0, 3,
		9, 0, 0, 1, 0, 0, 0, 7, 0,
		0, 0, 4, 0, 6, 0, 3, 0, 0,
		0, 8, 0, 0, 0, 7, 0, 0, 9,
		1, 0, 0, 0, 4, 0, 0, 9, 0,
		0, 0, 0, 5, 0, 0, 7, 0, 0,
		0, 0, 6, 0, 0, 3, 0, 0, 2,
	}},
}

// KnownPuzzles returns the names of the built-in puzzles, in
// catalog order.
func KnownPuzzles() []string {
	names := make([]string, len(catalog))
	for i := range catalog {
		names[i] = catalog[i].Name
	}
	return names
}

// KnownPuzzle returns the built-in puzzle with the given name.
func KnownPuzzle(name string) (Board, error) {
	for i := range catalog {
		if catalog[i].Name == name {
			return New(catalog[i].Values)
		}
	}
	return Board{}, Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: PuzzleNameAttribute,
		Condition: UnknownPuzzleCondition,
		Values:    ErrorData{name},
	}
}
