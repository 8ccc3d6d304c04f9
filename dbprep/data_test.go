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

package dbprep

import (
	"strings"
	"testing"
)

// make sure the seed invariants are met
func TestSeedData(t *testing.T) {
	if len(seedNames) == 0 {
		t.Fatalf("No puzzles to seed.")
	}
	if len(seedSignatures) != len(seedNames) {
		t.Fatalf("Have %d signatures for %d names.", len(seedSignatures), len(seedNames))
	}
	seen := make(map[string]bool)
	for i, sig := range seedSignatures {
		if len(sig) != 64 {
			t.Errorf("Signature %d (%s) has the wrong length.", i, sig)
		}
		if sig != strings.ToLower(sig) {
			t.Errorf("Signature %d (%s) contains a non-lowercase letter.", i, sig)
		}
		if seen[sig] {
			t.Errorf("Signature %d (%s) appears more than once.", i, sig)
		}
		seen[sig] = true
	}
	for i, name := range seedNames {
		if name != strings.ToLower(name) {
			t.Errorf("Name %d (%s) contains a non-lowercase letter.", i, name)
		}
	}
}
