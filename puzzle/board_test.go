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

import (
	"reflect"
	"testing"
)

/*

Test Values

*/

var (
	board4Values = []int{
		1, 2, 0, 0,
		0, 4, 0, 2,
		2, 0, 4, 0,
		0, 0, 2, 1,
	}
)

/*

Construction

*/

func TestNew(t *testing.T) {
	b, err := New(board4Values)
	if err != nil {
		t.Fatalf("Failed to create 4x4 board: %v", err)
	}
	if b.SideLength() != 4 || b.QuadrantLength() != 2 || b.Size() != 16 {
		t.Errorf("4x4 board geometry is (%d, %d, %d), expected (4, 2, 16)",
			b.SideLength(), b.QuadrantLength(), b.Size())
	}
	if !reflect.DeepEqual(b.Values(), board4Values) {
		t.Errorf("4x4 board values are %v (expected %v)", b.Values(), board4Values)
	}

	b, err = New(make([]int, 81))
	if err != nil {
		t.Fatalf("Failed to create empty 9x9 board: %v", err)
	}
	if b.SideLength() != 9 || b.QuadrantLength() != 3 || b.Size() != 81 {
		t.Errorf("9x9 board geometry is (%d, %d, %d), expected (9, 3, 81)",
			b.SideLength(), b.QuadrantLength(), b.Size())
	}

	// boards must have a perfect-square cell count whose side is
	// itself a perfect square
	badSizes := []int{2, 13, 36, 50}
	badAttrs := []ErrorAttribute{
		BoardSizeAttribute, BoardSizeAttribute, SideLengthAttribute, BoardSizeAttribute,
	}
	for i, size := range badSizes {
		if _, err := New(make([]int, size)); err == nil {
			t.Errorf("case %d: Creating a %d-cell board did not fail.", i+1, size)
		} else {
			if err.(Error).Condition != NonSquareCondition ||
				err.(Error).Attribute != badAttrs[i] {
				t.Logf("case %d: New(%d cells): %v", i+1, size, err)
				t.Errorf("Incorrect error!")
			}
		}
	}
}

func TestNewKeepsItsOwnValues(t *testing.T) {
	vs := make([]int, len(board4Values))
	copy(vs, board4Values)
	b, err := New(vs)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	vs[0] = 9
	if b.Get(0, 0) != 1 {
		t.Errorf("Mutating the input values changed the board: %v", b.Values())
	}
	b.Values()[1] = 9
	if b.Get(0, 1) != 2 {
		t.Errorf("Mutating the returned values changed the board: %v", b.Values())
	}
}

func TestNewSized(t *testing.T) {
	if _, err := NewSized(4, board4Values); err != nil {
		t.Errorf("Creating a sized 4x4 board failed: %v", err)
	}
	if _, err := NewSized(9, board4Values); err == nil {
		t.Fatalf("Creating a 9x9 board from 16 values did not fail.")
	} else {
		if err.(Error).Condition != WrongLengthCondition ||
			err.(Error).Scope != BoardScope {
			t.Logf("NewSized(9, 16 values): %v", err)
			t.Errorf("Incorrect error!")
		}
	}
	// a consistent length can still have an impossible geometry
	if _, err := NewSized(3, make([]int, 9)); err == nil {
		t.Fatalf("Creating a 3x3 board did not fail.")
	} else {
		if err.(Error).Condition != NonSquareCondition ||
			err.(Error).Attribute != SideLengthAttribute {
			t.Logf("NewSized(3, 9 values): %v", err)
			t.Errorf("Incorrect error!")
		}
	}
}

/*

Cell access

*/

func TestGet(t *testing.T) {
	b, err := New(board4Values)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	xs := []int{0, 0, 1, 1, 3, 3}
	ys := []int{0, 2, 1, 3, 2, 3}
	vals := []int{1, 0, 4, 2, 2, 1}
	for i := range xs {
		if v := b.Get(xs[i], ys[i]); v != vals[i] {
			t.Errorf("case %d: Get(%d, %d) = %d (expected %d)",
				i+1, xs[i], ys[i], v, vals[i])
		}
	}
	// out-of-range coordinates read as empty cells
	oxs := []int{-1, 0, 4, 0, 100}
	oys := []int{0, -1, 0, 4, 100}
	for i := range oxs {
		if v := b.Get(oxs[i], oys[i]); v != 0 {
			t.Errorf("case %d: Get(%d, %d) = %d (expected 0)",
				i+1, oxs[i], oys[i], v)
		}
	}
}

func TestPut(t *testing.T) {
	b, err := New(board4Values)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	b2, err := b.Put(0, 2, 3)
	if err != nil {
		t.Fatalf("Put(0, 2, 3) failed: %v", err)
	}
	if b2.Get(0, 2) != 3 {
		t.Errorf("Put(0, 2, 3) produced cell value %d", b2.Get(0, 2))
	}
	if b.Get(0, 2) != 0 {
		t.Errorf("Put modified its receiver: %v", b.Values())
	}
	expected := []int{
		1, 2, 3, 0,
		0, 4, 0, 2,
		2, 0, 4, 0,
		0, 0, 2, 1,
	}
	if !reflect.DeepEqual(b2.Values(), expected) {
		t.Errorf("Put produced %v (expected %v)", b2.Values(), expected)
	}

	// replacing and erasing a filled cell both work
	b3, err := b2.Put(0, 2, 4)
	if err != nil || b3.Get(0, 2) != 4 {
		t.Errorf("Put over a filled cell gave (%d, %v)", b3.Get(0, 2), err)
	}
	b4, err := b3.Put(0, 2, 0)
	if err != nil || b4.Get(0, 2) != 0 {
		t.Errorf("Erasing a filled cell gave (%d, %v)", b4.Get(0, 2), err)
	}
	if !reflect.DeepEqual(b4.Values(), board4Values) {
		t.Errorf("Erasing did not restore the start values: %v", b4.Values())
	}

	// out-of-range coordinates fail and leave the receiver alone
	oxs := []int{-1, 4, 0, 0}
	oys := []int{0, 0, -1, 4}
	for i := range oxs {
		if _, err := b.Put(oxs[i], oys[i], 1); err == nil {
			t.Errorf("case %d: Put(%d, %d, 1) did not fail.", i+1, oxs[i], oys[i])
		} else {
			if err.(Error).Condition != OutOfRangeCondition ||
				err.(Error).Attribute != IndexAttribute {
				t.Logf("case %d: Put(%d, %d, 1): %v", i+1, oxs[i], oys[i], err)
				t.Errorf("Incorrect error!")
			}
		}
	}
	if !reflect.DeepEqual(b.Values(), board4Values) {
		t.Errorf("Failed Puts changed the board: %v", b.Values())
	}

	// out-of-range values are not Put's concern
	b5, err := b.Put(0, 2, 17)
	if err != nil || b5.Get(0, 2) != 17 {
		t.Errorf("Put of an out-of-range value gave (%d, %v)", b5.Get(0, 2), err)
	}
}
