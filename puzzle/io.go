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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

/*

Print forms of cell values

*/

var (
	valueStrings = []string{
		" ", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
		"U", "V", "W", "X", "Y", "Z",
	}
	nonValueString = "?"
	bigValueString = "!"
)

func vstr(i int) string {
	if i < 0 {
		return nonValueString
	}
	if i < len(valueStrings) {
		return valueStrings[i]
	}
	return bigValueString
}

/*

Rendered boards

*/

// String renders the board as a plain numeric grid: one row per
// line, cells separated by single spaces, 0 for empty cells.
// This is the machine-readable form that Parse accepts.
func (b Board) String() string {
	var sb strings.Builder
	for x := 0; x < b.sidelen; x++ {
		for y := 0; y < b.sidelen; y++ {
			if y > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(b.Get(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Diagram returns a pretty-printed view of the board: numbered
// column headers, lettered rows, separator lines between quadrant
// bands, and an underscore for each empty cell.  Values beyond
// the printable symbol range show as "!", negative values as "?".
func (b Board) Diagram() (result string) {
	// first put out the header
	result += " "
	for i := 0; i < b.sidelen; i++ {
		if i%b.quadlen != 0 {
			result += " "
		} else {
			result += "|"
		}
		result += fmt.Sprintf("%2d ", i+1)
	}
	result += "\n"
	// next are the rows, including the separator at the top of
	// each quadrant band
	for x, rowhdr := 0, 'a'; x < b.sidelen; x, rowhdr = x+1, rowhdr+1 {
		if x%b.quadlen == 0 {
			result += " "
			for i := 0; i < b.sidelen; i++ {
				result += "+---"
			}
			result += "\n"
		}
		result += string(rowhdr)
		for y := 0; y < b.sidelen; y++ {
			if y%b.quadlen != 0 {
				result += " "
			} else {
				result += "|"
			}
			if v := b.Get(x, y); v != 0 {
				result += fmt.Sprintf(" %s ", vstr(v))
			} else {
				result += " _ "
			}
		}
		result += "\n"
	}
	return
}

/*

Parsed boards

*/

// ParseValues reads whitespace-separated cell values.  The tokens
// "0", ".", and "_" all denote an empty cell; any other token
// must be an integer.
func ParseValues(text string) ([]int, error) {
	fields := strings.Fields(text)
	values := make([]int, len(fields))
	for i, field := range fields {
		if field == "." || field == "_" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: ValueAttribute,
				Condition: NotANumberCondition,
				Values:    ErrorData{field},
			}
		}
		values[i] = v
	}
	return values, nil
}

// Parse builds a Board from a whitespace-separated grid of cell
// values, in the form that String produces.  The cell count must
// be N*N for a perfect-square N.
func Parse(text string) (Board, error) {
	values, err := ParseValues(text)
	if err != nil {
		return Board{}, err
	}
	return New(values)
}

/*

Board identity

*/

// Signature returns a stable identity for the board: the hex
// SHA-256 digest of its values joined by single spaces.  Boards
// with equal values share a signature no matter how they were
// produced, which is what lets stored puzzles be deduplicated.
func (b Board) Signature() string {
	fields := make([]string, len(b.values))
	for i, value := range b.values {
		fields[i] = strconv.Itoa(value)
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, " ")))
	return hex.EncodeToString(sum[:])
}
