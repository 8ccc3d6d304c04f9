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
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a board or a requested
// operation.  It can produce an error message in English, but it
// also carries enough structure for clients to produce their own
// messaging: it tells them "this thing failed to meet this
// condition", with supplemental details about the thing and the
// condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, the board itself, its
// geometry, the search, a client request, or internal logic.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	BoardScope
	GeometryScope
	SearchScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.  There are named
// predicates for the known failures and a "general" (arbitrary
// English string) predicate for runtime errors.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	NonSquareCondition
	WrongLengthCondition
	OutOfRangeCondition
	NotANumberCondition
	SearchExhaustedCondition
	UnknownPuzzleCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	URLAttribute
	LocationAttribute
	NamedAttribute
	IndexAttribute
	ValueAttribute
	BoardSizeAttribute
	SideLengthAttribute
	StepLimitAttribute
	PuzzleNameAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as the limit it exceeded).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.  There
// is no good way to express that condition so the compiler can
// check it, so implementors have to do the right thing at
// runtime.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will produce
// an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case BoardScope:
		es = "Invalid board: "
	case GeometryScope:
		es = "Invalid geometry: "
	case SearchScope:
		es = "Search failed: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case URLAttribute:
			es += "Resource path"
		case LocationAttribute:
			es += fmt.Sprintf("In %v", nextVal())
		case NamedAttribute:
			es += fmt.Sprint(nextVal())
		case IndexAttribute:
			es += "Index"
		case ValueAttribute:
			es += "Value"
		case BoardSizeAttribute:
			es += "Board size"
		case SideLengthAttribute:
			es += "Side length"
		case StepLimitAttribute:
			es += "Step limit"
		case PuzzleNameAttribute:
			es += "Puzzle name"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case NonSquareCondition:
		es += "Not a perfect square"
	case WrongLengthCondition:
		es += fmt.Sprintf("Does not match the specified side length (%v)", nextVal())
	case OutOfRangeCondition:
		es += fmt.Sprintf("Must be within the %v-cell board side", nextVal())
	case NotANumberCondition:
		es += "Not a number"
	case SearchExhaustedCondition:
		es += "No solution within the step budget"
	case UnknownPuzzleCondition:
		es += "Not a known puzzle"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
