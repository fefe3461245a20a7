// sudoku-solver - a constraint-propagation Sudoku solver and solution store.
// Copyright (C) 2026 the sudoku-solver authors.
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
// operation.  It can produce an error message in English, but
// its main function is to support localized error messaging by
// clients.  It tells the client "this thing failed to meet this
// condition", and provides supplemental details about the thing
// and the condition.
//
// Note that an unsolvable board is not an Error: search
// exhaustion is a valid outcome of solving, reported as a
// distinct result by Solve, never as an error value.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, a group of squares,
// or a single square.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	GroupScope
	SquareScope
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
// scope/attribute/value failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	DuplicateAssignmentCondition
	NotInSetCondition
	DuplicateGroupValuesCondition
	WrongBoardSizeCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	RowAttribute
	ColumnAttribute
	ValueAttribute
	AssignedValueAttribute
	BoardSizeAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as minimum required values).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so errors can be cached and persisted along
// with the boards that produced them.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
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
	case ArgumentScope:
		es = "Invalid argument: "
	case GroupScope:
		es = fmt.Sprintf("Problem in %v: ", nextVal())
	case SquareScope:
		es = fmt.Sprintf("Problem in square %v: ", nextVal())
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case RowAttribute:
			es += "Row"
		case ColumnAttribute:
			es += "Column"
		case ValueAttribute:
			es += "Value"
		case AssignedValueAttribute:
			es += "Assigned value"
		case BoardSizeAttribute:
			es += "Board size"
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
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case DuplicateAssignmentCondition:
		es += fmt.Sprintf("Square is already assigned value %v", nextVal())
	case NotInSetCondition:
		es += fmt.Sprintf("Must be in possible values %v", nextVal())
	case DuplicateGroupValuesCondition:
		es += fmt.Sprintf("Multiple squares have value %v", nextVal())
	case WrongBoardSizeCondition:
		es += fmt.Sprintf("Must be exactly %v values", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// IsMalformed reports whether err describes starting input that
// can't make a board: a grid of the wrong size, an out-of-range
// value, or a digit duplicated within a row, column, or tile.
// These are the errors New returns; they are reported before any
// search begins and are never retried.
func IsMalformed(err error) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Scope == ArgumentScope ||
		(e.Scope == GroupScope && e.Condition == DuplicateGroupValuesCondition)
}

// IsInvalidPlacement reports whether err came from a Set whose
// value is not currently legal at the target square.
func IsInvalidPlacement(err error) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Scope == SquareScope &&
		(e.Condition == NotInSetCondition || e.Condition == DuplicateAssignmentCondition)
}

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// sizeError returns an Error for a value slice that isn't one
// value per square.
func sizeError(size int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: BoardSizeAttribute,
		Condition: WrongBoardSizeCondition,
		Values:    ErrorData{size, CellCount},
	}
}

// groupError returns an Error for a digit that appears more than
// once in a group of the starting values.
func groupError(gid GroupID, v int) Error {
	return Error{
		Scope:     GroupScope,
		Structure: ScopeStructure,
		Condition: DuplicateGroupValuesCondition,
		Values:    ErrorData{gid, v},
	}
}

// placementError returns an Error from an attempted assignment
// of a digit that is not among a square's possible values.  The
// square has not been modified when this error is returned.
func placementError(index, v int, pvals intset) Error {
	return Error{
		Scope:     SquareScope,
		Structure: AttributeValueStructure,
		Attribute: ValueAttribute,
		Condition: NotInSetCondition,
		Values:    ErrorData{index, v, pvals},
	}
}

// assignedError returns an Error from an attempted assignment to
// a square that already holds a digit.
func assignedError(index, v, old int) Error {
	return Error{
		Scope:     SquareScope,
		Structure: AttributeValueStructure,
		Attribute: AssignedValueAttribute,
		Condition: DuplicateAssignmentCondition,
		Values:    ErrorData{index, v, old},
	}
}
