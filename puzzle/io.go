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
	"strings"
	"unicode"
)

/*

Text forms of boards

*/

// ParseValues converts the text form of a board into its cell
// values.  The text holds one character per square in reading
// order: a digit 1-9 for an assigned square, '0', '.', or '_'
// for an empty one.  Whitespace is ignored, so both 81-character
// one-liners and grids laid out one row per line are accepted.
func ParseValues(s string) ([]int, error) {
	values := make([]int, 0, CellCount)
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '.' || r == '_':
			values = append(values, 0)
		case r >= '0' && r <= '9':
			values = append(values, int(r-'0'))
		default:
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: ValueAttribute,
				Condition: GeneralCondition,
				Values:    ErrorData{string(r), "Not a digit, '.', or '_'"},
			}
		}
	}
	if len(values) != CellCount {
		return nil, sizeError(len(values))
	}
	return values, nil
}

// Parse is a convenience that parses the text form of a board
// and constructs the Board, so it reports both bad characters
// and rule violations in the starting values.
func Parse(s string) (*Board, error) {
	values, err := ParseValues(s)
	if err != nil {
		return nil, err
	}
	return New(values)
}

// Digits returns the compact text form of a board: 81 digit
// characters in reading order, '0' for empty squares.  This form
// round-trips through ParseValues and doubles as the board's
// storage signature.
func (b *Board) Digits() string {
	buf := make([]byte, CellCount)
	for i, v := range b.cells {
		buf[i] = byte('0' + v)
	}
	return string(buf)
}

/*

Pretty-printed boards in strings, for debugging.

*/

// String gives a pretty-printed view of a board, with rules
// between the tiles and '_' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	rule := " " + strings.Repeat("+"+strings.Repeat("-", 2*TileLength+1), TileLength) + "+\n"
	for r := 0; r < SideLength; r++ {
		if r%TileLength == 0 {
			sb.WriteString(rule)
		}
		sb.WriteString(" ")
		for c := 0; c < SideLength; c++ {
			if c%TileLength == 0 {
				sb.WriteString("| ")
			}
			if v := b.cells[cellIndex(r, c)]; v == 0 {
				sb.WriteString("_ ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}
