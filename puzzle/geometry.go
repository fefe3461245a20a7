package puzzle

/*

Board geometry

This module solves the standard 9x9 Sudoku geometry: nine rows,
nine columns, and nine non-overlapping 3x3 tiles (also called
blocks), each of which must end up containing the digits 1
through 9 exactly once.  Squares are numbered in English reading
order, left-to-right and top-to-bottom, starting at 0.

*/

import (
	"fmt"
)

// Geometry constants.  The side length is the tile length
// squared, and every group (row, column, or tile) holds one
// square per possible digit.
const (
	TileLength = 3
	SideLength = TileLength * TileLength
	CellCount  = SideLength * SideLength
)

// Group type names.  These are human-readable but not localized.
const (
	GtypeRow  = "row"
	GtypeCol  = "column"
	GtypeTile = "tile"
)

// A GroupID names a row, column, or tile.  Group numbering is
// 0-based, matching the row and column arguments of the Board
// operations.
type GroupID struct {
	Gtype string `json:"gtype"`
	Index int    `json:"index"`
}

// Group IDs implement Stringer
func (gid GroupID) String() string {
	if gid.Gtype == "" {
		return fmt.Sprintf("<group> %d", gid.Index)
	}
	return fmt.Sprintf("%s %d", gid.Gtype, gid.Index)
}

// cellIndex maps a (row, column) position to its square index.
func cellIndex(row, col int) int {
	return row*SideLength + col
}

// rowOf, colOf, and tileOf map a square index to the index of
// the containing group of each type.
func rowOf(i int) int {
	return i / SideLength
}

func colOf(i int) int {
	return i % SideLength
}

func tileOf(i int) int {
	return (rowOf(i)/TileLength)*TileLength + colOf(i)/TileLength
}
