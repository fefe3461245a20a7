// Package puzzle provides a model for 9x9 Sudoku boards and a
// solver for them.
//
// In this package, boards are made of squares which are either
// empty (represented with a 0 value) or hold an assigned digit
// between 1 and 9 (inclusive).  For each row, column, and tile
// of a board, the implementation maintains a candidate set: the
// digits not yet assigned anywhere in that group.  A digit is
// legal in an empty square exactly when it is in the candidate
// sets of all three groups containing the square, so the
// intersection of those three sets gives the square's possible
// values.
//
// The candidate sets are maintained incrementally: every
// placement removes its digit from three sets, and every removal
// restores it.  Boards whose starting values already duplicate a
// digit within a group cannot be constructed; New rejects them
// with a malformed-input Error before any solving begins.
package puzzle

/*

Sudoku board representation

*/

// A Board holds the grid state and the group candidate sets.
// The zero Board is not usable; construct one with New.
//
// A Board is exclusively owned by its caller: the solver mutates
// it in place and nothing in this package retains a reference,
// so distinct Boards can be solved concurrently.
type Board struct {
	cells [CellCount]int
	rows  [SideLength]intset
	cols  [SideLength]intset
	tiles [SideLength]intset
}

// New creates a Board from 81 row-major cell values, 0 meaning
// an empty square.  The candidate sets are built incrementally
// as the given values are placed, so input that duplicates a
// digit within a group is caught here, as is any out-of-range
// value or a value slice of the wrong size.  Errors from New
// satisfy IsMalformed.
func New(values []int) (*Board, error) {
	if len(values) != CellCount {
		return nil, sizeError(len(values))
	}
	b := &Board{}
	for i := 0; i < SideLength; i++ {
		b.rows[i] = newIntsetRange(SideLength)
		b.cols[i] = newIntsetRange(SideLength)
		b.tiles[i] = newIntsetRange(SideLength)
	}
	for i, v := range values {
		if v < 0 || v > SideLength {
			return nil, rangeError(ValueAttribute, v, 0, SideLength)
		}
		if v == 0 {
			continue
		}
		b.cells[i] = v
		if !b.rows[rowOf(i)].remove(v) {
			return nil, groupError(GroupID{GtypeRow, rowOf(i)}, v)
		}
		if !b.cols[colOf(i)].remove(v) {
			return nil, groupError(GroupID{GtypeCol, colOf(i)}, v)
		}
		if !b.tiles[tileOf(i)].remove(v) {
			return nil, groupError(GroupID{GtypeTile, tileOf(i)}, v)
		}
	}
	return b, nil
}

// Set assigns a digit to the square at (row, col), or clears the
// square if the value is 0.  An assigned digit must be a current
// candidate of all three groups containing the square; if it is
// not, or if the square is already assigned, the board is left
// untouched and the returned error satisfies IsInvalidPlacement.
// Clearing restores the old digit to the three candidate sets.
//
// This is a defensive check for external callers; the solver
// places values it has already read from the candidate sets and
// so never trips it.
func (b *Board) Set(row, col, value int) error {
	if row < 0 || row >= SideLength {
		return rangeError(RowAttribute, row, 0, SideLength-1)
	}
	if col < 0 || col >= SideLength {
		return rangeError(ColumnAttribute, col, 0, SideLength-1)
	}
	if value < 0 || value > SideLength {
		return rangeError(ValueAttribute, value, 0, SideLength)
	}
	i := cellIndex(row, col)
	if value == 0 {
		if old := b.cells[i]; old != 0 {
			b.unplace(i, old)
		}
		return nil
	}
	if b.cells[i] != 0 {
		return assignedError(i, value, b.cells[i])
	}
	pvals := b.Candidates(row, col)
	if _, ok := pvals.find(value); !ok {
		return placementError(i, value, pvals)
	}
	b.place(i, value)
	return nil
}

// Candidates returns the digits legal at (row, col): the values
// simultaneously present in the row, column, and tile candidate
// sets.  For an assigned square the result is empty.  An empty
// result for an empty square means the square has no legal value
// and the board, as it stands, cannot be completed.  The result
// shares no storage with the board.
func (b *Board) Candidates(row, col int) intset {
	i := cellIndex(row, col)
	if b.cells[i] != 0 {
		return intset{}
	}
	return newIntsetIntersection(b.rows[row], b.cols[col], b.tiles[tileOf(i)])
}

// IsComplete reports whether every square is assigned.
func (b *Board) IsComplete() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// IsValid reports whether no group contains a duplicated digit.
// Boards maintain this invariant incrementally, so IsValid is a
// wholesale re-check meant for validating externally produced
// grids (for example, a solved grid loaded from storage), not
// for per-step use.
func (b *Board) IsValid() bool {
	var rows, cols, tiles [SideLength][SideLength + 1]bool
	for i, v := range b.cells {
		if v == 0 {
			continue
		}
		if rows[rowOf(i)][v] || cols[colOf(i)][v] || tiles[tileOf(i)][v] {
			return false
		}
		rows[rowOf(i)][v] = true
		cols[colOf(i)][v] = true
		tiles[tileOf(i)][v] = true
	}
	return true
}

// Values returns the board's cell values in row-major order.
// The result does not share storage with the board.
func (b *Board) Values() []int {
	vs := make([]int, CellCount)
	copy(vs, b.cells[:])
	return vs
}

// place fills an empty square and removes the digit from its
// three group candidate sets.  No legality checking: callers
// (Set and the solver) only place current candidates.
func (b *Board) place(i, v int) {
	b.cells[i] = v
	b.rows[rowOf(i)].remove(v)
	b.cols[colOf(i)].remove(v)
	b.tiles[tileOf(i)].remove(v)
}

// unplace clears a square and restores the digit to its three
// group candidate sets.  This exactly reverses a prior place of
// the same digit, so a place/unplace pair leaves the board
// bit-for-bit as it was.
func (b *Board) unplace(i, v int) {
	b.cells[i] = 0
	b.rows[rowOf(i)].insert(v)
	b.cols[colOf(i)].insert(v)
	b.tiles[tileOf(i)].insert(v)
}

/*

Integer sets

*/

// An intset is a set of integers, represented as a sorted slice.
// We use intsets to represent the candidate sets of groups and
// the possible values of squares.
type intset []int

// newIntsetRange: Make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: Make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// newIntsetIntersection: Make an intset holding the values
// present in all three inputs.  A three-way sorted merge; the
// result shares no storage with the inputs.
func newIntsetIntersection(a, b, c intset) intset {
	out := make(intset, 0, len(a))
	ai, bi, ci := 0, 0, 0
	for ai < len(a) && bi < len(b) && ci < len(c) {
		av, bv, cv := a[ai], b[bi], c[ci]
		if av == bv && bv == cv {
			out = append(out, av)
			ai, bi, ci = ai+1, bi+1, ci+1
			continue
		}
		// advance whichever sets are at the smallest value
		min := av
		if bv < min {
			min = bv
		}
		if cv < min {
			min = cv
		}
		if av == min {
			ai++
		}
		if bv == min {
			bi++
		}
		if cv == min {
			ci++
		}
	}
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	// see https://github.com/golang/go/wiki/SliceTricks
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
