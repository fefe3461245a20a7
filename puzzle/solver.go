package puzzle

/*

Sudoku board solver

The solver is a recursive depth-first search over the empty
squares of a single board:

1. If the board has no empty squares, it is solved.

2. Otherwise pick the empty square with the fewest possible
values.  Ties go to the square earliest in reading order, so the
search is deterministic.  Picking the most constrained square
first keeps the branching factor low, and picks up squares whose
value is forced (a single possible value) before any guessing
happens.

3. If the chosen square has no possible values, this branch is a
dead end.

4. Try each possible value in ascending order: place it, recurse,
and if the recursion fails take it back out before trying the
next value.  Because the candidate sets are updated symmetrically
by placement and removal, a failed branch leaves the board
bit-for-bit as it was before the branch began.

5. If every value fails, report failure to the level above, which
backtracks in turn.  Failure at the root means the board has no
solution at all, which is a legitimate result of solving, not an
error.

The search space is finite and every branch either succeeds or is
exhausted, so the search always terminates.

*/

// A Choice assigns a value to a square.  The square is referred
// to by its index.
type Choice struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// A Solution is a completed board (expressed as its values) plus
// the sequence of guesses that were made to get there: the
// choices for squares that had more than one possible value when
// they were filled.  Solutions tend to have far fewer choices
// than originally empty squares, because most empty squares in
// most boards have their values forced by the candidate sets.
type Solution struct {
	Values  []int    `json:"values"`
	Choices []Choice `json:"choices,omitempty"`
}

// Solve fills the board's empty squares in place and reports
// whether it succeeded.  On success the board is complete and
// the returned Solution holds its values; the board should be
// treated as immutable from then on.  On failure (an unsolvable
// board) the Solution is nil and the board is left exactly as it
// was when Solve was called.
//
// The same starting board always yields the same solution: the
// square selection and the value ordering of the search are both
// deterministic.
func (b *Board) Solve() (*Solution, bool) {
	choices, ok := b.search(nil)
	if !ok {
		return nil, false
	}
	return &Solution{Values: b.Values(), Choices: choices}, true
}

// search is the recursive heart of Solve.  It accumulates the
// guesses made along the current branch and returns them with
// the success flag.
func (b *Board) search(choices []Choice) ([]Choice, bool) {
	i, pvals := b.mostConstrained()
	if i < 0 {
		return choices, true
	}
	guessed := len(pvals) > 1
	for _, v := range pvals {
		b.place(i, v)
		next := choices
		if guessed {
			next = append(choices, Choice{Index: i, Value: v})
		}
		if out, ok := b.search(next); ok {
			return out, true
		}
		b.unplace(i, v)
	}
	return choices, false
}

// mostConstrained returns the index and possible values of the
// empty square with the fewest possible values, scanning in
// reading order so ties resolve to the earliest square.  A
// square with no possible values is returned immediately: the
// board can't be completed and the caller should fail fast.
// Returns index -1 when the board is complete.
func (b *Board) mostConstrained() (int, intset) {
	best, bestVals := -1, intset(nil)
	for i, v := range b.cells {
		if v != 0 {
			continue
		}
		pvals := b.Candidates(rowOf(i), colOf(i))
		if len(pvals) == 0 {
			return i, pvals
		}
		if best < 0 || len(pvals) < len(bestVals) {
			best, bestVals = i, pvals
		}
	}
	return best, bestVals
}

// CountSolutions counts the board's distinct completions, giving
// up once limit is reached, and leaves the board as it was.  The
// interesting limit is 2: it distinguishes unsolvable boards (0)
// and properly-posed puzzles (1) from ambiguous ones.
func (b *Board) CountSolutions(limit int) int {
	if limit <= 0 {
		return 0
	}
	return b.countSolutions(limit)
}

func (b *Board) countSolutions(limit int) (count int) {
	i, pvals := b.mostConstrained()
	if i < 0 {
		return 1
	}
	for _, v := range pvals {
		b.place(i, v)
		count += b.countSolutions(limit - count)
		b.unplace(i, v)
		if count >= limit {
			break
		}
	}
	return count
}

// Unique reports whether the board has exactly one completion.
func (b *Board) Unique() bool {
	return b.CountSolutions(2) == 1
}
