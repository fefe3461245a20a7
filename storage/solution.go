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

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v4"

	"github.com/n-r-s-o/Sudoku-Solver/puzzle"
)

/*

solve results

*/

// Solve returns the solution for the given starting values (81
// row-major cell values, 0 meaning empty), consulting the cache
// and then the database before running the solver; a fresh
// result is persisted to both, unsolvable outcomes included, so
// no board is ever searched twice.  The solvable flag
// distinguishes the legitimate unsolvable outcome from the
// errors: malformed starting values, or cache/database failures.
//
// A stored hit carries only the solved values; the solver's
// guess list is reported only on the solve that produced it.
func Solve(values []int) (sol *puzzle.Solution, solvable bool, err error) {
	b, err := puzzle.New(values)
	if err != nil {
		return nil, false, err
	}
	entry := &solutionEntry{PuzzleId: b.Digits()}
	err = capture(func() {
		if entry.cacheLoad() {
			return
		}
		if entry.databaseLoad() {
			entry.cacheInsert()
			return
		}
		// not stored anywhere; run the search and keep the outcome
		s, ok := b.Solve()
		entry.Values = toStored(values)
		entry.Solvable = ok
		if ok {
			sol = s
			entry.Solution = toStored(s.Values)
		}
		entry.cacheInsert()
		entry.databaseInsert()
	})
	if err != nil {
		return nil, false, err
	}
	if !entry.Solvable {
		return nil, false, nil
	}
	if sol == nil {
		sol = &puzzle.Solution{Values: fromStored(entry.Solution)}
	}
	return sol, true, nil
}

/*

solution entries

*/

// A solutionEntry represents the stored form of one solve
// result.  It is JSON serializable so it can go into the cache
// as well as the database.
type solutionEntry struct {
	PuzzleId string  // the board's Digits signature
	Values   []int32 // starting values
	Solution []int32 // solved values; nil when unsolvable
	Solvable bool
}

// toStored and fromStored convert between the solver's value
// slices and the database array element type.
func toStored(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}

func fromStored(values []int32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

// key: compute the cache key for a solutionEntry.
func (se *solutionEntry) key() string {
	return "SOL:" + se.PuzzleId
}

// cacheLoad: load an already cached solution entry.  Returns
// whether the entry was found in the cache.
func (se *solutionEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", se.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading solution %q: %v", se.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var sse *solutionEntry
	if err := json.Unmarshal(bytes, &sse); err != nil {
		panic(fmt.Errorf("Failed to unmarshal solution %q: %v", se.PuzzleId, err))
	}
	if sse.PuzzleId != se.PuzzleId {
		panic(fmt.Errorf("Cached solution (id: %q) found for puzzle %q!",
			sse.PuzzleId, se.PuzzleId))
	}
	*se = *sse
	return true
}

// cacheInsert: insert a solution entry into the cache.  Replaces
// any existing entry with the same id.
func (se *solutionEntry) cacheInsert() {
	bytes, e := json.Marshal(se)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal solution %q: %v", se.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", se.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving solution %q: %v", se.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad: load a solution entry from the database.
// Returns whether a saved entry with the given id was found.
func (se *solutionEntry) databaseLoad() bool {
	found := false
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(context.Background(),
			"SELECT valueList, solutionList, solvable FROM solutions "+
				"WHERE puzzleId = $1", se.PuzzleId)
		err := row.Scan(&se.Values, &se.Solution, &se.Solvable)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up solution %q: %v", se.PuzzleId, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return found
}

// databaseInsert: insert a solution entry into the database.  A
// concurrent solve of the same board may have gotten there
// first; since both store the same deterministic result, the
// first writer wins.
func (se *solutionEntry) databaseInsert() {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(context.Background(),
			"INSERT INTO solutions (puzzleId, valueList, solutionList, solvable, created) "+
				"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (puzzleId) DO NOTHING",
			se.PuzzleId, se.Values, se.Solution, se.Solvable, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving solution %q: %v", se.PuzzleId, err)
		}
		return
	}
	pgExecute(body)
}
