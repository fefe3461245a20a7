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
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/n-r-s-o/Sudoku-Solver/dbprep"
	"github.com/n-r-s-o/Sudoku-Solver/puzzle"
)

/*

test values

*/

var (
	// not one of the preloaded samples, so the first call must
	// reach the solver
	testPuzzleValues = []int{
		2, 0, 0, 8, 0, 0, 0, 5, 0,
		0, 8, 5, 0, 0, 0, 0, 0, 0,
		0, 3, 6, 7, 5, 0, 0, 0, 1,
		0, 0, 3, 0, 4, 0, 0, 9, 8,
		0, 0, 0, 3, 0, 5, 0, 0, 0,
		4, 1, 0, 0, 6, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 1, 2, 0,
		0, 0, 0, 0, 0, 0, 5, 6, 0,
		0, 2, 0, 0, 0, 0, 0, 0, 4,
	}
	unsolvableTestValues = []int{
		1, 2, 3, 4, 5, 6, 7, 8, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 9,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	malformedTestValues = []int{
		5, 0, 0, 0, 5, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

/*

setup

*/

// These tests need live Redis and Postgres servers, and they
// reset both around the run, so they only run when the
// connection URLs are given explicitly.
func TestMain(m *testing.M) {
	if os.Getenv("DATABASE_URL") == "" || os.Getenv("REDIS_URL") == "" {
		fmt.Println("storage: skipping tests: DATABASE_URL and REDIS_URL must both be set")
		os.Exit(0)
	}
	os.Setenv("DBPREP_PATH", filepath.Join("..", "dbprep", "migrations"))
	if err := dbprep.ReinitializeAll(); err != nil {
		panic(fmt.Errorf("Failed to reinitialize data at startup: %v", err))
	}
	if _, _, err := Connect(); err != nil {
		panic(fmt.Errorf("Failed to connect at startup: %v", err))
	}
	defer func(code int) {
		Close()
		if code == 0 {
			if err := dbprep.ReinitializeAll(); err != nil {
				panic(fmt.Errorf("Failed to reinitialize data at teardown: %v", err))
			}
		}
		os.Exit(code)
	}(m.Run())
}

/*

solving through the store

*/

func TestSolveFreshThenCached(t *testing.T) {
	sol, solvable, err := Solve(testPuzzleValues)
	if err != nil {
		t.Fatalf("Fresh solve failed: %v", err)
	}
	if !solvable {
		t.Fatalf("Solvable puzzle reported unsolvable.")
	}
	check, e := puzzle.New(sol.Values)
	if e != nil || !check.IsComplete() || !check.IsValid() {
		t.Fatalf("Stored solution isn't a complete valid grid: %v", e)
	}

	// second call must come from the cache with the same values
	again, solvable, err := Solve(testPuzzleValues)
	if err != nil || !solvable {
		t.Fatalf("Cached solve failed: %v", err)
	}
	if !reflect.DeepEqual(again.Values, sol.Values) {
		t.Errorf("Cached solution differs from fresh solution.")
	}

	// and after a cache flush it must come from the database
	if err := dbprep.ClearCache(); err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}
	again, solvable, err = Solve(testPuzzleValues)
	if err != nil || !solvable {
		t.Fatalf("Database solve failed: %v", err)
	}
	if !reflect.DeepEqual(again.Values, sol.Values) {
		t.Errorf("Database solution differs from fresh solution.")
	}
}

func TestSolveSampleHit(t *testing.T) {
	// the one-star sample is preloaded by dbprep, so this lookup
	// must succeed without searching
	values, e := puzzle.ParseValues(
		"400003502" +
			"009506340" +
			"000000008" +
			"000034860" +
			"004605200" +
			"028790000" +
			"900000000" +
			"087302900" +
			"502900006")
	if e != nil {
		t.Fatalf("Bad sample text: %v", e)
	}
	sol, solvable, err := Solve(values)
	if err != nil || !solvable {
		t.Fatalf("Sample lookup failed: %v", err)
	}
	for i, v := range values {
		if v != 0 && sol.Values[i] != v {
			t.Errorf("Sample square %d changed from %d to %d.", i, v, sol.Values[i])
		}
	}
}

func TestSolveUnsolvableStored(t *testing.T) {
	for pass := 1; pass <= 2; pass++ {
		sol, solvable, err := Solve(unsolvableTestValues)
		if err != nil {
			t.Fatalf("pass %d: Unsolvable puzzle errored: %v", pass, err)
		}
		if solvable || sol != nil {
			t.Errorf("pass %d: Unsolvable puzzle reported solved.", pass)
		}
	}
}

func TestSolveMalformed(t *testing.T) {
	sol, solvable, err := Solve(malformedTestValues)
	if err == nil || sol != nil || solvable {
		t.Fatalf("Malformed puzzle accepted: %+v, %v, %v", sol, solvable, err)
	}
	if !puzzle.IsMalformed(err) {
		t.Errorf("Malformed puzzle error has wrong kind: %v", err)
	}
}
