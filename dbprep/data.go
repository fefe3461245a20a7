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

package dbprep

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/n-r-s-o/Sudoku-Solver/puzzle"
)

/*

entries

*/

type dataFunction func(pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample solutions into the database.  You
// should do this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample solutions from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}
	ctx := context.Background()

	// open the database, defer the close
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return err
		}
	}
	return nil
}

/*

sample data

*/

// The sample library: well-known puzzles whose solutions are
// worth having in place before the first request arrives.
var sampleTexts = []string{
	// one-star daily
	"400003502" +
		"009506340" +
		"000000008" +
		"000034860" +
		"004605200" +
		"028790000" +
		"900000000" +
		"087302900" +
		"502900006",
	// three-star daily
	"010506020" +
		"000003018" +
		"000070006" +
		"005000030" +
		"008090700" +
		"060000400" +
		"500040000" +
		"640200000" +
		"030901080",
}

// solveSample solves one sample text, returning the pieces of
// its solutions row.
func solveSample(text string) (id string, values, solution []int32, err error) {
	b, err := puzzle.Parse(text)
	if err != nil {
		return "", nil, nil, fmt.Errorf("Bad sample %q: %v", text, err)
	}
	id = b.Digits()
	sol, ok := b.Solve()
	if !ok {
		return "", nil, nil, fmt.Errorf("Sample %q is unsolvable", id)
	}
	values = make([]int32, len(text))
	for i, r := range text {
		values[i] = int32(r - '0')
	}
	solution = make([]int32, len(sol.Values))
	for i, v := range sol.Values {
		solution[i] = int32(v)
	}
	return id, values, solution, nil
}

// insertSamples: solve each sample puzzle and store the result.
// Samples that are already stored are left alone.
func insertSamples(tx pgx.Tx) error {
	for _, text := range sampleTexts {
		id, values, solution, err := solveSample(text)
		if err != nil {
			return err
		}
		_, err = tx.Exec(context.Background(),
			"INSERT INTO solutions (puzzleId, valueList, solutionList, solvable, created) "+
				"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (puzzleId) DO NOTHING",
			id, values, solution, true, time.Now())
		if err != nil {
			return fmt.Errorf("Database error saving sample %q: %v", id, err)
		}
	}
	return nil
}

// deleteSamples: remove the sample solutions.
func deleteSamples(tx pgx.Tx) error {
	for _, text := range sampleTexts {
		b, err := puzzle.Parse(text)
		if err != nil {
			return fmt.Errorf("Bad sample %q: %v", text, err)
		}
		_, err = tx.Exec(context.Background(),
			"DELETE FROM solutions WHERE puzzleId = $1", b.Digits())
		if err != nil {
			return fmt.Errorf("Database error deleting sample %q: %v", b.Digits(), err)
		}
	}
	return nil
}
