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

// Tear down the solution store: flush the cache and remove the
// database schema with all saved solutions.
package main

import (
	"log"

	"github.com/n-r-s-o/Sudoku-Solver/dbprep"
)

func main() {
	log.Printf("Removing solution storage and cache...")
	if err := dbprep.RemoveData(); err != nil {
		log.Fatalf("Couldn't remove storage: %v", err)
	}
	log.Printf("Solution storage removed.")
}
