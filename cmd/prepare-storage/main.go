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

// Rebuild the solution store from scratch: flush the cache, tear
// down any existing schema, install the current schema, and load
// the sample solutions.
package main

import (
	"fmt"
	"log"

	"github.com/n-r-s-o/Sudoku-Solver/dbprep"
)

func main() {
	log.Printf("Rebuilding solution storage and cache...")
	if err := prepareStorage(); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	log.Printf("Solution storage re-initialized.")
}

func prepareStorage() error {
	// flush cached solutions first, so nothing stale survives
	// the schema rebuild
	if err := dbprep.ClearCache(); err != nil {
		return fmt.Errorf("Couldn't clear cache: %v", err)
	}

	// tear down any existing schema
	version, err := dbprep.SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get initial schema version: %v", err)
	}
	if version > 0 {
		if err := dbprep.SchemaDown(); err != nil {
			return fmt.Errorf("Couldn't remove existing schema: %v", err)
		}
	}

	// install the current schema and the sample solutions
	if err := dbprep.SchemaUp(); err != nil {
		return fmt.Errorf("Couldn't install schema: %v", err)
	}
	version, err = dbprep.SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get installed schema version: %v", err)
	}
	if version == 0 {
		return fmt.Errorf("Schema still at version 0 after install.")
	}
	if err := dbprep.DataUp(); err != nil {
		return fmt.Errorf("Couldn't load sample solutions: %v", err)
	}
	return nil
}
