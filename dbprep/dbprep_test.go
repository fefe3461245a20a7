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
	"fmt"
	"os"
	"testing"
)

// These tests need live Redis and Postgres servers, and they
// reset both, so they only run when the connection URLs are
// given explicitly.
func TestMain(m *testing.M) {
	if os.Getenv("DATABASE_URL") == "" || os.Getenv("REDIS_URL") == "" {
		fmt.Println("dbprep: skipping tests: DATABASE_URL and REDIS_URL must both be set")
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func TestSchemaUpDown(t *testing.T) {
	if err := RemoveData(); err != nil {
		t.Fatalf("Failed to remove prior data: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		t.Fatalf("Failed to get schema version: %v", err)
	}
	if version != 0 {
		t.Fatalf("Schema version after teardown: %d", version)
	}
	if err := SchemaUp(); err != nil {
		t.Fatalf("Failed to install schema: %v", err)
	}
	version, err = SchemaVersion()
	if err != nil {
		t.Fatalf("Failed to get schema version: %v", err)
	}
	if version == 0 {
		t.Errorf("Schema version still 0 after install.")
	}
	// a second up must be a no-op, not an error
	if err := SchemaUp(); err != nil {
		t.Errorf("Re-install of schema failed: %v", err)
	}
}

func TestEnsureData(t *testing.T) {
	if err := RemoveData(); err != nil {
		t.Fatalf("Failed to remove prior data: %v", err)
	}
	if err := EnsureData(); err != nil {
		t.Fatalf("Failed to ensure data: %v", err)
	}
	// idempotent
	if err := EnsureData(); err != nil {
		t.Errorf("Second ensure failed: %v", err)
	}
}

func TestDataUpDown(t *testing.T) {
	if err := EnsureData(); err != nil {
		t.Fatalf("Failed to ensure data: %v", err)
	}
	if err := DataDown(); err != nil {
		t.Errorf("Failed to remove sample data: %v", err)
	}
	if err := DataUp(); err != nil {
		t.Errorf("Failed to reload sample data: %v", err)
	}
}

func TestClearCache(t *testing.T) {
	if err := ClearCache(); err != nil {
		t.Errorf("Failed to clear cache: %v", err)
	}
}

func TestClearCacheUnreachable(t *testing.T) {
	old := os.Getenv("REDIS_URL")
	os.Setenv("REDIS_URL", "redis://localhost:1/")
	defer os.Setenv("REDIS_URL", old)
	if err := ClearCache(); err == nil {
		t.Errorf("Cleared a cache that isn't there.")
	}
}

func TestReinitializeAll(t *testing.T) {
	if err := ReinitializeAll(); err != nil {
		t.Errorf("Failed to reinitialize: %v", err)
	}
}

func TestSolveSamples(t *testing.T) {
	// the sample library must stay solvable no matter what
	// servers are around
	for i, text := range sampleTexts {
		id, values, solution, err := solveSample(text)
		if err != nil {
			t.Fatalf("sample %d: %v", i+1, err)
		}
		if len(id) != 81 || len(values) != 81 || len(solution) != 81 {
			t.Errorf("sample %d: wrong shapes: %d/%d/%d",
				i+1, len(id), len(values), len(solution))
		}
		for j, v := range values {
			if v != 0 && solution[j] != v {
				t.Errorf("sample %d: square %d changed from %d to %d",
					i+1, j, v, solution[j])
			}
		}
	}
}
