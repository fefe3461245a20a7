package puzzle

import (
	"testing"
)

func TestIndexMapping(t *testing.T) {
	for r := 0; r < SideLength; r++ {
		for c := 0; c < SideLength; c++ {
			i := cellIndex(r, c)
			if rowOf(i) != r || colOf(i) != c {
				t.Fatalf("Index %d maps to (%d, %d), not (%d, %d)",
					i, rowOf(i), colOf(i), r, c)
			}
		}
	}
}

func TestTileOf(t *testing.T) {
	tcs := []struct {
		row, col, tile int
	}{
		{0, 0, 0}, {2, 2, 0}, {0, 3, 1}, {1, 8, 2},
		{3, 0, 3}, {4, 4, 4}, {5, 7, 5},
		{6, 2, 6}, {8, 5, 7}, {8, 8, 8},
	}
	for _, tc := range tcs {
		if got := tileOf(cellIndex(tc.row, tc.col)); got != tc.tile {
			t.Errorf("tileOf(%d, %d) is %d (expected %d)", tc.row, tc.col, got, tc.tile)
		}
	}
	// every tile must hold exactly one square per digit
	var counts [SideLength]int
	for i := 0; i < CellCount; i++ {
		counts[tileOf(i)]++
	}
	for tile, n := range counts {
		if n != SideLength {
			t.Errorf("Tile %d holds %d squares.", tile, n)
		}
	}
}

func TestGroupIDString(t *testing.T) {
	if got := (GroupID{GtypeRow, 3}).String(); got != "row 3" {
		t.Errorf("GroupID string is %q", got)
	}
	if got := (GroupID{}).String(); got != "<group> 0" {
		t.Errorf("Zero GroupID string is %q", got)
	}
}
