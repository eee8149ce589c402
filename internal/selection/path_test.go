package selection

import (
	"testing"

	"wordrush.gg/wordrush/internal/grid"
)

func cell(row, col int, letter rune) grid.Cell {
	return grid.Cell{Pos: grid.Position{Row: row, Col: col}, Letter: letter}
}

func pathOf(cells ...grid.Cell) []grid.Cell {
	return append([]grid.Cell(nil), cells...)
}

var (
	cellA = cell(0, 0, 'A')
	cellB = cell(0, 1, 'B')
	cellC = cell(1, 1, 'C')
	cellD = cell(2, 1, 'D')
)

func TestApplyFirstCell(t *testing.T) {
	path, change := Apply(nil, cellA)
	if change != ChangeStart {
		t.Fatalf("change = %v, want ChangeStart", change)
	}
	if len(path) != 1 || path[0].Pos != cellA.Pos {
		t.Fatalf("path = %v, want [A]", path)
	}
}

func TestApplyRepeatTailIsNoop(t *testing.T) {
	in := pathOf(cellA, cellB)
	path, change := Apply(in, cellB)
	if change != ChangeNone {
		t.Fatalf("change = %v, want ChangeNone", change)
	}
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
}

func TestApplyExtendAdjacent(t *testing.T) {
	path, change := Apply(pathOf(cellA), cellB)
	if change != ChangeExtend {
		t.Fatalf("change = %v, want ChangeExtend", change)
	}
	if Word(path) != "AB" {
		t.Fatalf("Word = %q, want AB", Word(path))
	}

	// Diagonal extension is legal too.
	path, change = Apply(path, cell(1, 2, 'X'))
	if change != ChangeExtend {
		t.Fatalf("diagonal change = %v, want ChangeExtend", change)
	}
	if Word(path) != "ABX" {
		t.Fatalf("Word = %q, want ABX", Word(path))
	}
}

func TestApplyRejectsNonAdjacent(t *testing.T) {
	// Path ends at (2,2); candidate (2,4) is two columns away and must be
	// rejected no matter what else is going on.
	tail := cell(2, 2, 'Z')
	jump := cell(2, 4, 'J')
	path, change := Apply(pathOf(cell(2, 1, 'Y'), tail), jump)
	if change != ChangeNone {
		t.Fatalf("change = %v, want ChangeNone", change)
	}
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
}

func TestApplyBacktrack(t *testing.T) {
	// Given [A,B,C,D]: resolving C again truncates to [A,B,C];
	// resolving B or A (not second-to-last) changes nothing.
	full := pathOf(cellA, cellB, cellC, cellD)

	path, change := Apply(pathOf(cellA, cellB, cellC, cellD), cellC)
	if change != ChangeBacktrack {
		t.Fatalf("backtrack to C: change = %v, want ChangeBacktrack", change)
	}
	if len(path) != 3 || path[2].Pos != cellC.Pos {
		t.Fatalf("backtrack to C: path = %v, want [A B C]", path)
	}

	path, change = Apply(pathOf(cellA, cellB, cellC, cellD), cellB)
	if change != ChangeNone || len(path) != len(full) {
		t.Fatalf("revisit B: change = %v len = %d, want ChangeNone len 4", change, len(path))
	}

	path, change = Apply(pathOf(cellA, cellB, cellC, cellD), cellA)
	if change != ChangeNone || len(path) != len(full) {
		t.Fatalf("revisit A: change = %v len = %d, want ChangeNone len 4", change, len(path))
	}
}

func TestApplyBacktrackToSingle(t *testing.T) {
	path, change := Apply(pathOf(cellA, cellB), cellA)
	if change != ChangeBacktrack {
		t.Fatalf("change = %v, want ChangeBacktrack", change)
	}
	if len(path) != 1 || path[0].Pos != cellA.Pos {
		t.Fatalf("path = %v, want [A]", path)
	}
}

func TestWord(t *testing.T) {
	if got := Word(nil); got != "" {
		t.Errorf("Word(nil) = %q, want empty", got)
	}
	if got := Word(pathOf(cell(0, 0, 'C'), cell(0, 1, 'A'), cell(0, 2, 'T'))); got != "CAT" {
		t.Errorf("Word = %q, want CAT", got)
	}
}
