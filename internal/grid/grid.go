// Package grid holds the letter board and its on-screen geometry.
// A Grid is immutable once built: the selection engine reads letters and
// bounds from it but never writes, so one Grid safely serves a whole round.
package grid

import "fmt"

// Position identifies a single cell by row and column.
type Position struct {
	Row int
	Col int
}

// Adjacent reports whether q is exactly one king-move away from p:
// both deltas at most 1 and not the same cell (8-directional adjacency).
func (p Position) Adjacent(q Position) bool {
	if p == q {
		return false
	}
	dr := p.Row - q.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - q.Col
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1
}

// Cell is a position together with the letter captured at selection time.
// The board never changes mid-round, so the letter is redundant with the
// position, but emitters downstream want it without a grid lookup.
type Cell struct {
	Pos    Position
	Letter rune
}

// Grid is an immutable rows x cols board of single letters.
type Grid struct {
	rows    int
	cols    int
	letters [][]rune
}

// New builds a grid from rows of letters. All rows must have the same
// length. A nil or empty slice yields a zero-size grid, which is legal:
// it simply resolves no cells (the caller decides whether to present it).
func New(letters [][]rune) (*Grid, error) {
	g := &Grid{}
	if len(letters) == 0 {
		return g, nil
	}
	cols := len(letters[0])
	rows := make([][]rune, len(letters))
	for i, row := range letters {
		if len(row) != cols {
			return nil, fmt.Errorf("grid row %d has %d letters, want %d", i, len(row), cols)
		}
		rows[i] = append([]rune(nil), row...)
	}
	g.rows = len(rows)
	g.cols = cols
	g.letters = rows
	return g, nil
}

// FromStrings builds a grid from one string per row, e.g.
// {"CAT", "ORS", "WDE"} for a 3x3 board.
func FromStrings(rows []string) (*Grid, error) {
	letters := make([][]rune, len(rows))
	for i, row := range rows {
		letters[i] = []rune(row)
	}
	return New(letters)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether p lies inside the board bounds.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Letter returns the letter at p, or 0 when p is out of bounds.
func (g *Grid) Letter(p Position) rune {
	if !g.Contains(p) {
		return 0
	}
	return g.letters[p.Row][p.Col]
}

// CellAt returns the cell at p and whether p is in bounds.
func (g *Grid) CellAt(p Position) (Cell, bool) {
	if !g.Contains(p) {
		return Cell{}, false
	}
	return Cell{Pos: p, Letter: g.letters[p.Row][p.Col]}, true
}
