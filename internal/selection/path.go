// Package selection turns guarded pointer samples into an ordered letter
// path and decides when that path is submitted as a candidate word. It is
// pure logic: no rendering, no goroutines, no wall clock. Timers are
// countdowns advanced by the caller's fixed-step tick.
package selection

import (
	"strings"

	"wordrush.gg/wordrush/internal/grid"
)

// Change classifies the outcome of applying a candidate cell to a path.
type Change int

const (
	ChangeNone      Change = iota // candidate ignored, path unchanged
	ChangeStart                   // first cell of a new path
	ChangeExtend                  // candidate appended to the tail
	ChangeBacktrack               // path truncated to the revisited cell
)

// Apply applies one resolved, guard-approved candidate cell to path and
// returns the new path plus what changed. Rules, in order:
//
//  1. The first cell of an empty path is accepted unconditionally.
//  2. A candidate equal to the tail is a no-op.
//  3. A candidate already in the path backtracks only when it is the
//     second-to-last cell (the one the user is retreating to); anywhere
//     else it is ignored, so a drag can never jump backward past more
//     than one cell or re-cross old ground.
//  4. A new candidate extends the path only when it is adjacent
//     (Chebyshev distance exactly 1) to the tail. Anything farther is
//     ignored, so a fast swipe cannot skip over intermediate letters.
//
// The returned slice may share backing storage with the input.
func Apply(path []grid.Cell, c grid.Cell) ([]grid.Cell, Change) {
	if len(path) == 0 {
		return append(path, c), ChangeStart
	}

	last := path[len(path)-1]
	if c.Pos == last.Pos {
		return path, ChangeNone
	}

	for i := range path {
		if path[i].Pos == c.Pos {
			if i == len(path)-2 {
				return path[:i+1], ChangeBacktrack
			}
			return path, ChangeNone
		}
	}

	if !last.Pos.Adjacent(c.Pos) {
		return path, ChangeNone
	}
	return append(path, c), ChangeExtend
}

// Word concatenates the letters of a path in selection order.
func Word(path []grid.Cell) string {
	var b strings.Builder
	for _, c := range path {
		b.WriteRune(c.Letter)
	}
	return b.String()
}
