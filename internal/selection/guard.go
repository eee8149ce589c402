package selection

import (
	"math"

	"wordrush.gg/wordrush/internal/grid"
)

// Guard suppresses false positives from imprecise touch input. It holds
// the gesture's start point and remembers once the dead-zone has been
// crossed; a confirmed drag stays confirmed for the rest of the gesture.
type Guard struct {
	startX        float64
	startY        float64
	dragConfirmed bool
}

// Start resets the guard for a new gesture beginning at (x, y).
func (g *Guard) Start(x, y float64) {
	g.startX = x
	g.startY = y
	g.dragConfirmed = false
}

// CrossedDeadzone reports whether the pointer at (x, y) has moved far
// enough from the gesture start to count as intentional. threshold comes
// from the injected provider, so it can differ per input device.
func (g *Guard) CrossedDeadzone(x, y, threshold float64) bool {
	if g.dragConfirmed {
		return true
	}
	if math.Hypot(x-g.startX, y-g.startY) > threshold {
		g.dragConfirmed = true
	}
	return g.dragConfirmed
}

// DragConfirmed reports whether the dead-zone was crossed at any point
// during the current gesture.
func (g *Guard) DragConfirmed() bool { return g.dragConfirmed }

// WithinCenter reports whether a resolved hit lands close enough to the
// cell's center to register. Grazing a cell's edge while crossing toward
// a different cell fails this gate and is simply ignored.
func WithinCenter(h *grid.Hit, fraction float64) bool {
	return h.DistFromCenter <= h.CellRadius*fraction
}
