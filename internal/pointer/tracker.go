// Package pointer normalizes the input backend's mouse and touch state
// into the (x, y, phase) sample stream the selection engine consumes.
// Mouse and the first active touch are tracked as one logical pointer
// each; additional simultaneous touches are ignored, since a selection
// session only ever owns a single gesture.
package pointer

import (
	"wordrush.gg/wordrush/internal/render"
	"wordrush.gg/wordrush/internal/selection"
)

// Tracker polls the input manager once per tick and reports what the
// pointer did since the previous poll.
type Tracker struct {
	input render.InputManager

	mouseDown bool

	touchActive bool
	touchID     render.TouchID
	touchLastX  int
	touchLastY  int
}

// NewTracker creates a tracker over the given input manager.
func NewTracker(input render.InputManager) *Tracker {
	return &Tracker{input: input}
}

// Poll reads the backend once and returns this tick's samples in order.
// At most one down/move/up per device per tick; a held pointer yields a
// move sample every tick so the engine sees a continuous stream.
func (t *Tracker) Poll() []selection.Sample {
	var samples []selection.Sample
	samples = t.pollMouse(samples)
	samples = t.pollTouch(samples)
	return samples
}

// Reset drops any tracked press without emitting an up sample. Used when
// the surrounding screen changes and a half-finished gesture should not
// leak into the next one.
func (t *Tracker) Reset() {
	t.mouseDown = false
	t.touchActive = false
}

func (t *Tracker) pollMouse(samples []selection.Sample) []selection.Sample {
	x, y := t.input.CursorPosition()
	fx, fy := float64(x), float64(y)

	if t.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		t.mouseDown = true
		samples = append(samples, selection.Sample{X: fx, Y: fy, Phase: selection.PhaseDown, Source: selection.SourceMouse})
		// A click shorter than one tick shows both edges in the same poll.
		// Deliver the release here too, or the gesture never ends: neither
		// edge fires again next tick.
		if t.input.IsMouseButtonJustReleased(render.MouseButtonLeft) {
			t.mouseDown = false
			samples = append(samples, selection.Sample{X: fx, Y: fy, Phase: selection.PhaseUp, Source: selection.SourceMouse})
		}
		return samples
	}
	if t.input.IsMouseButtonJustReleased(render.MouseButtonLeft) {
		if t.mouseDown {
			t.mouseDown = false
			return append(samples, selection.Sample{X: fx, Y: fy, Phase: selection.PhaseUp, Source: selection.SourceMouse})
		}
		return samples
	}
	if t.mouseDown && t.input.IsMouseButtonPressed(render.MouseButtonLeft) {
		return append(samples, selection.Sample{X: fx, Y: fy, Phase: selection.PhaseMove, Source: selection.SourceMouse})
	}
	return samples
}

func (t *Tracker) pollTouch(samples []selection.Sample) []selection.Sample {
	ids := t.input.TouchIDs()

	if !t.touchActive {
		if len(ids) == 0 {
			return samples
		}
		t.touchActive = true
		t.touchID = ids[0]
		t.touchLastX, t.touchLastY = t.input.TouchPosition(t.touchID)
		return append(samples, selection.Sample{
			X: float64(t.touchLastX), Y: float64(t.touchLastY),
			Phase: selection.PhaseDown, Source: selection.SourceTouch,
		})
	}

	for _, id := range ids {
		if id == t.touchID {
			t.touchLastX, t.touchLastY = t.input.TouchPosition(id)
			return append(samples, selection.Sample{
				X: float64(t.touchLastX), Y: float64(t.touchLastY),
				Phase: selection.PhaseMove, Source: selection.SourceTouch,
			})
		}
	}

	// The tracked touch is gone; report the lift at its last known spot.
	t.touchActive = false
	phase := selection.PhaseUp
	if !t.input.IsTouchJustReleased(t.touchID) {
		// Lost without a release event (e.g. the OS swallowed it).
		phase = selection.PhaseCancel
	}
	return append(samples, selection.Sample{
		X: float64(t.touchLastX), Y: float64(t.touchLastY),
		Phase: phase, Source: selection.SourceTouch,
	})
}
