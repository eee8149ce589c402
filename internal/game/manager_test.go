package game

import (
	"image/color"
	"testing"

	"github.com/rs/zerolog"

	"wordrush.gg/wordrush/internal/render"
	"wordrush.gg/wordrush/internal/ui/menu"
)

type fakeRenderer struct{}

func (fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}
func (fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color)        {}
func (fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (fakeRenderer) DrawText(render.Image, string, int, int, color.Color, float64) {}
func (fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 6, 13
}

// fakeKeys reports one just-pressed key per tick.
type fakeKeys struct {
	pressed render.Key
	armed   bool
}

func (f *fakeKeys) IsKeyJustPressed(key render.Key) bool { return f.armed && key == f.pressed }

func (f *fakeKeys) CursorPosition() (int, int)                     { return 0, 0 }
func (f *fakeKeys) IsMouseButtonPressed(render.MouseButton) bool   { return false }
func (f *fakeKeys) IsMouseButtonJustPressed(render.MouseButton) bool {
	return false
}
func (f *fakeKeys) IsMouseButtonJustReleased(render.MouseButton) bool {
	return false
}
func (f *fakeKeys) TouchIDs() []render.TouchID              { return nil }
func (f *fakeKeys) TouchPosition(render.TouchID) (int, int) { return 0, 0 }
func (f *fakeKeys) IsTouchJustReleased(render.TouchID) bool { return false }

func newTestManager(t *testing.T, input render.InputManager) *Manager {
	t.Helper()
	m := NewManager(fakeRenderer{}, input, nil, 960, 640, zerolog.Nop())
	if err := m.startRound(menu.Selection{Random: true}); err != nil {
		t.Fatalf("startRound failed: %v", err)
	}
	m.Screen = ScreenPlaying
	return m
}

func TestRestartKeyStartsFreshRound(t *testing.T) {
	keys := &fakeKeys{}
	m := newTestManager(t, keys)

	// Dirty the round, then press R.
	old := m.Game
	old.Score = 40
	old.TimeLeft = 3

	keys.pressed, keys.armed = render.KeyR, true
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if m.Screen != ScreenPlaying {
		t.Fatalf("Screen = %v, want ScreenPlaying", m.Screen)
	}
	if m.Game == old {
		t.Fatal("Restart kept the old round")
	}
	if m.Game.Score != 0 {
		t.Errorf("Score = %d after restart, want 0", m.Game.Score)
	}
	if m.Game.TimeLeft != roundDuration {
		t.Errorf("TimeLeft = %v after restart, want %v", m.Game.TimeLeft, roundDuration)
	}
}

func TestEscapeReturnsToMenu(t *testing.T) {
	keys := &fakeKeys{}
	m := newTestManager(t, keys)

	keys.pressed, keys.armed = render.KeyEscape, true
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if m.Screen != ScreenMenu {
		t.Fatalf("Screen = %v, want ScreenMenu", m.Screen)
	}
	if m.Game != nil {
		t.Error("Game kept alive after leaving the round")
	}
}
