// Package game wires the selection engine to the render and input
// backends: one Game per round, owned by the Manager.
package game

import (
	"github.com/rs/zerolog"

	"wordrush.gg/wordrush/internal/grid"
	"wordrush.gg/wordrush/internal/pointer"
	"wordrush.gg/wordrush/internal/render"
	"wordrush.gg/wordrush/internal/selection"
	"wordrush.gg/wordrush/internal/ui/hud"
)

// Game holds the state of one round: the board, the live selection
// session and the round bookkeeping around it.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Grid    *grid.Grid
	Session *selection.Session
	Tracker *pointer.Tracker

	Renderer render.Renderer
	InputMgr render.InputManager
	GameHUD  *hud.HUD

	Log zerolog.Logger

	// Round state
	Score     int
	Combo     int
	Words     []ScoredWord
	TimeLeft  float64
	comboLeft float64 // time until the streak lapses

	// Transient visuals
	lastWord string  // most recent submission, shown briefly
	bannerT  float64 // seconds the banner stays up
}

// New creates a game for one round over the given board.
func New(g *grid.Grid, cfg *selection.Config, r render.Renderer, input render.InputManager,
	width, height int, log zerolog.Logger) *Game {

	gm := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Grid:         g,
		Tracker:      pointer.NewTracker(input),
		Renderer:     r,
		InputMgr:     input,
		GameHUD:      hud.New(nil, width, height),
		Log:          log,
		TimeLeft:     roundDuration,
	}

	s := selection.NewSession(g, cfg)
	s.LayoutFunc = gm.layout
	s.Emitter = gm
	s.Feedback = &logFeedback{log: log}
	s.OnSelectionStarted = func(first grid.Cell) {
		log.Debug().Str("letter", string(first.Letter)).Msg("selection started")
	}
	s.OnCellAdded = func(c grid.Cell, pathLen, combo int) {
		log.Debug().
			Str("letter", string(c.Letter)).
			Int("len", pathLen).
			Int("combo", combo).
			Msg("cell added")
	}
	gm.Session = s
	return gm
}

// Update advances the round by one tick.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0

	g.TimeLeft -= dt
	if g.TimeLeft <= 0 {
		g.TimeLeft = 0
		g.Session.SetInteractive(false)
	}

	for _, sm := range g.Tracker.Poll() {
		g.Session.HandleSample(sm)
	}
	g.Session.Advance(dt)

	// The streak lapses after a quiet spell with no submissions.
	if g.Combo > 0 {
		g.comboLeft -= dt
		if g.comboLeft <= 0 {
			g.Combo = 0
			g.Session.SetComboLevel(0)
			g.Log.Debug().Msg("combo lapsed")
		}
	}

	if g.bannerT > 0 {
		g.bannerT -= dt
	}

	return nil
}

// RoundOver reports whether the round timer has expired and no fade is
// still playing out.
func (g *Game) RoundOver() bool {
	return g.TimeLeft <= 0 && g.Session.State() != selection.StateFading
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// WordSubmitted implements selection.WordEmitter. The client credits
// points optimistically (length times the streak multiplier) and bumps
// the streak it feeds back into the session; a server hookup would
// replace this with authoritative results arriving through the same port.
func (g *Game) WordSubmitted(letters string) {
	points := len([]rune(letters)) * (g.Combo + 1)
	g.Score += points
	g.Words = append(g.Words, ScoredWord{Word: letters, Points: points, Combo: g.Combo})

	g.Combo++
	g.comboLeft = comboWindow
	g.Session.SetComboLevel(g.Combo)

	g.lastWord = letters
	g.bannerT = 1.2

	g.Log.Info().
		Str("word", letters).
		Int("points", points).
		Int("combo", g.Combo).
		Msg("word submitted")
}

// layout computes the board geometry for the current screen, centered in
// the space left of the HUD panel. Asked fresh on every resolve, so a
// future resize or animation shifts selection along with the pixels.
func (g *Game) layout() grid.Layout {
	const cellSize = 72.0
	const gap = 8.0

	cols := float64(g.Grid.Cols())
	rows := float64(g.Grid.Rows())
	boardW := cols*cellSize + (cols-1)*gap
	boardH := rows*cellSize + (rows-1)*gap

	viewW := float64(g.ScreenWidth - 180) // HUD panel width
	return grid.Layout{
		OriginX:  (viewW - boardW) / 2,
		OriginY:  (float64(g.ScreenHeight) - boardH) / 2,
		CellSize: cellSize,
		Gap:      gap,
	}
}
