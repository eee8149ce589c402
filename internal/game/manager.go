package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"wordrush.gg/wordrush/internal/board"
	"wordrush.gg/wordrush/internal/grid"
	"wordrush.gg/wordrush/internal/render"
	"wordrush.gg/wordrush/internal/selection"
	"wordrush.gg/wordrush/internal/ui/menu"
)

// Screen identifies which top-level screen the manager is showing.
type Screen int

const (
	ScreenMenu    Screen = iota // title and board selection
	ScreenPlaying               // a round in progress
	ScreenResults               // round summary
)

// Default board dimensions for generated boards.
const (
	randomRows = 4
	randomCols = 4
)

// Manager handles the overall flow: menu, the active round, and the
// results screen between rounds.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Screen       Screen

	MainMenu *menu.Menu
	Game     *Game

	Renderer render.Renderer
	InputMgr render.InputManager

	Tuning *selection.Config
	Log    zerolog.Logger

	rng     *rand.Rand
	lastSel menu.Selection // what started the current round; R replays it
}

// NewManager creates the manager. A nil tuning config uses the defaults.
func NewManager(r render.Renderer, input render.InputManager, tuning *selection.Config,
	width, height int, log zerolog.Logger) *Manager {

	if tuning == nil {
		tuning = selection.DefaultConfig()
	}
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Screen:       ScreenMenu,
		Renderer:     r,
		InputMgr:     input,
		Tuning:       tuning,
		Log:          log,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetMainMenu sets the title screen.
func (m *Manager) SetMainMenu(mainMenu *menu.Menu) {
	m.MainMenu = mainMenu
}

// Update updates whichever screen is active.
func (m *Manager) Update() error {
	switch m.Screen {
	case ScreenMenu:
		if m.MainMenu == nil {
			return nil
		}
		start, sel := m.MainMenu.Update()
		if start {
			if err := m.startRound(sel); err != nil {
				m.Log.Error().Err(err).Msg("failed to start round")
				return nil
			}
			m.Screen = ScreenPlaying
		}
	case ScreenPlaying:
		if m.Game == nil {
			m.Screen = ScreenMenu
			return nil
		}
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.Screen = ScreenMenu
			m.Game = nil
			return nil
		}
		if m.InputMgr.IsKeyJustPressed(render.KeyR) {
			if err := m.startRound(m.lastSel); err != nil {
				m.Log.Error().Err(err).Msg("failed to restart round")
			}
			return nil
		}
		if err := m.Game.Update(); err != nil {
			return err
		}
		if m.Game.RoundOver() {
			m.Log.Info().Int("score", m.Game.Score).Int("words", len(m.Game.Words)).Msg("round over")
			m.Screen = ScreenResults
		}
	case ScreenResults:
		if m.InputMgr.IsKeyJustPressed(render.KeySpace) ||
			m.InputMgr.IsKeyJustPressed(render.KeyEnter) ||
			m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
			m.Game = nil
			m.Screen = ScreenMenu
		}
	}
	return nil
}

// startRound builds the board for the selection and spins up a new Game.
// Random selections roll a fresh board each time, including on restart.
func (m *Manager) startRound(sel menu.Selection) error {
	m.lastSel = sel
	var (
		g   *grid.Grid
		err error
	)
	if sel.Random {
		g = board.Generate(m.rng, randomRows, randomCols)
	} else {
		g, err = board.Load(sel.Board.Path)
		if err != nil {
			return err
		}
	}

	m.Game = New(g, m.Tuning, m.Renderer, m.InputMgr, m.ScreenWidth, m.ScreenHeight, m.Log)
	m.Log.Info().
		Int("rows", g.Rows()).
		Int("cols", g.Cols()).
		Bool("random", sel.Random).
		Msg("round started")
	return nil
}

// Draw draws whichever screen is active.
func (m *Manager) Draw(screen render.Image) {
	switch m.Screen {
	case ScreenMenu:
		if m.MainMenu != nil {
			m.MainMenu.Draw(screen)
		}
	case ScreenPlaying:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	case ScreenResults:
		m.drawResults(screen)
	}
}

// Layout returns the logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

func (m *Manager) drawResults(screen render.Image) {
	screen.Fill(colorBackground)
	if m.Game == nil {
		return
	}

	title := "ROUND OVER"
	tw, _ := m.Renderer.MeasureText(title, 2)
	m.Renderer.DrawText(screen, title, (m.ScreenWidth-tw)/2, 60, color.White, 2)

	score := fmt.Sprintf("Score: %d", m.Game.Score)
	sw, _ := m.Renderer.MeasureText(score, 1)
	m.Renderer.DrawText(screen, score, (m.ScreenWidth-sw)/2, 100, color.White, 1)

	y := 140
	for _, w := range m.Game.Words {
		line := fmt.Sprintf("%-12s %4d pts", w.Word, w.Points)
		if w.Combo > 0 {
			line += fmt.Sprintf("  (combo x%d)", w.Combo)
		}
		lw, _ := m.Renderer.MeasureText(line, 1)
		m.Renderer.DrawText(screen, line, (m.ScreenWidth-lw)/2, y, color.White, 1)
		y += 18
		if y > m.ScreenHeight-80 {
			break
		}
	}

	footer := "Press Space or click to continue"
	fw, _ := m.Renderer.MeasureText(footer, 1)
	m.Renderer.DrawText(screen, footer, (m.ScreenWidth-fw)/2, m.ScreenHeight-40, color.White, 1)
}
