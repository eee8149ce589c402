// Package hud provides the in-round heads-up display: the word being
// dragged, the combo streak, the running score and the round countdown.
package hud

import (
	"fmt"
	"image/color"

	"wordrush.gg/wordrush/internal/render"
)

// Config defines what the HUD shows and where.
type Config struct {
	ShowWord   bool    `json:"show_word"`   // show the in-progress word
	ShowCombo  bool    `json:"show_combo"`  // show the combo streak
	ShowScore  bool    `json:"show_score"`  // show the running score
	ShowTimer  bool    `json:"show_timer"`  // show the round countdown
	ShowFound  int     `json:"show_found"`  // how many recent words to list (0 = none)
	Opacity    float64 `json:"opacity"`     // background opacity (0-1)
	PanelWidth int     `json:"panel_width"` // side panel width in pixels
}

// DefaultConfig returns a sensible default HUD configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowWord:   true,
		ShowCombo:  true,
		ShowScore:  true,
		ShowTimer:  true,
		ShowFound:  8,
		Opacity:    0.7,
		PanelWidth: 180,
	}
}

// Info is the per-frame data the HUD displays. The game fills it from the
// session and round state; the HUD holds no game references of its own.
type Info struct {
	Word     string   // letters of the active path, selection order
	Combo    int      // current streak level
	Score    int      // running score
	Found    []string // submitted words, most recent last
	TimeLeft float64  // seconds remaining in the round
}

// HUD draws the heads-up display.
type HUD struct {
	config       *Config
	screenWidth  int
	screenHeight int
}

// New creates a HUD with the given configuration.
func New(config *Config, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Draw renders the HUD onto dst.
func (h *HUD) Draw(dst render.Image, r render.Renderer, info Info) {
	panelX := float32(h.screenWidth - h.config.PanelWidth)
	bg := color.RGBA{20, 20, 30, uint8(255 * h.config.Opacity)}
	r.FillRect(dst, panelX, 0, float32(h.config.PanelWidth), float32(h.screenHeight), bg)

	x := int(panelX) + 12
	y := 16
	line := func(text string) {
		r.DrawText(dst, text, x, y, color.White, 1)
		y += 18
	}

	if h.config.ShowTimer {
		line(fmt.Sprintf("Time  %4.0fs", info.TimeLeft))
	}
	if h.config.ShowScore {
		line(fmt.Sprintf("Score %5d", info.Score))
	}
	if h.config.ShowCombo {
		if info.Combo > 0 {
			line(fmt.Sprintf("Combo  x%d", info.Combo))
		} else {
			line("Combo   -")
		}
	}
	if h.config.ShowWord {
		y += 8
		if info.Word != "" {
			line("> " + info.Word)
		} else {
			line("> ...")
		}
	}

	if h.config.ShowFound > 0 && len(info.Found) > 0 {
		y += 8
		line("Found:")
		start := 0
		if len(info.Found) > h.config.ShowFound {
			start = len(info.Found) - h.config.ShowFound
		}
		for i := len(info.Found) - 1; i >= start; i-- {
			line("  " + info.Found[i])
		}
	}
}
