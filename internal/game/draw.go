package game

import (
	"fmt"
	"image/color"

	"wordrush.gg/wordrush/internal/grid"
	"wordrush.gg/wordrush/internal/render"
	"wordrush.gg/wordrush/internal/ui/hud"
)

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorCell       = color.RGBA{40, 44, 60, 255}
	colorSelected   = color.RGBA{90, 130, 220, 255}
	colorFading     = color.RGBA{60, 70, 90, 255}
	colorTrail      = color.RGBA{140, 170, 240, 200}
)

// Draw renders the round to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colorBackground)

	lay := g.layout()

	inPath := make(map[grid.Position]bool, len(g.Session.Path()))
	for _, c := range g.Session.Path() {
		inPath[c.Pos] = true
	}
	fading := make(map[grid.Position]bool, len(g.Session.Fading()))
	for _, c := range g.Session.Fading() {
		fading[c.Pos] = true
	}

	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			pos := grid.Position{Row: row, Col: col}
			x, y, size := lay.CellRect(pos)

			clr := colorCell
			switch {
			case inPath[pos]:
				clr = colorSelected
			case fading[pos]:
				clr = colorFading
			}
			g.Renderer.FillRect(screen, float32(x), float32(y), float32(size), float32(size), clr)

			letter := string(g.Grid.Letter(pos))
			tw, th := g.Renderer.MeasureText(letter, 1)
			g.Renderer.DrawText(screen, letter,
				int(x+size/2)-tw/2, int(y+size/2)-th/2, color.White, 1)
		}
	}

	g.drawTrail(screen, lay)

	if g.bannerT > 0 && g.lastWord != "" {
		banner := fmt.Sprintf("%s!", g.lastWord)
		tw, _ := g.Renderer.MeasureText(banner, 2)
		g.Renderer.DrawText(screen, banner, (g.ScreenWidth-180-tw)/2, 24, color.White, 2)
	}

	g.GameHUD.Draw(screen, g.Renderer, hud.Info{
		Word:     g.Session.CurrentWord(),
		Combo:    g.Combo,
		Score:    g.Score,
		Found:    g.foundWords(),
		TimeLeft: g.TimeLeft,
	})
}

// drawTrail connects the centers of the selected cells in path order, with
// a dot at each center so single-cell selections are visible too.
func (g *Game) drawTrail(screen render.Image, lay grid.Layout) {
	path := g.Session.Path()
	for i := 1; i < len(path); i++ {
		x0, y0 := lay.CellCenter(path[i-1].Pos)
		x1, y1 := lay.CellCenter(path[i].Pos)
		g.Renderer.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 4, colorTrail)
	}
	for _, c := range path {
		x, y := lay.CellCenter(c.Pos)
		g.Renderer.FillCircle(screen, float32(x), float32(y), 6, colorTrail)
	}
}

func (g *Game) foundWords() []string {
	words := make([]string, len(g.Words))
	for i, w := range g.Words {
		words[i] = w.Word
	}
	return words
}
