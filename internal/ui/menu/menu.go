// Package menu provides the title screen: board selection and round start.
package menu

import (
	"image/color"

	"wordrush.gg/wordrush/internal/board"
	"wordrush.gg/wordrush/internal/render"
)

// Selection is what the player picked on the menu.
type Selection struct {
	Board  board.Entry
	Random bool // no board file; generate one
}

// Menu is the title screen. Board files found on disk are listed after a
// "Random board" entry; arrows or the mouse pick one, Enter/Space/click
// starts the round.
type Menu struct {
	boards       []board.Entry
	selected     int
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int
}

// New creates the menu over the discovered board entries.
func New(boards []board.Entry, r render.Renderer, input render.InputManager, width, height int) *Menu {
	return &Menu{
		boards:       boards,
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

const (
	itemHeight = 26
	listTop    = 180
)

// itemCount includes the leading "Random board" entry.
func (m *Menu) itemCount() int { return len(m.boards) + 1 }

// Update processes one tick of menu input.
// Returns true with the chosen selection when the player starts a round.
func (m *Menu) Update() (bool, Selection) {
	if m.input.IsKeyJustPressed(render.KeyUp) && m.selected > 0 {
		m.selected--
	}
	if m.input.IsKeyJustPressed(render.KeyDown) && m.selected < m.itemCount()-1 {
		m.selected++
	}

	// Hover follows the mouse; a click both selects and starts.
	mouseX, mouseY := m.input.CursorPosition()
	hovered := -1
	if mouseX >= m.itemLeft() && mouseX < m.itemLeft()+300 {
		idx := (mouseY - listTop) / itemHeight
		if mouseY >= listTop && idx >= 0 && idx < m.itemCount() {
			hovered = idx
			m.selected = idx
		}
	}

	clicked := m.input.IsMouseButtonJustPressed(render.MouseButtonLeft) && hovered >= 0
	keyed := m.input.IsKeyJustPressed(render.KeyEnter) || m.input.IsKeyJustPressed(render.KeySpace)

	if clicked || keyed {
		return true, m.selection()
	}
	return false, Selection{}
}

func (m *Menu) selection() Selection {
	if m.selected == 0 {
		return Selection{Random: true}
	}
	return Selection{Board: m.boards[m.selected-1]}
}

func (m *Menu) itemLeft() int {
	return m.screenWidth/2 - 150
}

// Draw renders the menu.
func (m *Menu) Draw(dst render.Image) {
	dst.Fill(color.RGBA{16, 16, 24, 255})

	title := "W O R D R U S H"
	tw, _ := m.renderer.MeasureText(title, 2)
	m.renderer.DrawText(dst, title, (m.screenWidth-tw)/2, 80, color.White, 2)

	hint := "Drag across adjacent letters to form words"
	hw, _ := m.renderer.MeasureText(hint, 1)
	m.renderer.DrawText(dst, hint, (m.screenWidth-hw)/2, 120, color.White, 1)

	for i := 0; i < m.itemCount(); i++ {
		label := "Random board"
		if i > 0 {
			label = m.boards[i-1].Name
		}
		y := listTop + i*itemHeight
		if i == m.selected {
			m.renderer.FillRect(dst, float32(m.itemLeft()-8), float32(y-4),
				316, itemHeight-4, color.RGBA{60, 60, 100, 255})
			label = "> " + label
		}
		m.renderer.DrawText(dst, label, m.itemLeft(), y, color.White, 1)
	}

	footer := "Enter / click to start, Escape to quit"
	fw, _ := m.renderer.MeasureText(footer, 1)
	m.renderer.DrawText(dst, footer, (m.screenWidth-fw)/2, m.screenHeight-40, color.White, 1)
}
