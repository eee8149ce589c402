// Package render defines the interfaces that decouple game logic from the
// underlying graphics engine, so backends can be swapped without touching
// the game code and logic packages stay testable with fakes.
package render

import (
	"image/color"
)

// Renderer is the drawing interface the game uses for shapes and text.
type Renderer interface {
	// Shape operations
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable surface.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// TouchID identifies one active touch reported by the backend.
type TouchID int

// InputManager handles input from the user (keyboard, mouse, touch).
// The just-pressed/just-released edges are what the pointer tracker turns
// into down/up samples.
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	CursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	IsMouseButtonJustReleased(button MouseButton) bool

	// TouchIDs returns the IDs of all currently active touches.
	TouchIDs() []TouchID
	// TouchPosition returns the position of an active touch.
	TouchPosition(id TouchID) (x, y int)
	// IsTouchJustReleased reports whether a touch ended this tick.
	IsTouchJustReleased(id TouchID) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeySpace Key = iota
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyR // Restart round
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
