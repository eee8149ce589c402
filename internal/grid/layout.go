package grid

import "math"

// Layout describes where the grid is drawn this frame. It is supplied by
// the rendering layer on every resolve call, so the board can move or
// rescale without the selection engine noticing.
type Layout struct {
	OriginX  float64 // top-left corner of the first cell
	OriginY  float64
	CellSize float64 // side length of one square cell
	Gap      float64 // spacing between neighbouring cells
}

// CellCenter returns the visual center of the cell at p under this layout.
func (l Layout) CellCenter(p Position) (x, y float64) {
	pitch := l.CellSize + l.Gap
	x = l.OriginX + float64(p.Col)*pitch + l.CellSize/2
	y = l.OriginY + float64(p.Row)*pitch + l.CellSize/2
	return x, y
}

// CellRect returns the top-left corner and size of the cell at p.
func (l Layout) CellRect(p Position) (x, y, size float64) {
	pitch := l.CellSize + l.Gap
	return l.OriginX + float64(p.Col)*pitch, l.OriginY + float64(p.Row)*pitch, l.CellSize
}

// Hit is the result of resolving a screen point to a cell.
type Hit struct {
	Cell           Cell
	DistFromCenter float64 // Euclidean distance from the cell's visual center
	CellRadius     float64 // half the cell size
}

// Resolve maps a screen point to the cell under it. It returns nil when the
// point falls in a gap between cells, outside the board, or when the grid
// has zero size. Pure function of the layout and the point.
func (g *Grid) Resolve(l Layout, x, y float64) *Hit {
	if g.rows == 0 || g.cols == 0 || l.CellSize <= 0 {
		return nil
	}
	pitch := l.CellSize + l.Gap

	fx := x - l.OriginX
	fy := y - l.OriginY
	if fx < 0 || fy < 0 {
		return nil
	}

	col := int(fx / pitch)
	row := int(fy / pitch)
	if row >= g.rows || col >= g.cols {
		return nil
	}
	// Points in the gap to the right of or below a cell miss everything.
	if fx-float64(col)*pitch > l.CellSize || fy-float64(row)*pitch > l.CellSize {
		return nil
	}

	pos := Position{Row: row, Col: col}
	cx, cy := l.CellCenter(pos)
	return &Hit{
		Cell:           Cell{Pos: pos, Letter: g.letters[row][col]},
		DistFromCenter: math.Hypot(x-cx, y-cy),
		CellRadius:     l.CellSize / 2,
	}
}
