package core

// Viewport maps the logical playfield onto a character grid. The game
// simulates in logical units; only drawing and mouse input see cells.
type Viewport struct {
	LogicalW, LogicalH int
	CellsW, CellsH     int
}

// NewViewport creates a viewport. Zero sizes are raised to one.
func NewViewport(logicalW, logicalH, cellsW, cellsH int) Viewport {
	return Viewport{
		LogicalW: Max(logicalW, 1),
		LogicalH: Max(logicalH, 1),
		CellsW:   Max(cellsW, 1),
		CellsH:   Max(cellsH, 1),
	}
}

// ToCells converts a logical rectangle to the cells it covers. Any
// non-empty rectangle covers at least one cell.
func (v Viewport) ToCells(r Rect) Rect {
	x0 := floorDiv(r.X*v.CellsW, v.LogicalW)
	y0 := floorDiv(r.Y*v.CellsH, v.LogicalH)
	x1 := ceilDiv(r.Right()*v.CellsW, v.LogicalW)
	y1 := ceilDiv(r.Bottom()*v.CellsH, v.LogicalH)
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// CellX converts a logical x coordinate to a column.
func (v Viewport) CellX(x int) int {
	return floorDiv(x*v.CellsW, v.LogicalW)
}

// CellY converts a logical y coordinate to a row.
func (v Viewport) CellY(y int) int {
	return floorDiv(y*v.CellsH, v.LogicalH)
}

// ToLogical returns the logical point at the centre of a cell.
func (v Viewport) ToLogical(cx, cy int) (int, int) {
	x := (2*cx + 1) * v.LogicalW / (2 * v.CellsW)
	y := (2*cy + 1) * v.LogicalH / (2 * v.CellsH)
	return x, y
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
