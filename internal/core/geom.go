// Package core provides the engine-agnostic building blocks of the runner:
// geometry in logical pixels, input events, the frame clock and the character
// screen buffer. It has no terminal or audio dependencies so the game logic
// stays pure and testable.
package core

// Rect is an axis-aligned box in logical pixels. Y grows downward.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromMidBottom builds a rectangle whose bottom edge is centred on (cx, bottom).
func RectFromMidBottom(cx, bottom, w, h int) Rect {
	return Rect{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal centre.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical centre.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// MidBottom returns the bottom-centre anchor.
func (r Rect) MidBottom() (int, int) {
	return r.CenterX(), r.Bottom()
}

// WithCenterX returns the rectangle moved so its centre sits at cx.
func (r Rect) WithCenterX(cx int) Rect {
	r.X = cx - r.W/2
	return r
}

// WithBottom returns the rectangle moved so its bottom edge sits at y.
func (r Rect) WithBottom(y int) Rect {
	r.Y = y - r.H
	return r
}

// Resized changes the size while keeping the bottom-centre anchor fixed.
func (r Rect) Resized(w, h int) Rect {
	cx, bottom := r.MidBottom()
	return RectFromMidBottom(cx, bottom, w, h)
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
