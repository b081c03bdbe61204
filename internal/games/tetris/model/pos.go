// Package model holds the static tetris geometry: grid positions, piece kinds,
// facings and the rotation tables, plus the 7-bag randomizer.
// Nothing here depends on the board or on timing.
package model

import "fmt"

// Board dimensions. The matrix is taller than the visible field so pieces can
// spawn and rotate above the skyline.
const (
	Width         = 10
	Height        = 40
	VisibleHeight = 20
)

// Pos is a grid coordinate. Origin is bottom-left and Y grows upward.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Left returns the position one column to the left.
func (p Pos) Left() Pos {
	return Pos{X: p.X - 1, Y: p.Y}
}

// Right returns the position one column to the right.
func (p Pos) Right() Pos {
	return Pos{X: p.X + 1, Y: p.Y}
}

// Down returns the position one row below.
func (p Pos) Down() Pos {
	return Pos{X: p.X, Y: p.Y - 1}
}

// Add returns the component-wise sum of two positions.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Index converts the position to a row-major board index.
// Only meaningful for positions inside the board.
func (p Pos) Index() int {
	return p.Y*Width + p.X
}

// PosFromIndex is the inverse of Index.
func PosFromIndex(i int) Pos {
	return Pos{X: i % Width, Y: i / Width}
}

// String returns "(x, y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
