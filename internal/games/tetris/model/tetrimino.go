package model

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetriminos.
// The order matches the rows of the offsets table.
type Kind uint8

const (
	KindO Kind = iota
	KindI
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// NumKinds is the number of distinct tetriminos.
const NumKinds = 7

var allKinds = [NumKinds]Kind{KindO, KindI, KindT, KindL, KindJ, KindS, KindZ}

// AllKinds returns the seven kinds in table order.
func AllKinds() []Kind {
	kinds := allKinds
	return kinds[:]
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindO:
		return core.ColorYellow
	case KindI:
		return core.ColorBrightCyan
	case KindT:
		return core.ColorMagenta
	case KindL:
		return core.ColorOrange
	case KindJ:
		return core.ColorBlue
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Facing is one of the four orientations a piece can have.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
)

// RotateCW steps North→East→South→West→North.
func (f Facing) RotateCW() Facing {
	return (f + 1) % 4
}

// RotateCCW steps North→West→South→East→North.
func (f Facing) RotateCCW() Facing {
	return (f + 3) % 4
}

func (f Facing) String() string {
	switch f {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Tetrimino is a piece identity: its kind and facing. Position is tracked separately.
type Tetrimino struct {
	Kind   Kind
	Facing Facing
}

// NewTetrimino returns a North-facing piece of the given kind.
func NewTetrimino(k Kind) Tetrimino {
	return Tetrimino{Kind: k, Facing: North}
}

// Offsets returns the four block offsets relative to the piece anchor.
func (t Tetrimino) Offsets() [4]Pos {
	return offsets[t.Kind][t.Facing]
}

// BlockPositions returns the four absolute cells the piece occupies when anchored at pos.
func (t Tetrimino) BlockPositions(pos Pos) [4]Pos {
	var out [4]Pos
	for i, off := range t.Offsets() {
		out[i] = pos.Add(off)
	}
	return out
}

// RotatedCW returns a copy of the piece turned clockwise.
func (t Tetrimino) RotatedCW() Tetrimino {
	t.Facing = t.Facing.RotateCW()
	return t
}

// RotatedCCW returns a copy of the piece turned counter-clockwise.
func (t Tetrimino) RotatedCCW() Tetrimino {
	t.Facing = t.Facing.RotateCCW()
	return t
}

// MinX returns the leftmost column occupied at pos.
func (t Tetrimino) MinX(pos Pos) int {
	cells := t.BlockPositions(pos)
	m := cells[0].X
	for _, c := range cells[1:] {
		m = min(m, c.X)
	}
	return m
}

// MaxX returns the rightmost column occupied at pos.
func (t Tetrimino) MaxX(pos Pos) int {
	cells := t.BlockPositions(pos)
	m := cells[0].X
	for _, c := range cells[1:] {
		m = max(m, c.X)
	}
	return m
}

// MinY returns the lowest row occupied at pos.
func (t Tetrimino) MinY(pos Pos) int {
	cells := t.BlockPositions(pos)
	m := cells[0].Y
	for _, c := range cells[1:] {
		m = min(m, c.Y)
	}
	return m
}
