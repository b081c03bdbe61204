package engine

import (
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/model"
)

// Slot is an occupied matrix position together with the block holding it.
type Slot struct {
	Pos model.Pos
	ID  BlockID
}

// Matrix is the occupancy grid of the board. Row 0 is the bottom.
//
// Columns outside [0, Width) and rows below 0 are always blocked. Rows at or
// above Height are not stored; they read as empty so pieces may exist above
// the board.
type Matrix struct {
	slots [model.Width * model.Height]BlockID
}

// inBoard reports whether p maps to a stored slot.
func inBoard(p model.Pos) bool {
	return p.X >= 0 && p.X < model.Width && p.Y >= 0 && p.Y < model.Height
}

// isFree reports whether a single cell can be occupied by a moving piece.
func (m *Matrix) isFree(p model.Pos) bool {
	if p.X < 0 || p.X >= model.Width || p.Y < 0 {
		return false
	}
	if p.Y >= model.Height {
		return true
	}
	return m.slots[p.Index()] == 0
}

// IsPosValid reports whether piece fits at pos without leaving the side walls,
// dropping through the floor, or overlapping a locked block.
func (m *Matrix) IsPosValid(piece model.Tetrimino, pos model.Pos) bool {
	for _, c := range piece.BlockPositions(pos) {
		if !m.isFree(c) {
			return false
		}
	}
	return true
}

// IsOnSurface reports whether piece at pos cannot move down one row.
func (m *Matrix) IsOnSurface(piece model.Tetrimino, pos model.Pos) bool {
	return !m.IsPosValid(piece, pos.Down())
}

// LowestValidPos moves pos down until the piece rests on a surface.
func (m *Matrix) LowestValidPos(piece model.Tetrimino, pos model.Pos) model.Pos {
	for !m.IsOnSurface(piece, pos) {
		pos = pos.Down()
	}
	return pos
}

// At returns the block at p, or 0 when p is empty or off the board.
func (m *Matrix) At(p model.Pos) BlockID {
	if !inBoard(p) {
		return 0
	}
	return m.slots[p.Index()]
}

// Insert records a locked block at p. It returns false, leaving the matrix
// untouched, when p is off the board.
func (m *Matrix) Insert(p model.Pos, id BlockID) bool {
	if !inBoard(p) {
		return false
	}
	m.slots[p.Index()] = id
	return true
}

// isLineFull reports whether every slot of row is occupied.
func (m *Matrix) isLineFull(row int) bool {
	line := m.Line(row)
	if line == nil {
		return false
	}
	for _, id := range line {
		if id == 0 {
			return false
		}
	}
	return true
}

// FullLines returns the complete rows in ascending order.
func (m *Matrix) FullLines() []int {
	var rows []int
	for y := 0; y < model.Height; y++ {
		if m.isLineFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Line returns the slots of a row, or nil when row is off the matrix.
// The slice aliases the matrix.
func (m *Matrix) Line(row int) []BlockID {
	if row < 0 || row >= model.Height {
		return nil
	}
	start := row * model.Width
	return m.slots[start : start+model.Width]
}

// BlocksToDelete collects the handles occupying the given rows.
func (m *Matrix) BlocksToDelete(rows []int) []BlockID {
	ids := make([]BlockID, 0, len(rows)*model.Width)
	for _, row := range rows {
		if row < 0 || row >= model.Height {
			continue
		}
		for _, id := range m.Line(row) {
			if id != 0 {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// DeleteLine removes row, shifting every row above it down by one and clearing
// the top row. Several rows must be deleted highest first.
func (m *Matrix) DeleteLine(row int) {
	if row < 0 || row >= model.Height {
		return
	}
	start := row * model.Width
	copy(m.slots[start:], m.slots[start+model.Width:])
	clear(m.Line(model.Height - 1))
}

// NonEmpty lists every occupied slot in index order.
func (m *Matrix) NonEmpty() []Slot {
	var out []Slot
	for i, id := range m.slots {
		if id != 0 {
			out = append(out, Slot{Pos: model.PosFromIndex(i), ID: id})
		}
	}
	return out
}

// Clear empties the matrix.
func (m *Matrix) Clear() {
	clear(m.slots[:])
}
