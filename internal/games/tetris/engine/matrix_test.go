package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/model"
)

func allPieces() []model.Tetrimino {
	var pieces []model.Tetrimino
	for _, k := range model.AllKinds() {
		for f := model.North; f <= model.West; f++ {
			pieces = append(pieces, model.Tetrimino{Kind: k, Facing: f})
		}
	}
	return pieces
}

// fillRow occupies every column of row except the listed gaps.
func fillRow(m *engine.Matrix, blocks *engine.Blocks, row int, gaps ...int) {
	for x := 0; x < model.Width; x++ {
		skip := false
		for _, g := range gaps {
			if g == x {
				skip = true
			}
		}
		if skip {
			continue
		}
		p := model.P(x, row)
		m.Insert(p, blocks.Spawn(model.KindI, p))
	}
}

func randomMatrix(rng *rand.Rand, density float64) *engine.Matrix {
	m := &engine.Matrix{}
	id := engine.BlockID(1)
	for y := 0; y < 24; y++ {
		for x := 0; x < model.Width; x++ {
			if rng.Float64() < density {
				m.Insert(model.P(x, y), id)
				id++
			}
		}
	}
	return m
}

func TestMatrixBounds(t *testing.T) {
	var m engine.Matrix
	o := model.NewTetrimino(model.KindO)

	assert.True(t, m.IsPosValid(o, model.P(0, 0)))
	assert.True(t, m.IsPosValid(o, model.P(8, 0)))
	assert.False(t, m.IsPosValid(o, model.P(-1, 0)), "left wall")
	assert.False(t, m.IsPosValid(o, model.P(9, 0)), "right wall")
	assert.False(t, m.IsPosValid(o, model.P(0, -1)), "floor")
	assert.True(t, m.IsPosValid(o, model.P(4, model.Height+5)), "above the board is unchecked")
	assert.Equal(t, engine.BlockID(0), m.At(model.P(4, model.Height+5)))
	assert.False(t, m.Insert(model.P(-1, 3), 7))
}

func TestLineOffMatrix(t *testing.T) {
	var m engine.Matrix
	require.True(t, m.Insert(model.P(0, 0), 1))

	assert.Len(t, m.Line(0), model.Width)
	assert.Len(t, m.Line(model.Height-1), model.Width)
	for _, row := range []int{-1, model.Height, model.Height + 3} {
		assert.NotPanics(t, func() { m.Line(row) }, "row %d", row)
		assert.Nil(t, m.Line(row), "row %d", row)
	}
}

func TestCollisionSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 40; trial++ {
		m := randomMatrix(rng, 0.3)
		for _, piece := range allPieces() {
			for i := 0; i < 20; i++ {
				pos := model.P(rng.Intn(model.Width+4)-2, rng.Intn(30)-2)

				want := true
				for _, c := range piece.BlockPositions(pos) {
					if c.X < 0 || c.X >= model.Width || c.Y < 0 || m.At(c) != 0 {
						want = false
					}
				}
				require.Equal(t, want, m.IsPosValid(piece, pos), "%v %v at %v", piece.Kind, piece.Facing, pos)
			}
		}
	}
}

func TestLowestValidPosIsFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 40; trial++ {
		m := randomMatrix(rng, 0.2)
		for _, piece := range allPieces() {
			pos := model.P(rng.Intn(model.Width), 30)
			if !m.IsPosValid(piece, pos) {
				continue
			}
			once := m.LowestValidPos(piece, pos)
			assert.Equal(t, once, m.LowestValidPos(piece, once))
			assert.True(t, m.IsOnSurface(piece, once))
			assert.True(t, m.IsPosValid(piece, once))
		}
	}
}

func TestLowestValidPosEmptyBoard(t *testing.T) {
	var m engine.Matrix
	tests := []struct {
		piece model.Tetrimino
		want  model.Pos
	}{
		{model.NewTetrimino(model.KindO), model.P(5, 0)},
		{model.NewTetrimino(model.KindI), model.P(5, 0)},
		{model.Tetrimino{Kind: model.KindI, Facing: model.South}, model.P(5, 1)},
		{model.Tetrimino{Kind: model.KindT, Facing: model.South}, model.P(5, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.piece.Kind.String()+"/"+tc.piece.Facing.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, m.LowestValidPos(tc.piece, model.P(5, 21)))
		})
	}
}

func TestFullLinesAndDelete(t *testing.T) {
	var m engine.Matrix
	blocks := engine.NewBlocks()

	fillRow(&m, blocks, 2)
	fillRow(&m, blocks, 5)
	fillRow(&m, blocks, 3, 4)
	marker := blocks.Spawn(model.KindT, model.P(0, 7))
	m.Insert(model.P(0, 7), marker)

	rows := m.FullLines()
	require.Equal(t, []int{2, 5}, rows)
	assert.Len(t, m.BlocksToDelete(rows), 2*model.Width)

	for i := len(rows) - 1; i >= 0; i-- {
		m.DeleteLine(rows[i])
	}

	assert.Empty(t, m.FullLines())
	assert.Equal(t, marker, m.At(model.P(0, 5)), "row 7 shifts down by two")
	assert.Equal(t, engine.BlockID(0), m.At(model.P(4, 2)), "row 3 gap moves to row 2")
	assert.NotZero(t, m.At(model.P(0, 2)))
	for x := 0; x < model.Width; x++ {
		assert.Zero(t, m.At(model.P(x, model.Height-1)))
		assert.Zero(t, m.At(model.P(x, model.Height-2)))
	}
	assert.Len(t, m.NonEmpty(), model.Width-1+1)
}

func TestNonEmptyIndexOrder(t *testing.T) {
	var m engine.Matrix
	m.Insert(model.P(3, 4), 1)
	m.Insert(model.P(1, 0), 2)
	m.Insert(model.P(9, 0), 3)

	assert.Equal(t, []engine.Slot{
		{Pos: model.P(1, 0), ID: 2},
		{Pos: model.P(9, 0), ID: 3},
		{Pos: model.P(3, 4), ID: 1},
	}, m.NonEmpty())

	m.Clear()
	assert.Empty(t, m.NonEmpty())
}

func TestBlocksArena(t *testing.T) {
	blocks := engine.NewBlocks()

	a := blocks.Spawn(model.KindS, model.P(1, 1))
	b := blocks.Spawn(model.KindZ, model.P(2, 1))
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, blocks.Len())

	blocks.SetPos(a, model.P(1, 0))
	blocks.MarkClearing(b)

	got, ok := blocks.Get(a)
	require.True(t, ok)
	assert.Equal(t, model.P(1, 0), got.Pos)
	assert.Equal(t, model.KindS, got.Kind)
	assert.False(t, got.Clearing)

	got, ok = blocks.Get(b)
	require.True(t, ok)
	assert.True(t, got.Clearing)

	blocks.Despawn(a)
	_, ok = blocks.Get(a)
	assert.False(t, ok)
	assert.Equal(t, 1, blocks.Len())

	blocks.Clear()
	assert.Zero(t, blocks.Len())
	assert.NotEqual(t, b, blocks.Spawn(model.KindO, model.P(0, 0)), "handles are not reused")
}
