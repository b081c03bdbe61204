package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/model"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Phase   string
	Score   uint64
	Level   int
	Lines   int
	Piece   string // kind letter, empty when no piece is active
	PieceX  int
	PieceY  int
	Facing  model.Facing
	Preview string
	Board   string // visible rows top to bottom, '.' for empty, kind letter otherwise
	Paused  bool
	Over    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:    g.tick,
		Phase:   s.Phase().String(),
		Score:   s.Score().Points(),
		Level:   s.Score().Level(),
		Lines:   s.LinesCleared(),
		Preview: s.Preview().String(),
		Board:   g.boardString(),
		Paused:  g.paused,
		Over:    s.GameOver(),
	}
	if piece, ok := s.Current(); ok {
		snap.Piece = piece.Kind.String()
		snap.PieceX = piece.Pos.X
		snap.PieceY = piece.Pos.Y
		snap.Facing = piece.Facing
	}
	return snap
}

// boardString encodes the locked blocks of the visible field.
func (g *Game) boardString() string {
	var sb strings.Builder
	sb.Grow((model.Width + 1) * model.VisibleHeight)

	m := g.session.Matrix()
	for y := model.VisibleHeight - 1; y >= 0; y-- {
		for x := 0; x < model.Width; x++ {
			id := m.At(model.P(x, y))
			if id == 0 {
				sb.WriteByte('.')
				continue
			}
			blk, ok := g.session.Blocks().Get(id)
			if !ok {
				sb.WriteByte('?')
				continue
			}
			sb.WriteString(blk.Kind.String())
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
