package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/model"
)

// Layout, in screen cells. Every board column is two characters wide.
// The two rows above the board frame show pieces spawning above the skyline.
const (
	cellW       = 2
	spawnRows   = 2
	boardW      = model.Width*cellW + 2 // +2 for the frame
	boardH      = model.VisibleHeight + 2
	panelGap    = 2
	panelW      = 16
	previewW    = 4*cellW + 2
	previewH    = 4
	layoutWidth = boardW + panelGap + panelW
	// layoutHeight is spawn rows + framed board.
	layoutHeight = spawnRows + boardH
)

// Visual glyphs
const (
	glyphBlock = '█'
	glyphGhost = '░'
	glyphClear = '▒'
	glyphEmpty = '·'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Track resizes; Step stays frozen while the screen is too small
	g.screenTooSmall = dst.Width() < g.minScreenW || dst.Height() < g.minScreenH
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	originX := (dst.Width() - layoutWidth) / 2
	originY := (dst.Height() - layoutHeight) / 2
	boardX := originX
	boardY := originY + spawnRows

	g.renderBoard(dst, boardX, boardY)
	g.renderPanel(dst, originX+boardW+panelGap, originY)
	g.renderOverlay(dst)
}

// cellToScreen maps a board position to the left character of its screen cell.
// (boardX, boardY) is the frame's top-left corner; rows above the skyline
// land above the frame.
func cellToScreen(boardX, boardY int, p model.Pos) (int, int) {
	x := boardX + 1 + p.X*cellW
	y := boardY + model.VisibleHeight - p.Y
	if p.Y >= model.VisibleHeight {
		y-- // skip the frame's top border
	}
	return x, y
}

// drawCell paints one board cell if it is inside the visible area or spawn rows.
func drawCell(dst *core.Screen, boardX, boardY int, p model.Pos, r rune, c core.Color) {
	if p.Y >= model.VisibleHeight+spawnRows || p.Y < 0 {
		return
	}
	x, y := cellToScreen(boardX, boardY, p)
	for i := 0; i < cellW; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderBoard draws the frame, locked blocks, ghost and active piece.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBoxColored(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	// Empty field
	for y := 0; y < model.VisibleHeight; y++ {
		for x := 0; x < model.Width; x++ {
			sx, sy := cellToScreen(boardX, boardY, model.P(x, y))
			dst.SetColored(sx+1, sy, glyphEmpty, core.ColorDim)
		}
	}

	// Locked blocks
	s := g.session
	for _, slot := range s.Matrix().NonEmpty() {
		blk, ok := s.Blocks().Get(slot.ID)
		if !ok {
			continue
		}
		if blk.Clearing {
			drawCell(dst, boardX, boardY, slot.Pos, glyphClear, core.ColorBrightWhite)
			continue
		}
		drawCell(dst, boardX, boardY, slot.Pos, glyphBlock, blk.Kind.Color())
	}

	piece, ok := s.Current()
	if !ok {
		return
	}

	if g.cfg.Display.Ghost {
		if ghost, ok := s.Ghost(); ok && ghost.Pos != piece.Pos {
			for _, c := range ghost.Cells() {
				drawCell(dst, boardX, boardY, c, glyphGhost, core.ColorDim)
			}
		}
	}

	for _, c := range piece.Cells() {
		drawCell(dst, boardX, boardY, c, glyphBlock, piece.Kind.Color())
	}
}

// renderPanel draws the title, preview and counters to the right of the board.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	s := g.session
	dst.DrawTextColored(x, y, g.Title(), core.ColorBrightWhite)
	dst.DrawHLine(x, y+1, panelW, '─')

	row := y + spawnRows
	if g.cfg.Display.Preview {
		dst.DrawText(x, row, "NEXT")
		box := core.NewRect(x, row+1, previewW, previewH)
		dst.DrawBoxColored(box, core.ColorGray)
		g.renderPreview(dst, box, s.Preview())
		row += previewH + 2
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", s.Score().Formatted()},
		{"LEVEL", fmt.Sprintf("%d", s.Score().Level())},
		{"LINES", fmt.Sprintf("%d", s.LinesCleared())},
	}
	if g.cfg.Display.ShowPhase {
		stats = append(stats, struct {
			label string
			value string
		}{"PHASE", s.Phase().String()})
	}
	for _, st := range stats {
		dst.DrawTextColored(x, row, st.label, core.ColorGray)
		dst.DrawText(x, row+1, st.value)
		row += 3
	}

	if g.flashLeft > 0 && g.flash != "" {
		dst.DrawTextColored(x, row, g.flash, core.ColorBrightYellow)
	}
}

// renderPreview draws a North-facing piece inside the preview box.
func (g *Game) renderPreview(dst *core.Screen, box core.Rect, kind model.Kind) {
	piece := model.NewTetrimino(kind)
	for _, off := range piece.Offsets() {
		// North offsets span x in [-1, 2] and y in [0, 1].
		px := box.X + 1 + (off.X+1)*cellW
		py := box.Y + 2 - off.Y
		for i := 0; i < cellW; i++ {
			dst.SetColored(px+i, py, glyphBlock, kind.Color())
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.session.GameOver():
		subtitle := fmt.Sprintf("Score: %s  |  Press R to restart", g.session.Score().Formatted())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
