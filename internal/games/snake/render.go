package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // HUD line + separator
	cellWidth = 2 // Terminal cells are about twice as tall as wide
)

// requiredSize returns the smallest screen that fits HUD, framed board and legend.
func (g *Game) requiredSize() (w, h int) {
	size := g.settings.Board.Size
	return size*cellWidth + 2, hudHeight + size + 2 + 1
}

// boardRect returns the framed board area on a screen of width w.
func (g *Game) boardRect(w int) core.Rect {
	size := g.settings.Board.Size
	bw := size*cellWidth + 2
	return core.NewRect((w-bw)/2, hudHeight, bw, size+2)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	if g.tooSmall {
		w, h := g.requiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	snap := g.session.Snapshot()
	frame := g.boardRect(dst.Width())
	dst.DrawBox(frame, core.ColorGray)

	// Draw food
	if snap.FoodCell != 0 {
		c := g.session.board.CoordOf(snap.FoodCell)
		if snap.FoodReversed {
			g.drawCell(dst, frame, c, '◆', core.ColorBrightMagenta)
		} else {
			g.drawCell(dst, frame, c, '●', core.ColorRed)
		}
	}

	// Draw snake, tail first so the head stays on top
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		if i == 0 {
			g.drawBlock(dst, frame, seg.Coord, '█', core.ColorBrightGreen)
		} else {
			g.drawBlock(dst, frame, seg.Coord, '▓', core.ColorGreen)
		}
	}

	g.renderLegend(dst, frame)

	// Draw overlays
	switch {
	case snap.State == StateGameOver:
		g.renderOverlay(dst, "Game Over - "+snap.Cause.Describe(), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell draws a single rune centered in a board cell.
func (g *Game) drawCell(dst *core.Screen, frame core.Rect, c Coordinate, r rune, color core.Color) {
	x := frame.X + 1 + c.Col*cellWidth
	y := frame.Y + 1 + c.Row
	dst.SetColored(x, y, r, color)
}

// drawBlock fills a whole board cell.
func (g *Game) drawBlock(dst *core.Screen, frame core.Rect, c Coordinate, r rune, color core.Color) {
	x := frame.X + 1 + c.Col*cellWidth
	y := frame.Y + 1 + c.Row
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, color)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.session.Snapshot()
	hud := fmt.Sprintf(" %s — Score: %d  Length: %d  Heading: %s", g.Title(), snap.Score, snap.Length, snap.Direction)
	if g.lastOver != nil && g.settings.Session.AutoRestart {
		hud += fmt.Sprintf("  Last: %d", g.lastOver.Score)
	}
	dst.DrawText(0, 0, hud)

	if g.flashTicks > 0 {
		msg := "REVERSED! "
		dst.DrawTextColored(dst.Width()-len(msg), 0, msg, core.ColorBrightMagenta)
	}

	// Draw separator
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderLegend explains the food colors below the board.
func (g *Game) renderLegend(dst *core.Screen, frame core.Rect) {
	y := frame.Bottom()
	x := frame.X
	dst.SetColored(x, y, '●', core.ColorRed)
	dst.DrawText(x+2, y, "food")
	if g.settings.Food.ReverseChance > 0 {
		dst.SetColored(x+8, y, '◆', core.ColorBrightMagenta)
		dst.DrawText(x+10, y, "reverse")
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((w-(maxLen+4))/2, (h-5)/2, maxLen+4, 5)

	// Blank the interior, then frame it
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorYellow)

	// Draw text
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
