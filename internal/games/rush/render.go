package rush

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tilerush/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// minScreenSize returns the smallest terminal that fits a board of the
// given grid size plus the HUD and footer.
func minScreenSize(size int) (w, h int) {
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	return boardW + 2, hudHeight + 1 + boardH + 2
}

// boardOrigin returns the top-left screen position of the board grid.
func (g *Game) boardOrigin() (x, y int) {
	boardW := g.board.Size*cellWidth + 1
	return (g.screenW - boardW) / 2, hudHeight + 1
}

// CellAtScreen maps a screen position to the board cell it falls on.
// Used by the platform to translate mouse clicks into taps.
func (g *Game) CellAtScreen(px, py int) (int, bool) {
	bx, by := g.boardOrigin()
	boardW := g.board.Size*cellWidth + 1
	boardH := g.board.Size*cellHeight + 1

	if px < bx || px >= bx+boardW || py < by || py >= by+boardH {
		return 0, false
	}

	cx := (px - bx) / cellWidth
	cy := (py - by) / cellHeight
	if cx >= g.board.Size || cy >= g.board.Size {
		return 0, false
	}
	return g.board.Index(cx, cy), true
}

// valueColor picks a display color for a Number tile by magnitude.
func valueColor(value int) core.Color {
	switch {
	case value <= 4:
		return core.ColorGray
	case value <= 16:
		return core.ColorWhite
	case value <= 64:
		return core.ColorYellow
	case value <= 256:
		return core.ColorOrange
	case value <= 1024:
		return core.ColorMagenta
	default:
		return core.ColorBrightYellow
	}
}

// kindColor picks a display color for a powerup tile.
func kindColor(k Kind) core.Color {
	switch k {
	case KindBomb:
		return core.ColorRed
	case KindJoker:
		return core.ColorBrightMagenta
	case KindSurge:
		return core.ColorBrightCyan
	case KindShuffle:
		return core.ColorGreen
	case KindGlass:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX, boardY := g.boardOrigin()
	boardW := g.board.Size*cellWidth + 1
	boardH := g.board.Size*cellHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardX, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	minW, minH := minScreenSize(g.board.Size)
	hint := fmt.Sprintf("Need at least %dx%d", minW, minH)
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, score line, and goal line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", g.best)
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX+len(scoreStr)+2 {
		bestX = boardX + len(scoreStr) + 2
	}
	color := core.ColorDefault
	if g.newBest {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(bestX, 1, bestStr, color)

	goalStr := fmt.Sprintf("Goal: %d", g.NextGoal())
	dst.DrawText(boardX, 2, goalStr)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	movesX := boardX + boardW - len(movesStr)
	if movesX < boardX+len(goalStr)+2 {
		movesX = boardX + len(goalStr) + 2
	}
	dst.DrawText(movesX, 2, movesStr)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.board.Size

	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for cy := 0; cy < n; cy++ {
		for cx := 0; cx < n; cx++ {
			t := g.board.At(g.board.Index(cx, cy))
			if t.Empty() {
				continue
			}

			cellX := boardX + cx*cellWidth + 1
			cellY := boardY + cy*cellHeight + 1

			var label string
			var color core.Color
			if t.Kind == KindNumber {
				label = strconv.Itoa(t.Value)
				color = valueColor(t.Value)
			} else {
				label = string(t.Kind.Glyph())
				color = kindColor(t.Kind)
			}

			padLeft := (cellWidth - 1 - len(label)) / 2
			if padLeft < 0 {
				padLeft = 0
			}
			dst.DrawTextColored(cellX+padLeft, cellY, label, color)
		}
	}
}

// renderFooter draws the legend and undo depth under the board.
func (g *Game) renderFooter(dst *core.Screen, boardX, footerY int) {
	legend := "* bomb  ? joker  + surge  % shuffle  # glass"
	dst.DrawTextColored(boardX, footerY, legend, core.ColorGray)

	if g.undoAllowed() {
		undoStr := fmt.Sprintf("Undo: %d  Redo: %d", g.hist.UndoDepth(), g.hist.RedoDepth())
		dst.DrawTextColored(boardX, footerY+1, undoStr, core.ColorGray)
	}
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxValue())
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		if g.newBest {
			scoreStr += " (new best!)"
		}
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.undoAllowed() {
		return "Arrows/WASD: Move | Click: Use powerup | U: Undo | Ctrl+R: Redo | P: Pause | R: Restart | Q: Quit"
	}
	return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
