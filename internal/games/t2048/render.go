package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Terminal geometry of the board, in cells.
const (
	tileW     = 7
	tileH     = 3
	gapX      = 2
	gapY      = 1
	hudHeight = 3

	boardW = Size*tileW + (Size+1)*gapX
	boardH = Size*tileH + (Size+1)*gapY

	// MinScreenW and MinScreenH are the smallest terminal that fits the game.
	MinScreenW = boardW + 2
	MinScreenH = hudHeight + boardH
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.grid == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
	dst.DrawTextCentered(y+2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

// renderHUD draws title, score and max tile above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	maxStr := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	dst.DrawText(boardX+boardW-len(maxStr), 1, maxStr)
}

// renderBoard draws the background, empty slots and every tile at its
// display position. Ghosts go first so survivors cover them.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.FillRect(core.NewRect(boardX, boardY, boardW, boardH), core.ColorBoard)

	for y := range Size {
		for x := range Size {
			cx, cy := slotOrigin(boardX, boardY, float64(x), float64(y))
			dst.FillRect(core.NewRect(cx, cy, tileW, tileH), core.ColorEmptyCell)
		}
	}

	layout := g.grid.Layout()
	for _, t := range g.grid.Ghosts() {
		drawTile(dst, layout, boardX, boardY, t)
	}
	for _, t := range g.grid.Tiles() {
		drawTile(dst, layout, boardX, boardY, t)
	}
}

// slotOrigin maps fractional grid coordinates to the top-left terminal cell.
func slotOrigin(boardX, boardY int, gx, gy float64) (int, int) {
	x := boardX + gapX + int(math.Round(gx*(tileW+gapX)))
	y := boardY + gapY + int(math.Round(gy*(tileH+gapY)))
	return x, y
}

func drawTile(dst *core.Screen, layout Layout, boardX, boardY int, t *Tile) {
	gx, gy := layout.GridPos(t.Display)
	x, y := slotOrigin(boardX, boardY, gx, gy)

	bg := TileColor(t.Value)
	dst.FillRect(core.NewRect(x, y, tileW, tileH), bg)

	label := strconv.Itoa(t.Value)
	if len(label) > tileW {
		label = label[:tileW]
	}
	dst.DrawTextStyled(x+(tileW-len(label))/2, y+tileH/2, label, TextColor(t.Value), bg)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		drawOverlay(dst, centerX, centerY, core.ColorDefault, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		drawOverlay(dst, centerX, centerY, core.ColorAlert, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a boxed, centered message. The first line is the title.
func drawOverlay(dst *core.Screen, centerX, centerY int, titleFg core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, core.ColorOverlay)
	dst.DrawBox(box)

	for i, line := range lines {
		fg := core.ColorTextLight
		if i == 0 {
			fg = titleFg
		}
		dst.DrawTextStyled(centerX-len(line)/2, box.Y+1+i, line, fg, core.ColorOverlay)
	}
}
