// Package gui runs the game in a desktop window through Ebitengine, with the
// classic pixel layout and palette.
package gui

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// labelPadding is the horizontal room kept free around a tile label.
const labelPadding = 8

// App adapts a game to ebiten.Game.
type App struct {
	game   *t2048.Game
	layout t2048.Layout
	fonts  *Fonts
	frame  core.InputFrame
	logger *log.Logger
	score  int
	over   bool
}

// NewApp creates the window front end for game and starts a new game.
func NewApp(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) (*App, error) {
	layout := t2048.DefaultLayout
	game.Reset(core.RuntimeConfig{TickRate: cfg.TickRate, Seed: cfg.Seed})
	if g := game.Grid(); g != nil {
		layout = g.Layout()
	}

	fonts, err := LoadFonts(layout.TileSize)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}
	logger.Debug("game started", "seed", game.Seed())

	return &App{
		game:   game,
		layout: layout,
		fonts:  fonts,
		frame:  core.NewInputFrame(),
		logger: logger,
		score:  -1,
	}, nil
}

// Update advances the game by one tick.
func (a *App) Update() error {
	a.frame.Clear()
	pollInput(&a.frame)

	dt := time.Second / time.Duration(ebiten.TPS())
	res := a.game.Step(a.frame, dt)
	if res.Quit {
		return ebiten.Termination
	}

	if res.State.Score != a.score {
		a.score = res.State.Score
		ebiten.SetWindowTitle(fmt.Sprintf("2048 - Score: %d", a.score))
	}
	if res.State.GameOver && !a.over {
		a.logger.Info("game over", "score", a.score, "max_tile", a.game.Grid().MaxTile())
	}
	a.over = res.State.GameOver

	return nil
}

// Draw renders the board, the tiles at their display positions and overlays.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBackground.RGBA())

	size := float32(a.layout.TileSize)
	for y := range t2048.Size {
		for x := range t2048.Size {
			p := a.layout.Pixel(t2048.Coord{X: x, Y: y})
			vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), size, size, core.ColorEmptyCell.RGBA(), false)
		}
	}

	grid := a.game.Grid()
	for _, t := range grid.Ghosts() {
		a.drawTile(screen, t)
	}
	for _, t := range grid.Tiles() {
		a.drawTile(screen, t)
	}

	state := a.game.State()
	switch {
	case state.GameOver:
		a.drawOverlay(screen, core.ColorAlert.RGBA(), "Game Over", "Press R to restart")
	case state.Paused:
		a.drawOverlay(screen, core.ColorTextLight.RGBA(), "Paused", "Press P to resume")
	}
}

func (a *App) drawTile(screen *ebiten.Image, t *t2048.Tile) {
	size := float32(a.layout.TileSize)
	x, y := float32(t.Display.X), float32(t.Display.Y)
	vector.DrawFilledRect(screen, x, y, size, size, t2048.TileColor(t.Value).RGBA(), false)

	label := strconv.Itoa(t.Value)
	face := a.labelFace(label)
	cx := int(t.Display.X + a.layout.TileSize/2)
	cy := int(t.Display.Y + a.layout.TileSize/2)
	drawCentered(screen, label, face, cx, cy, t2048.TextColor(t.Value).RGBA())
}

// labelFace picks the largest face that fits the label inside a tile.
func (a *App) labelFace(label string) text.Face {
	limit := a.layout.TileSize - labelPadding
	for _, f := range a.fonts.Tile {
		if w, _ := text.Measure(label, f, 0); w <= limit {
			return f
		}
	}
	return a.fonts.Tile[len(a.fonts.Tile)-1]
}

// drawOverlay dims the whole window and centers the message lines on it.
func (a *App) drawOverlay(screen *ebiten.Image, clr color.Color, lines ...string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), core.ColorOverlay.RGBA(), false)

	m := a.fonts.Overlay.Metrics()
	lineHeight := int(m.HAscent + m.HDescent + m.HLineGap)
	top := h/2 - lineHeight*(len(lines)-1)/2
	for i, line := range lines {
		drawCentered(screen, line, a.fonts.Overlay, w/2, top+i*lineHeight, clr)
	}
}

// drawCentered draws s centered on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, cy int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// Layout keeps the logical screen at the board size; the window scales it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := int(a.layout.BoardSize())
	return side, side
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	app, err := NewApp(game, cfg, logger)
	if err != nil {
		return err
	}

	side := int(app.layout.BoardSize())
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle("2048")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	err = ebiten.RunGame(app)
	game.Finish()
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
