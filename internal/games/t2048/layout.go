package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// Layout maps grid coordinates to layout space, the pixel space of the window
// front end. Display positions and transitions are expressed in it.
type Layout struct {
	TileSize   float64
	TileMargin float64
}

// DefaultLayout is the classic 100px tiles with 10px gaps.
var DefaultLayout = Layout{TileSize: 100, TileMargin: 10}

// Pitch is the distance between the origins of two neighbouring tiles.
func (l Layout) Pitch() float64 {
	return l.TileSize + l.TileMargin
}

// Pixel returns the top-left layout position of the tile slot at c.
func (l Layout) Pixel(c Coord) core.Vec2 {
	return core.Vec2{
		X: l.TileMargin + float64(c.X)*l.Pitch(),
		Y: l.TileMargin + float64(c.Y)*l.Pitch(),
	}
}

// GridPos converts a layout position back to fractional grid coordinates.
func (l Layout) GridPos(p core.Vec2) (x, y float64) {
	pitch := l.Pitch()
	if pitch == 0 {
		return 0, 0
	}
	return (p.X - l.TileMargin) / pitch, (p.Y - l.TileMargin) / pitch
}

// BoardSize returns the edge length of the whole board, margins included.
func (l Layout) BoardSize() float64 {
	return Size*l.Pitch() + l.TileMargin
}
