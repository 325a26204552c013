package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// TileColor returns the fill color for a tile value.
func TileColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorTile2
	case 4:
		return core.ColorTile4
	case 8:
		return core.ColorTile8
	case 16:
		return core.ColorTile16
	case 32:
		return core.ColorTile32
	case 64:
		return core.ColorTile64
	case 128:
		return core.ColorTile128
	case 256:
		return core.ColorTile256
	case 512:
		return core.ColorTile512
	case 1024:
		return core.ColorTile1024
	case 2048:
		return core.ColorTile2048
	default:
		return core.ColorTileOverflow
	}
}

// TextColor returns the label color for a tile value.
func TextColor(value int) core.Color {
	if value <= 4 {
		return core.ColorTextDark
	}
	return core.ColorTextLight
}
