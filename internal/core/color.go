package core

import (
	"fmt"
	"image/color"
)

// Color is a palette entry for a screen cell or a window shape.
// Both front ends resolve it through the same RGBA table.
type Color uint8

// Palette entries. ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorBoard
	ColorEmptyCell
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileOverflow
	ColorTextDark
	ColorTextLight
	ColorOverlay
	ColorAlert
)

var palette = [...]color.RGBA{
	ColorDefault:      {},
	ColorBackground:   {250, 248, 239, 255},
	ColorBoard:        {187, 173, 160, 255},
	ColorEmptyCell:    {205, 193, 180, 255},
	ColorTile2:        {238, 228, 218, 255},
	ColorTile4:        {237, 224, 200, 255},
	ColorTile8:        {242, 177, 121, 255},
	ColorTile16:       {245, 149, 99, 255},
	ColorTile32:       {246, 124, 95, 255},
	ColorTile64:       {246, 94, 59, 255},
	ColorTile128:      {237, 207, 114, 255},
	ColorTile256:      {237, 204, 97, 255},
	ColorTile512:      {237, 200, 80, 255},
	ColorTile1024:     {237, 197, 63, 255},
	ColorTile2048:     {237, 194, 46, 255},
	ColorTileOverflow: {60, 58, 50, 255},
	ColorTextDark:     {119, 110, 101, 255},
	ColorTextLight:    {255, 255, 255, 255},
	ColorOverlay:      {0, 0, 0, 150},
	ColorAlert:        {255, 0, 0, 255},
}

// RGBA returns the color's components. Unknown entries are fully transparent.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return color.RGBA{}
	}
	return palette[c]
}

// Hex returns the color as "#RRGGBB", or "" for ColorDefault and unknown entries.
func (c Color) Hex() string {
	if c == ColorDefault || int(c) >= len(palette) {
		return ""
	}
	rgba := palette[c]
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}
