package gui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Point sizes at the classic 100px tile size.
const (
	tileFontSize    = 40
	overlayFontSize = 32
)

// Fonts holds the faces used by the window front end.
type Fonts struct {
	// Tile labels, largest first. Long numbers fall back to smaller faces.
	Tile    []text.Face
	Overlay text.Face
}

// LoadFonts parses the bundled M+ 1p face at sizes scaled to the tile size.
func LoadFonts(tileSize float64) (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("gui: cannot parse font: %w", err)
	}

	scale := tileSize / 100
	face := func(size float64) text.Face {
		return &text.GoTextFace{Source: src, Size: size * scale}
	}

	out := &Fonts{Overlay: face(overlayFontSize)}
	for _, size := range []float64{tileFontSize, 30, 22} {
		out.Tile = append(out.Tile, face(size))
	}
	return out, nil
}
