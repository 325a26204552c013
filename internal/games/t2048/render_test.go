package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderHUDAndTiles(t *testing.T) {
	g := newTestGame(Board{{2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 1024, 0}})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Score: 0", "Max: 1024", "1024"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	x, y := slotOrigin((80-boardW)/2, hudHeight, 0, 0)
	if got := screen.GetCell(x, y).Bg; got != core.ColorTile2 {
		t.Errorf("tile 2 background = %v, want %v", got, core.ColorTile2)
	}
	if got := screen.GetCell(x+tileW/2, y+tileH/2); got.Rune != '2' || got.Fg != core.ColorTextDark {
		t.Errorf("tile 2 label cell = %+v", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(stuckBoard)
	g.Step(core.InputFrame{}, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(Board{{2}})
	g.Step(frame(core.ActionPause), 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})

	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too small message missing")
	}
}

func TestTileColors(t *testing.T) {
	tests := []struct {
		value  int
		bg, fg core.Color
	}{
		{2, core.ColorTile2, core.ColorTextDark},
		{4, core.ColorTile4, core.ColorTextDark},
		{8, core.ColorTile8, core.ColorTextLight},
		{2048, core.ColorTile2048, core.ColorTextLight},
		{4096, core.ColorTileOverflow, core.ColorTextLight},
	}
	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.bg {
			t.Errorf("TileColor(%d) = %v, want %v", tt.value, got, tt.bg)
		}
		if got := TextColor(tt.value); got != tt.fg {
			t.Errorf("TextColor(%d) = %v, want %v", tt.value, got, tt.fg)
		}
	}
}
