package t2048

import (
	"testing"
	"time"
)

func TestAnimationMidpoint(t *testing.T) {
	var b Board
	b[0][3] = 8
	g := newTestGrid(b)
	g.Move(DirLeft)

	tile := g.TileAt(0, 0)
	if tile == nil || !tile.Animating() {
		t.Fatalf("tile at (0,0) = %+v, want animating", tile)
	}

	g.Animate(75 * time.Millisecond)
	if tile.Display.X != 175 || tile.Display.Y != 10 {
		t.Errorf("midway display = %v, want (175,10)", tile.Display)
	}
	if !g.Animating() {
		t.Error("grid settled before the duration elapsed")
	}
}

func TestAnimationTerminates(t *testing.T) {
	g := newTestGrid(Board{{2, 2, 4, 4}, {0, 8, 0, 8}})
	g.Move(DirLeft)

	if len(g.Ghosts()) != 3 {
		t.Fatalf("ghosts = %d, want 3", len(g.Ghosts()))
	}

	frames := 0
	for g.Animating() {
		g.Animate(16 * time.Millisecond)
		frames++
		if frames > 100 {
			t.Fatal("animation did not terminate")
		}
	}

	if len(g.Ghosts()) != 0 {
		t.Errorf("ghosts left after settling: %d", len(g.Ghosts()))
	}
	for _, tile := range g.Tiles() {
		if tile.Display != g.Layout().Pixel(tile.Pos) {
			t.Errorf("tile %v displayed at %v", tile.Pos, tile.Display)
		}
	}
}

func TestAnimationZeroDuration(t *testing.T) {
	opts := DefaultOptions()
	opts.AnimationDuration = 0

	g := newTestGrid(Board{{0, 0, 2, 2}})
	g.opts = opts
	g.Move(DirLeft)

	g.Animate(0)
	if g.Animating() {
		t.Error("zero duration should settle on the first frame")
	}
}

func TestAnimationNeverOvershoots(t *testing.T) {
	var b Board
	b[3][0] = 2
	g := newTestGrid(b)
	g.Move(DirUp)

	tile := g.TileAt(0, 0)
	target := g.Layout().Pixel(Coord{})
	prev := tile.Display.Y
	for g.Animating() {
		g.Animate(40 * time.Millisecond)
		if tile.Display.Y < target.Y || tile.Display.Y > prev {
			t.Fatalf("display y %v outside [%v, %v]", tile.Display.Y, target.Y, prev)
		}
		prev = tile.Display.Y
	}
}

func TestSettle(t *testing.T) {
	g := newTestGrid(Board{{2, 2, 0, 0}})
	g.Move(DirRight)
	g.Settle()

	if g.Animating() {
		t.Error("Settle() left transitions running")
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := smoothstep(tt.in); got != tt.want {
			t.Errorf("smoothstep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
