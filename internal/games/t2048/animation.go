package t2048

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Transition is an in-flight slide of a tile's display position.
type Transition struct {
	Start    core.Vec2
	Target   core.Vec2
	Elapsed  time.Duration
	Duration time.Duration
}

// Progress returns the normalized linear progress in [0, 1].
func (tr *Transition) Progress() float64 {
	if tr.Duration <= 0 {
		return 1
	}
	return core.ClampF(float64(tr.Elapsed)/float64(tr.Duration), 0, 1)
}

// smoothstep eases progress in and out.
func smoothstep(alpha float64) float64 {
	return alpha * alpha * (3 - 2*alpha)
}

// startTransition begins a slide from the tile's current display position.
func (g *Grid) startTransition(t *Tile, target core.Vec2) {
	t.Anim = &Transition{
		Start:    t.Display,
		Target:   target,
		Duration: g.opts.AnimationDuration,
	}
}

// Animate advances every active transition by dt. Settled tiles snap exactly
// to their target; settled ghosts leave the grid.
func (g *Grid) Animate(dt time.Duration) {
	for _, t := range g.cells {
		if t != nil {
			step(t, dt)
		}
	}

	live := g.ghosts[:0]
	for _, t := range g.ghosts {
		step(t, dt)
		if t.Animating() {
			live = append(live, t)
		}
	}
	clear(g.ghosts[len(live):])
	g.ghosts = live
}

func step(t *Tile, dt time.Duration) {
	tr := t.Anim
	if tr == nil {
		return
	}

	tr.Elapsed += dt
	alpha := tr.Progress()
	t.Display = tr.Start.Lerp(tr.Target, smoothstep(alpha))

	if alpha >= 1 {
		t.Display = tr.Target
		t.Anim = nil
	}
}

// Animating reports whether any tile or ghost is mid-transition.
func (g *Grid) Animating() bool {
	if len(g.ghosts) > 0 {
		return true
	}
	for _, t := range g.cells {
		if t != nil && t.Animating() {
			return true
		}
	}
	return false
}

// Settle finishes every transition immediately.
func (g *Grid) Settle() {
	for _, t := range g.cells {
		if t != nil && t.Anim != nil {
			t.Display = t.Anim.Target
			t.Anim = nil
		}
	}
	clear(g.ghosts)
	g.ghosts = g.ghosts[:0]
}
