// Package t2048 implements the 2048 sliding-tile puzzle: the grid model, the
// move engine with its merge rules, the tile animation stepper and the
// frame-driven game state that front ends drive.
package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Size is the board dimension.
const Size = 4

// Board is a value matrix of the grid, indexed [y][x]. Zero means empty.
type Board [Size][Size]int

// Tile is one numbered block.
type Tile struct {
	Value   int
	Pos     Coord
	Merged  bool        // Took part in a merge during the current move
	Display core.Vec2   // Layout position used for rendering
	Anim    *Transition // Active slide, nil when settled
}

// Animating reports whether the tile has an active transition.
func (t *Tile) Animating() bool {
	return t.Anim != nil
}

// Options configures a grid.
type Options struct {
	Layout            Layout
	Spawn4            float64       // Probability of spawning 4 instead of 2
	AnimationDuration time.Duration // Uniform slide duration
}

// DefaultOptions returns the classic settings.
func DefaultOptions() Options {
	return Options{
		Layout:            DefaultLayout,
		Spawn4:            0.10,
		AnimationDuration: 150 * time.Millisecond,
	}
}

// Grid owns every live tile in a coordinate-indexed arena, so a coordinate
// can never hold two tiles.
type Grid struct {
	cells  [Size * Size]*Tile
	ghosts []*Tile // Consumed by a merge, still sliding into the survivor
	rng    *rand.Rand
	opts   Options
}

// NewGrid creates a grid holding two random tiles.
func NewGrid(opts Options, rng *rand.Rand) *Grid {
	g := newEmptyGrid(opts, rng)
	g.SpawnTile()
	g.SpawnTile()
	return g
}

func newEmptyGrid(opts Options, rng *rand.Rand) *Grid {
	return &Grid{
		rng:  rng,
		opts: opts,
	}
}

// Layout returns the grid's layout geometry.
func (g *Grid) Layout() Layout {
	return g.opts.Layout
}

// TileAt returns the tile at (x, y), or nil if the cell is empty or off the board.
func (g *Grid) TileAt(x, y int) *Tile {
	return g.at(Coord{X: x, Y: y})
}

func (g *Grid) at(c Coord) *Tile {
	if !c.InBounds() {
		return nil
	}
	return g.cells[c.index()]
}

// EmptyCells returns all unoccupied coordinates in row-major order.
func (g *Grid) EmptyCells() []Coord {
	var cells []Coord
	for y := range Size {
		for x := range Size {
			if g.cells[y*Size+x] == nil {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// SpawnTile places a 2 (or a 4, with the configured probability) on a
// uniformly chosen empty cell. A full grid is left untouched.
func (g *Grid) SpawnTile() (*Tile, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return nil, false
	}

	cell := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.opts.Spawn4 {
		value = 4
	}

	return g.Place(cell, value), true
}

// Place puts a settled tile at c, replacing any occupant.
func (g *Grid) Place(c Coord, value int) *Tile {
	if !c.InBounds() {
		return nil
	}
	t := &Tile{
		Value:   value,
		Pos:     c,
		Display: g.opts.Layout.Pixel(c),
	}
	g.cells[c.index()] = t
	return t
}

// LoadBoard replaces the whole grid with settled tiles from a value matrix.
func (g *Grid) LoadBoard(b Board) {
	g.cells = [Size * Size]*Tile{}
	g.ghosts = nil
	for y := range Size {
		for x := range Size {
			if b[y][x] != 0 {
				g.Place(Coord{X: x, Y: y}, b[y][x])
			}
		}
	}
}

// ResetMergeFlags clears the merge mark on every tile.
func (g *Grid) ResetMergeFlags() {
	for _, t := range g.cells {
		if t != nil {
			t.Merged = false
		}
	}
}

// CanMove returns true if any cell is empty or two orthogonal neighbours
// hold equal values.
func (g *Grid) CanMove() bool {
	for y := range Size {
		for x := range Size {
			t := g.cells[y*Size+x]
			if t == nil {
				return true
			}
			if right := g.TileAt(x+1, y); right != nil && right.Value == t.Value {
				return true
			}
			if below := g.TileAt(x, y+1); below != nil && below.Value == t.Value {
				return true
			}
		}
	}
	return false
}

// Tiles returns the live tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(g.cells))
	for _, t := range g.cells {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Ghosts returns tiles consumed by a merge whose slide has not finished.
// They are not part of the board and only matter for rendering.
func (g *Grid) Ghosts() []*Tile {
	return g.ghosts
}

// Len returns the number of live tiles.
func (g *Grid) Len() int {
	n := 0
	for _, t := range g.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// Values returns the value matrix of the live tiles.
func (g *Grid) Values() Board {
	var b Board
	for _, t := range g.cells {
		if t != nil {
			b[t.Pos.Y][t.Pos.X] = t.Value
		}
	}
	return b
}

// MaxTile returns the highest tile value on the board.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, t := range g.cells {
		if t != nil && t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}
