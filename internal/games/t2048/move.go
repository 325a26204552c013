package t2048

import "sort"

// MoveResult describes what a move did to the grid.
type MoveResult struct {
	Moved   bool  // Any tile slid or merged
	Merges  int   // Number of merged pairs
	Score   int   // Sum of the values produced by merges
	Spawned *Tile // Tile added after the move, nil if none
}

// Move slides every tile in direction dir, merging equal neighbours once per
// move, and spawns one tile if anything changed. Tiles that change cell start
// a transition towards their new layout position.
func (g *Grid) Move(dir Direction) MoveResult {
	var res MoveResult
	dx, dy := dir.Vector()
	if dx == 0 && dy == 0 {
		return res
	}

	g.ResetMergeFlags()

	for _, from := range g.processingOrder(dir) {
		// Earlier merges may have emptied this cell
		t := g.at(from)
		if t == nil {
			continue
		}

		to := from
		merged := false
		for {
			next := to.Step(dir)
			if !next.InBounds() {
				break
			}
			other := g.at(next)
			if other == nil {
				to = next
				continue
			}
			if other.Value == t.Value && !other.Merged && !t.Merged {
				other.Value *= 2
				other.Merged = true
				t.Merged = true
				g.consume(t, next)
				res.Merges++
				res.Score += other.Value
				merged = true
			}
			break
		}

		if merged {
			res.Moved = true
			continue
		}
		if to != from {
			g.cells[from.index()] = nil
			g.cells[to.index()] = t
			t.Pos = to
			g.startTransition(t, g.opts.Layout.Pixel(to))
			res.Moved = true
		}
	}

	if res.Moved {
		if spawned, ok := g.SpawnTile(); ok {
			res.Spawned = spawned
		}
	}
	return res
}

// processingOrder snapshots the occupied coordinates, nearest the target edge first.
func (g *Grid) processingOrder(dir Direction) []Coord {
	order := make([]Coord, 0, len(g.cells))
	for _, t := range g.cells {
		if t != nil {
			order = append(order, t.Pos)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		switch dir {
		case DirRight:
			return a.X > b.X
		case DirLeft:
			return a.X < b.X
		case DirDown:
			return a.Y > b.Y
		case DirUp:
			return a.Y < b.Y
		}
		return false
	})
	return order
}

// consume removes a merged tile from the board and lets it slide into the
// survivor at target as a ghost.
func (g *Grid) consume(t *Tile, target Coord) {
	g.cells[t.Pos.index()] = nil
	t.Pos = target
	g.startTransition(t, g.opts.Layout.Pixel(target))
	g.ghosts = append(g.ghosts, t)
}
