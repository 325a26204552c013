package t2048

import (
	"math/rand"
	"testing"
)

func newTestGrid(b Board) *Grid {
	g := newEmptyGrid(DefaultOptions(), rand.New(rand.NewSource(1)))
	g.LoadBoard(b)
	return g
}

// withoutSpawn returns the board with the tile spawned by res removed.
func withoutSpawn(g *Grid, res MoveResult) Board {
	b := g.Values()
	if res.Spawned != nil {
		b[res.Spawned.Pos.Y][res.Spawned.Pos.X] = 0
	}
	return b
}

func boardSum(b Board) int {
	sum := 0
	for y := range Size {
		for x := range Size {
			sum += b[y][x]
		}
	}
	return sum
}

func TestMoveLeftRow(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
		moved    bool
	}{
		{"simple merge", [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}, 4, true},
		{"merge with trailing tile", [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, 4, true},
		{"double merge", [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, 8, true},
		{"no chain merge", [4]int{4, 4, 8, 0}, [4]int{8, 8, 0, 0}, 8, true},
		{"no merge possible", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, 0, false},
		{"slide with gap", [4]int{0, 0, 2, 2}, [4]int{4, 0, 0, 0}, 4, true},
		{"slide with multiple gaps", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, 4, true},
		{"no change needed", [4]int{4, 2, 0, 0}, [4]int{4, 2, 0, 0}, 0, false},
		{"empty row", [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}, 0, false},
		{"single tile", [4]int{0, 4, 0, 0}, [4]int{4, 0, 0, 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			b[0] = tt.input
			g := newTestGrid(b)

			res := g.Move(DirLeft)
			got := withoutSpawn(g, res)

			if got[0] != tt.expected {
				t.Errorf("Move(left) row = %v, want %v", got[0], tt.expected)
			}
			if res.Score != tt.score {
				t.Errorf("Move(left) score = %d, want %d", res.Score, tt.score)
			}
			if res.Moved != tt.moved {
				t.Errorf("Move(left) moved = %v, want %v", res.Moved, tt.moved)
			}
		})
	}
}

func TestMoveAllDirections(t *testing.T) {
	start := Board{
		{2, 2, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	tests := []struct {
		name     string
		dir      Direction
		board    Board
		expected Board
	}{
		{
			name:  "right",
			dir:   DirRight,
			board: start,
			expected: Board{
				{0, 0, 2, 4},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			board: Board{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			board: Board{
				{0, 0, 0, 8},
				{0, 0, 0, 8},
				{0, 0, 0, 4},
				{0, 0, 0, 4},
			},
			expected: Board{
				{0, 0, 0, 16},
				{0, 0, 0, 8},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(tt.board)
			res := g.Move(tt.dir)
			if got := withoutSpawn(g, res); got != tt.expected {
				t.Errorf("Move(%s) = %v, want %v", tt.dir, got, tt.expected)
			}
			if !res.Moved || res.Spawned == nil {
				t.Errorf("Move(%s) should move and spawn, got %+v", tt.dir, res)
			}
		})
	}
}

func TestMoveRightAcrossGap(t *testing.T) {
	var b Board
	b[0][0] = 2
	b[0][3] = 2
	g := newTestGrid(b)

	res := g.Move(DirRight)

	if got := g.TileAt(3, 0); got == nil || got.Value != 4 {
		t.Fatalf("tile at (3,0) = %+v, want value 4", got)
	}
	if res.Merges != 1 || res.Score != 4 {
		t.Errorf("merges = %d score = %d, want 1 and 4", res.Merges, res.Score)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want merged tile plus one spawn", g.Len())
	}
	if len(g.Ghosts()) != 1 {
		t.Errorf("ghosts = %d, want 1", len(g.Ghosts()))
	}
}

func TestMoveNoChangeDoesNotSpawn(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := newTestGrid(b)

	for _, dir := range []Direction{DirLeft, DirUp} {
		res := g.Move(dir)
		if res.Moved || res.Spawned != nil {
			t.Errorf("Move(%s) = %+v, want no change", dir, res)
		}
		if g.Values() != b {
			t.Errorf("Move(%s) changed the board: %v", dir, g.Values())
		}
		if g.Animating() {
			t.Errorf("Move(%s) started an animation", dir)
		}
	}
}

func TestMoveConservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := NewGrid(DefaultOptions(), rng)

	for i := range 200 {
		dir := Directions[i%len(Directions)]
		before := boardSum(g.Values())

		res := g.Move(dir)
		g.Settle()

		after := boardSum(g.Values())
		spawned := 0
		if res.Spawned != nil {
			spawned = res.Spawned.Value
		}
		if after != before+spawned {
			t.Fatalf("move %d (%s): sum %d -> %d, spawned %d", i, dir, before, after, spawned)
		}
		if !res.Moved && res.Spawned != nil {
			t.Fatalf("move %d (%s): spawned without moving", i, dir)
		}
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGrid(DefaultOptions(), rng)

		for i := range 300 {
			if !g.CanMove() {
				break
			}
			dir := Directions[rng.Intn(len(Directions))]
			before := g.Len()

			res := g.Move(dir)
			g.Settle()

			want := before - res.Merges
			if res.Spawned != nil {
				want++
			}
			if g.Len() != want {
				t.Fatalf("seed %d move %d (%s): %d tiles -> %d, merges %d, spawned %v",
					seed, i, dir, before, g.Len(), res.Merges, res.Spawned != nil)
			}

			for _, tile := range g.Tiles() {
				if v := tile.Value; v < 2 || v&(v-1) != 0 {
					t.Fatalf("seed %d move %d: tile at %v has value %d", seed, i, tile.Pos, v)
				}
				if tile.Display != g.Layout().Pixel(tile.Pos) {
					t.Fatalf("seed %d move %d: settled tile at %v displayed at %v", seed, i, tile.Pos, tile.Display)
				}
			}
			if len(g.Ghosts()) != 0 {
				t.Fatalf("seed %d move %d: %d ghosts after settle", seed, i, len(g.Ghosts()))
			}
		}
	}
}

func TestMoveKeepsArenaConsistent(t *testing.T) {
	g := NewGrid(DefaultOptions(), rand.New(rand.NewSource(5)))

	for i := range 100 {
		g.Move(Directions[(i*7)%len(Directions)])
		g.Settle()

		for y := range Size {
			for x := range Size {
				tile := g.TileAt(x, y)
				if tile == nil {
					continue
				}
				if tile.Pos != (Coord{X: x, Y: y}) {
					t.Fatalf("tile at (%d,%d) reports position %v", x, y, tile.Pos)
				}
				if tile.Display != g.Layout().Pixel(tile.Pos) {
					t.Fatalf("settled tile at (%d,%d) displayed at %v", x, y, tile.Display)
				}
			}
		}
	}
}

func TestMergeFlagsResetEachMove(t *testing.T) {
	var b Board
	b[0] = [4]int{2, 2, 4, 0}
	g := newTestGrid(b)

	g.Move(DirLeft)
	g.Settle()
	if got := g.TileAt(0, 0); got == nil || got.Value != 4 || !got.Merged {
		t.Fatalf("after first move tile (0,0) = %+v, want merged 4", got)
	}

	// The 4 produced above may merge again on the next move
	g.LoadBoard(Board{{4, 4, 0, 0}})
	g.TileAt(0, 0).Merged = true
	res := g.Move(DirLeft)
	if res.Merges != 1 {
		t.Errorf("merges = %d, want 1", res.Merges)
	}
}
