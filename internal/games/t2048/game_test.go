package t2048

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(b Board) *Game {
	g := New(DefaultOptions())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.grid.LoadBoard(b)
	return g
}

// settle runs empty frames until the board stops animating.
func settle(g *Game) {
	for i := 0; i < 100 && g.grid.Animating(); i++ {
		g.Step(core.InputFrame{}, 16*time.Millisecond)
	}
}

type recordedMove struct {
	dir Direction
	res MoveResult
}

type fakeRecorder struct {
	seeds []int64
	moves []recordedMove
	ends  []Snapshot
}

func (r *fakeRecorder) BeginGame(seed int64, _ Options) { r.seeds = append(r.seeds, seed) }

func (r *fakeRecorder) RecordMove(dir Direction, res MoveResult) {
	r.moves = append(r.moves, recordedMove{dir, res})
}

func (r *fakeRecorder) EndGame(s Snapshot) { r.ends = append(r.ends, s) }

func TestGameDeterminism(t *testing.T) {
	seed := int64(12345)
	inputs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

	run := func() Snapshot {
		g := New(DefaultOptions())
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
		for i := range 40 {
			g.Step(frame(inputs[i%len(inputs)]), 16*time.Millisecond)
			settle(g)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Board != b.Board || a.Score != b.Score || a.Moves != b.Moves {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestResetZeroSeedUsesClock(t *testing.T) {
	g := New(DefaultOptions())
	g.seedFunc = func() int64 { return 77 }
	g.Reset(core.RuntimeConfig{})

	if g.Seed() != 77 {
		t.Errorf("Seed() = %d, want 77", g.Seed())
	}
	if g.Grid().Len() != 2 {
		t.Errorf("new game has %d tiles, want 2", g.Grid().Len())
	}
}

func TestStepScoresMerges(t *testing.T) {
	g := newTestGame(Board{{2, 2, 0, 0}, {4, 4, 0, 0}})

	res := g.Step(frame(core.ActionLeft), 16*time.Millisecond)
	if res.State.Score != 12 {
		t.Errorf("score = %d, want 12", res.State.Score)
	}
	if !res.State.Animating {
		t.Error("state should report animation after a move")
	}
	if g.LastMove().Merges != 2 {
		t.Errorf("merges = %d, want 2", g.LastMove().Merges)
	}
}

func TestInputIgnoredWhileAnimating(t *testing.T) {
	g := newTestGame(Board{{0, 0, 0, 2}})

	g.Step(frame(core.ActionLeft), 0)
	after := g.Grid().Values()

	g.Step(frame(core.ActionRight), 0)
	if g.Grid().Values() != after {
		t.Error("move applied while tiles were sliding")
	}

	g.Step(core.InputFrame{}, time.Second)
	if g.State().Animating {
		t.Fatal("board did not settle")
	}

	g.Step(frame(core.ActionRight), 0)
	if g.Grid().Values() == after {
		t.Error("move ignored after the board settled")
	}
}

func TestGameOverWaitsForSettle(t *testing.T) {
	g := newTestGame(stuckBoard)
	tile := g.grid.TileAt(0, 0)
	tile.Display = g.grid.Layout().Pixel(Coord{X: 1})
	g.grid.startTransition(tile, g.grid.Layout().Pixel(Coord{}))

	g.Step(core.InputFrame{}, 0)
	if g.State().GameOver {
		t.Fatal("game over declared while a tile was sliding")
	}

	g.Step(core.InputFrame{}, time.Second)
	if !g.State().GameOver {
		t.Fatal("game over not declared on a settled stuck board")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("snapshot state = %s, want %s", g.Snapshot().State, StateGameOver)
	}
}

func TestGameOverBlocksMovesUntilRestart(t *testing.T) {
	g := newTestGame(stuckBoard)
	g.Step(core.InputFrame{}, 0)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(frame(core.ActionLeft), 0)
	if g.Grid().Values() != stuckBoard {
		t.Error("board changed after game over")
	}

	g.Step(frame(core.ActionRestart), 0)
	state := g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("after restart state = %+v", state)
	}
	if g.Grid().Len() != 2 {
		t.Errorf("restarted game has %d tiles, want 2", g.Grid().Len())
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(Board{{0, 0, 0, 2}})
	before := g.Grid().Values()

	g.Step(frame(core.ActionPause), 0)
	if !g.State().Paused {
		t.Fatal("pause not toggled")
	}

	g.Step(frame(core.ActionLeft), 0)
	if g.Grid().Values() != before {
		t.Error("move applied while paused")
	}

	g.Step(frame(core.ActionPause), 0)
	if g.State().Paused {
		t.Error("pause not released")
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(Board{})
	if res := g.Step(frame(core.ActionQuit), 0); !res.Quit {
		t.Error("quit action did not request exit")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}
	before := g.Grid().Values()
	g.Step(frame(core.ActionLeft), 0)
	g.Step(frame(core.ActionUp), 0)
	if g.Grid().Values() != before {
		t.Error("move applied on a too small screen")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("after resize state = %s, want %s", g.Snapshot().State, StatePlaying)
	}
	if g.Grid().Values() != before {
		t.Error("resize changed the board")
	}
}

func TestRecorderLifecycle(t *testing.T) {
	rec := &fakeRecorder{}
	g := New(DefaultOptions())
	g.SetRecorder(rec)
	g.Reset(core.RuntimeConfig{Seed: 9})
	g.grid.LoadBoard(Board{{0, 0, 0, 2}})

	g.Step(frame(core.ActionLeft), 0)
	settle(g)
	// Nothing can slide left
	g.grid.LoadBoard(Board{{2, 4, 8, 16}})
	g.Step(frame(core.ActionLeft), 0)

	g.Finish()
	g.Finish()

	if len(rec.seeds) != 1 || rec.seeds[0] != 9 {
		t.Errorf("BeginGame seeds = %v, want [9]", rec.seeds)
	}
	if len(rec.moves) != 1 || rec.moves[0].dir != DirLeft {
		t.Errorf("recorded moves = %+v, want one left", rec.moves)
	}
	if len(rec.ends) != 1 || rec.ends[0].Moves != 1 {
		t.Errorf("EndGame calls = %+v, want one with 1 move", rec.ends)
	}
}

func TestRecorderRestartClosesGame(t *testing.T) {
	rec := &fakeRecorder{}
	g := New(DefaultOptions())
	g.SetRecorder(rec)
	g.seedFunc = func() int64 { return 5 }
	g.Reset(core.RuntimeConfig{Seed: 3})

	g.Step(frame(core.ActionRestart), 0)

	if len(rec.ends) != 1 || rec.ends[0].Seed != 3 {
		t.Errorf("EndGame calls = %+v, want the seed 3 game", rec.ends)
	}
	if len(rec.seeds) != 2 || rec.seeds[1] != 5 {
		t.Errorf("BeginGame seeds = %v, want [3 5]", rec.seeds)
	}
}

func TestReplayMatchesLiveGame(t *testing.T) {
	rec := &fakeRecorder{}
	g := New(DefaultOptions())
	g.SetRecorder(rec)
	g.Reset(core.RuntimeConfig{Seed: 2024})

	actions := []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionDown, core.ActionUp}
	for i := range 60 {
		g.Step(frame(actions[i%len(actions)]), 16*time.Millisecond)
		settle(g)
	}

	dirs := make([]Direction, len(rec.moves))
	for i, m := range rec.moves {
		dirs[i] = m.dir
	}

	steps := 0
	snap := Replay(g.Seed(), DefaultOptions(), dirs, func(ReplayStep) { steps++ })

	live := g.Snapshot()
	if snap.Board != live.Board {
		t.Errorf("replayed board %v, live %v", snap.Board, live.Board)
	}
	if snap.Score != live.Score || snap.Moves != live.Moves {
		t.Errorf("replay score/moves = %d/%d, live %d/%d", snap.Score, snap.Moves, live.Score, live.Moves)
	}
	if steps != len(dirs) {
		t.Errorf("visited %d steps, want %d", steps, len(dirs))
	}
}

func TestControls(t *testing.T) {
	g := New(DefaultOptions())
	if !strings.Contains(g.Controls(), "R: Restart") {
		t.Errorf("Controls() = %q", g.Controls())
	}
}
