package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// ReplayStep is the state after one replayed move.
type ReplayStep struct {
	Index  int // 1-based
	Dir    Direction
	Result MoveResult
	Board  Board
	Score  int
}

// Replay rebuilds a game from its seed and the directions of its board-changing
// moves. Spawns come from the same seeded source, so the final board matches
// the recorded one. visit, if non-nil, sees the board after every move.
func Replay(seed int64, opts Options, dirs []Direction, visit func(ReplayStep)) Snapshot {
	opts.AnimationDuration = 0

	g := New(opts)
	g.Reset(core.RuntimeConfig{Seed: seed})

	for i, dir := range dirs {
		res := g.apply(dir)
		g.grid.Settle()
		if visit != nil {
			visit(ReplayStep{
				Index:  i + 1,
				Dir:    dir,
				Result: res,
				Board:  g.grid.Values(),
				Score:  g.score,
			})
		}
	}

	g.gameOver = !g.grid.CanMove()
	return g.Snapshot()
}
