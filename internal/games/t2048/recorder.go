package t2048

// Recorder receives the history of each game so it can be replayed later.
// Calls come from the goroutine driving the game.
type Recorder interface {
	// BeginGame is called after the grid of a new game is created. opts are
	// the settings the game runs with; replay needs the spawn probability.
	BeginGame(seed int64, opts Options)
	// RecordMove is called for every move that changed the board.
	RecordMove(dir Direction, res MoveResult)
	// EndGame is called once per game, on game over, restart or Finish.
	EndGame(s Snapshot)
}
