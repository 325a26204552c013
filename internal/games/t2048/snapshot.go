package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the logical game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Moves     int // Moves that changed the board
	Score     int
	Board     Board
	MaxTile   int
	TileCount int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.grid.Animating():
		state = StateAnimating
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Moves:     g.moves,
		Score:     g.score,
		Board:     g.grid.Values(),
		MaxTile:   g.grid.MaxTile(),
		TileCount: g.grid.Len(),
		State:     state,
	}
}
