package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the wall clock
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	GameOver  bool // No legal move remains and the board has settled
	Paused    bool // Input and animation are frozen
	Animating bool // At least one tile is mid-transition
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to leave
}
