package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is the single game-state object a front end drives once per frame.
type Game struct {
	opts     Options
	rng      *rand.Rand
	seed     int64
	seedFunc func() int64
	tick     uint64

	grid     *Grid
	score    int
	moves    int
	lastMove MoveResult
	recorder Recorder

	// Screen dimensions in terminal cells, zero when unknown
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
	ended    bool // Recorder has seen EndGame for the current game
}

// New creates a game with the given options. Call Reset before the first Step.
func New(opts Options) *Game {
	return &Game{
		opts:     opts,
		seedFunc: func() int64 { return time.Now().UnixNano() },
		ended:    true,
	}
}

// SetRecorder attaches a move journal. It takes effect at the next Reset.
func (g *Game) SetRecorder(r Recorder) {
	g.recorder = r
}

// Reset initializes/restarts the game. A zero seed is replaced by a
// time-based one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.endRecording()

	seed := cfg.Seed
	if seed == 0 {
		seed = g.seedFunc()
	}

	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.lastMove = MoveResult{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false

	g.grid = NewGrid(g.opts, g.rng)
	g.checkScreenSize()

	g.ended = false
	if g.recorder != nil {
		g.recorder.BeginGame(seed, g.opts)
	}
}

// Resize updates the terminal dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the terminal can hold the board and HUD.
func (g *Game) checkScreenSize() {
	if g.screenW == 0 && g.screenH == 0 {
		g.tooSmall = false
		return
	}
	g.tooSmall = g.screenW < MinScreenW || g.screenH < MinScreenH
}

// Step advances the game by one frame: input is resolved first, then
// transitions advance by dt, then game over is evaluated on a settled board.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.tick++

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Input arriving mid-animation is dropped, not queued
	if !g.grid.Animating() {
		g.handleInput(in)
	}

	g.grid.Animate(dt)

	if !g.gameOver && !g.grid.Animating() && !g.grid.CanMove() {
		g.gameOver = true
		g.endRecording()
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies restart or at most one move.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return
	}

	if g.gameOver {
		return
	}

	dir, ok := directionFor(in)
	if !ok {
		return
	}

	g.apply(dir)
}

// apply performs one move and books its score.
func (g *Game) apply(dir Direction) MoveResult {
	res := g.grid.Move(dir)
	g.lastMove = res
	if !res.Moved {
		return res
	}

	g.moves++
	g.score += res.Score
	if g.recorder != nil {
		g.recorder.RecordMove(dir, res)
	}
	return res
}

func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// Finish closes the current game in the journal. Front ends call it on quit.
func (g *Game) Finish() {
	g.endRecording()
}

func (g *Game) endRecording() {
	if g.ended || g.grid == nil {
		return
	}
	g.ended = true
	if g.recorder != nil {
		g.recorder.EndGame(g.Snapshot())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.grid == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.score,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
		Animating: g.grid.Animating(),
	}
}

// Grid exposes the board for rendering.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Seed returns the seed of the current game.
func (g *Game) Seed() int64 {
	return g.seed
}

// LastMove returns the result of the most recent move attempt.
func (g *Game) LastMove() MoveResult {
	return g.lastMove
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
