package storage

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Journal records the games of one player into a Store. Write failures are
// logged and the game carries on; a Journal is owned by a single game loop.
type Journal struct {
	store    *Store
	frontEnd string
	logger   *log.Logger

	sessionID int64 // Zero when no session is open
	seq       int
}

// NewJournal creates a recorder for games played on the given front end.
func NewJournal(store *Store, frontEnd string, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.Default()
	}
	return &Journal{
		store:    store,
		frontEnd: frontEnd,
		logger:   logger.With("front_end", frontEnd),
	}
}

// BeginGame opens a new session.
func (j *Journal) BeginGame(seed int64, opts t2048.Options) {
	id, err := j.store.StartSession(seed, opts.Spawn4, j.frontEnd)
	if err != nil {
		j.logger.Warn("journal disabled for this game", "error", err)
		j.sessionID = 0
		return
	}
	j.sessionID = id
	j.seq = 0
	j.logger.Debug("session started", "session", id, "seed", seed)
}

// RecordMove appends a move to the open session.
func (j *Journal) RecordMove(dir t2048.Direction, res t2048.MoveResult) {
	if j.sessionID == 0 {
		return
	}
	j.seq++
	if err := j.store.RecordMove(j.sessionID, j.seq, dir.String(), res.Merges); err != nil {
		j.logger.Error("could not record move", "session", j.sessionID, "seq", j.seq, "error", err)
	}
}

// EndGame closes the open session.
func (j *Journal) EndGame(s t2048.Snapshot) {
	if j.sessionID == 0 {
		return
	}
	gameOver := s.State == t2048.StateGameOver
	if err := j.store.EndSession(j.sessionID, s.Moves, s.MaxTile, gameOver); err != nil {
		j.logger.Error("could not end session", "session", j.sessionID, "error", err)
	}
	j.logger.Debug("session ended", "session", j.sessionID, "moves", s.Moves, "max_tile", s.MaxTile)
	j.sessionID = 0
}

// SessionID returns the open session, or zero.
func (j *Journal) SessionID() int64 {
	return j.sessionID
}

// Ensure Journal implements t2048.Recorder
var _ t2048.Recorder = (*Journal)(nil)

// ReplaySession rebuilds a recorded game with the spawn probability it was
// played with. opts supply the rest. visit, if non-nil, sees every step.
func (s *Store) ReplaySession(id int64, opts t2048.Options, visit func(t2048.ReplayStep)) (SessionEntry, t2048.Snapshot, error) {
	entry, err := s.Session(id)
	if err != nil {
		return SessionEntry{}, t2048.Snapshot{}, err
	}

	moves, err := s.Moves(id)
	if err != nil {
		return entry, t2048.Snapshot{}, err
	}

	dirs := make([]t2048.Direction, 0, len(moves))
	for _, m := range moves {
		dir, err := t2048.ParseDirection(m.Direction)
		if err != nil {
			return entry, t2048.Snapshot{}, fmt.Errorf("storage: session %d move %d: %w", id, m.Seq, err)
		}
		dirs = append(dirs, dir)
	}

	opts.Spawn4 = entry.Spawn4
	return entry, t2048.Replay(entry.Seed, opts, dirs, visit), nil
}
