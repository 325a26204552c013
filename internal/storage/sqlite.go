// Package storage provides the SQLite replay journal: the seed and move
// sequence of every recorded game, enough to rebuild it deterministically.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a session id does not exist.
var ErrNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// SessionEntry is one recorded game.
type SessionEntry struct {
	ID        int64
	Seed      int64
	Spawn4    float64 // Probability of a 4 the game was played with
	FrontEnd  string  // "tui", "gui" or "ssh"
	StartedAt time.Time
	EndedAt   time.Time // Zero while the game is open
	Moves     int
	MaxTile   int
	GameOver  bool
}

// MoveEntry is one board-changing move of a recorded game.
type MoveEntry struct {
	Seq       int
	Direction string
	Merges    int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			spawn4 REAL NOT NULL DEFAULT 0.1,
			front_end TEXT NOT NULL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME,
			moves INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			direction TEXT NOT NULL,
			merges INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (session_id, seq)
		);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.addColumn("sessions", "spawn4", "REAL NOT NULL DEFAULT 0.1")
}

// addColumn adds a column to a table created by an older version.
func (s *Store) addColumn(table, column, decl string) error {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column).Scan(&n)
	if err != nil || n > 0 {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl))
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession opens a journal entry for a new game.
// Returns the ID of the inserted record.
func (s *Store) StartSession(seed int64, spawn4 float64, frontEnd string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (seed, spawn4, front_end) VALUES (?, ?, ?)",
		seed, spawn4, frontEnd,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordMove appends a move to a session. seq starts at 1.
func (s *Store) RecordMove(sessionID int64, seq int, direction string, merges int) error {
	_, err := s.db.Exec(
		"INSERT INTO moves (session_id, seq, direction, merges) VALUES (?, ?, ?, ?)",
		sessionID, seq, direction, merges,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record move: %w", err)
	}
	return nil
}

// EndSession closes a session with its final summary.
func (s *Store) EndSession(sessionID int64, moves, maxTile int, gameOver bool) error {
	res, err := s.db.Exec(
		`UPDATE sessions
		 SET ended_at = CURRENT_TIMESTAMP, moves = ?, max_tile = ?, game_over = ?
		 WHERE id = ?`,
		moves, maxTile, gameOver, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

const sessionColumns = `id, seed, spawn4, front_end, started_at, ended_at, moves, max_tile, game_over`

// Sessions retrieves the most recent sessions, newest first.
func (s *Store) Sessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Session retrieves one session by ID.
func (s *Store) Session(id int64) (SessionEntry, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)

	e, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionEntry{}, ErrNotFound
	}
	return e, err
}

// Moves retrieves the moves of a session in play order.
func (s *Store) Moves(sessionID int64) ([]MoveEntry, error) {
	rows, err := s.db.Query(
		`SELECT seq, direction, merges
		 FROM moves
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveEntry
	for rows.Next() {
		var m MoveEntry
		if err := rows.Scan(&m.Seq, &m.Direction, &m.Merges); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return moves, nil
}

// DeleteSession removes a session and its moves.
func (s *Store) DeleteSession(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM moves WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete moves: %w", err)
	}
	res, err := tx.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (SessionEntry, error) {
	var e SessionEntry
	var startedAt, endedAt any
	if err := row.Scan(&e.ID, &e.Seed, &e.Spawn4, &e.FrontEnd, &startedAt, &endedAt, &e.Moves, &e.MaxTile, &e.GameOver); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.StartedAt = parseTime(startedAt)
	e.EndedAt = parseTime(endedAt)
	return e, nil
}

// parseTime handles both time.Time and string datetimes; NULL yields zero.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
