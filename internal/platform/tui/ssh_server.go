package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// shutdownGrace bounds how long Serve waits for open sessions on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServerConfig configures remote play.
type SSHServerConfig struct {
	Address     string // host:port, e.g. ":23234"
	HostKeyPath string // Generated on first start; empty means ~/.t2048/host_key
	JournalPath string // Replay journal; empty disables recording
	IdleTimeout time.Duration
	TickRate    int
	Game        t2048.Options // Board settings of every session
	Logger      *log.Logger   // Nil logs to stderr
}

// DefaultSSHServerConfig returns the settings used by `t2048 serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        t2048.DefaultOptions(),
	}
}

type contextKey struct{ name string }

var gameContextKey = &contextKey{"game"}

// SSHServer gives every SSH session its own game. Sessions share nothing but
// the optional journal.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares the host key and the journal. A journal that cannot
// be opened disables recording instead of failing the server.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048-ssh",
		})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, logger: cfg.Logger}

	if cfg.JournalPath != "" {
		if s.store, err = storage.Open(cfg.JournalPath); err != nil {
			s.logger.Warn("journal unavailable, games will not be recorded", "error", err)
		}
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.trackSession,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".t2048", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea model of one connection. activeterm has
// already rejected sessions without a PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logger := s.logger.With("user", sess.User())

	game := t2048.New(s.config.Game)
	if s.store != nil {
		game.SetRecorder(storage.NewJournal(s.store, "ssh", logger))
	}
	sess.Context().SetValue(gameContextKey, game)

	model := NewModel(game,
		core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
		},
		WithRenderer(bubbletea.MakeRenderer(sess)),
		WithLogger(logger),
	)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// trackSession logs connections and closes the journal entry of a client
// that dropped mid-game.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", s.active.Add(1),
		)

		next(sess)

		if game, ok := sess.Context().Value(gameContextKey).(*t2048.Game); ok {
			game.Finish()
		}
		s.logger.Info("session ended",
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
			"active", s.active.Add(-1),
		)
	}
}

// Serve accepts connections until ctx is done, then shuts down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	defer s.closeStore()
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
