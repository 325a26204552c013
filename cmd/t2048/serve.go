package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that gives every connection its own game.

Players connect with any SSH client:
  ssh -p 23234 localhost

With --record every remote game is written to the journal.

Examples:
  t2048 serve
  t2048 serve --ssh :2222
  t2048 serve --record --journal /var/lib/t2048/journal.db`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (default: ~/.t2048/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close connections idle for this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger("t2048-ssh", true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKeyPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = appConfig.Display.FPS
	cfg.Game = gameOptions(appConfig)
	cfg.Logger = logger
	if flagRecord {
		cfg.JournalPath = flagJournalPath
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}
