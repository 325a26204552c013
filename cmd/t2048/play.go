package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play 2048 in the terminal.

Controls:
  Arrow keys / WASD - Slide tiles
  R                 - Restart
  P / Esc           - Pause
  Ctrl+S            - Save a screenshot
  Q / Ctrl+C        - Quit

The terminal must be at least 40x21 characters.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --record --log-file /tmp/t2048.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger("t2048", false)
	if err != nil {
		return err
	}
	defer closeLog()

	game := t2048.New(gameOptions(appConfig))
	closeJournal, err := attachJournal(game, "tui", logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	if err := tui.Run(game, runtimeConfig(width, height), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
