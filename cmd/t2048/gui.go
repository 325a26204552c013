package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Play 2048 in a desktop window with the pixel layout from the config.

Controls:
  Arrow keys / WASD - Slide tiles
  R                 - Restart
  P                 - Pause
  Q                 - Quit

Examples:
  t2048 gui
  t2048 gui --seed 7 --record`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func runGUI(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger("t2048-gui", true)
	if err != nil {
		return err
	}
	defer closeLog()

	game := t2048.New(gameOptions(appConfig))
	closeJournal, err := attachJournal(game, "gui", logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	return gui.Run(game, runtimeConfig(0, 0), logger)
}
