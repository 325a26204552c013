package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration in effect after the search order and flag
overrides are applied, as YAML.

Search order:
  1. --config <path>
  2. ~/.t2048/config.yaml
  3. ./configs/t2048.yaml
  4. Built-in defaults

Examples:
  t2048 config > ~/.t2048/config.yaml
  t2048 config --config ./fast.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := config.Marshal(appConfig)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// gameOptions converts the configuration into engine options.
func gameOptions(cfg config.Config) t2048.Options {
	return t2048.Options{
		Layout: t2048.Layout{
			TileSize:   cfg.Board.TileSize,
			TileMargin: cfg.Board.TileMargin,
		},
		Spawn4:            cfg.Spawn.FourProbability,
		AnimationDuration: cfg.Animation.Duration(),
	}
}

// runtimeConfig builds the runtime config for a front end of the given size.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: appConfig.Display.FPS,
		Seed:     flagSeed,
	}
}

// attachJournal opens the journal when --record is set and records the
// games of game into it. The returned close func is never nil.
func attachJournal(game *t2048.Game, frontEnd string, logger *log.Logger) (func(), error) {
	if !flagRecord {
		return func() {}, nil
	}

	store, err := storage.Open(flagJournalPath)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	game.SetRecorder(storage.NewJournal(store, frontEnd, logger))
	logger.Debug("recording games", "journal", flagJournalPath)

	return func() { store.Close() }, nil
}
