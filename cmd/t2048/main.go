// t2048 plays the 2048 sliding-tile puzzle in a terminal, in a desktop
// window or over SSH, and replays recorded games.
//
// Usage:
//
//	t2048 play              - Play in the terminal
//	t2048 gui               - Play in a desktop window
//	t2048 serve             - Start SSH server for remote play
//	t2048 history           - Browse recorded games
//	t2048 replay <id>       - Rebuild a recorded game from its moves
//	t2048 config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Use a custom config YAML
//	--record            - Record games into the replay journal
//	--journal <path>    - Set journal path (default: ~/.t2048/journal.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagConfigPath  string
	flagRecord      bool
	flagJournalPath string
	flagLogFile     string
	flagLogLevel    string

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle with animated tiles.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  history  - Browse recorded games
  replay   - Rebuild a recorded game from its moves
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --seed 42 --record
  t2048 gui
  t2048 serve --ssh :2222
  t2048 replay 3 --steps`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagRecord, "record", false, "Record games into the replay journal")
	rootCmd.PersistentFlags().StringVar(&flagJournalPath, "journal", "~/.t2048/journal.db", "Path to replay journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play logs nowhere by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	if flagFPS != 0 {
		cfg.Display.FPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	appConfig = cfg
	return nil
}
