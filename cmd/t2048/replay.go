package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagReplaySteps bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Rebuild a recorded game from its moves",
	Long: `Rebuild a recorded game from its seed and moves and print the board.

The game is replayed with the spawn probability it was recorded with.

Examples:
  t2048 replay 3
  t2048 replay 3 --steps`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplaySteps, "steps", false, "Print the board after every move")
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("session id %q is not a number", args[0])
	}

	store, err := storage.Open(flagJournalPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return replaySession(cmd.OutOrStdout(), store, id, flagReplaySteps)
}

// replaySession prints a recorded game to w.
func replaySession(w io.Writer, store *storage.Store, id int64, steps bool) error {
	var visit func(t2048.ReplayStep)
	if steps {
		visit = func(s t2048.ReplayStep) {
			fmt.Fprintf(w, "#%d %s (+%d, score %d)\n", s.Index, s.Dir, s.Result.Score, s.Score)
			writeBoard(w, s.Board)
			fmt.Fprintln(w)
		}
	}

	entry, snap, err := store.ReplaySession(id, gameOptions(appConfig), visit)
	if err != nil {
		return fmt.Errorf("replaying session %d: %w", id, err)
	}

	fmt.Fprintf(w, "Session %d (%s), seed %d, p(4) %g\n", entry.ID, entry.FrontEnd, entry.Seed, entry.Spawn4)
	fmt.Fprintf(w, "Moves: %d  Score: %d  Max: %d\n", snap.Moves, snap.Score, snap.MaxTile)
	writeBoard(w, snap.Board)
	if snap.State == t2048.StateGameOver {
		fmt.Fprintln(w, "Game over")
	}
	return nil
}

// writeBoard prints the board as a fixed-width grid, "." for empty slots.
func writeBoard(w io.Writer, b t2048.Board) {
	for _, row := range b {
		cells := make([]string, len(row))
		for x, v := range row {
			s := "."
			if v != 0 {
				s = strconv.Itoa(v)
			}
			cells[x] = fmt.Sprintf("%5s", s)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}
