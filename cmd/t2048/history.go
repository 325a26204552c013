package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded games",
	Long: `Browse the games recorded with --record, newest first.

On a terminal the list is interactive: press Enter to replay the
selected game. Otherwise, or with --plain, it is printed as text.

Examples:
  t2048 history
  t2048 history --limit 50 --plain`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of games to list")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the interactive list")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagJournalPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.Sessions(flagHistoryLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No recorded games. Play with --record to keep a journal.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if flagHistoryPlain || !term.IsTerminal(fd) {
		return printHistory(out, sessions)
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = 80, 24
	}

	selected, err := tui.RunHistory(sessions, width, height)
	if err != nil || selected == 0 {
		return err
	}

	return replaySession(out, store, selected, false)
}

func printHistory(out io.Writer, sessions []storage.SessionEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tVIA\tMOVES\tMAX\tRESULT")
	for _, row := range tui.HistoryRows(sessions) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}
	return w.Flush()
}
