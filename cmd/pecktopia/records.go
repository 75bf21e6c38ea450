package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pecktopia/internal/platform/tui"
	"github.com/vovakirdan/pecktopia/internal/storage"
)

var (
	flagClear bool
	flagPlain bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show the fastest runs",
	Long: `Display the fastest completions of a level (default: level 1).

In a terminal the records board opens interactively; use --plain for a
text listing, where runs of --owner are marked with *.

Examples:
  pecktopia records
  pecktopia records 3 --plain
  pecktopia records 2 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the level")
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text listing")
}

func runRecords(_ *cobra.Command, args []string) {
	catalog := mustCatalog()

	levelID := 1
	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: level must be a number, got %q\n", args[0])
			os.Exit(1)
		}
		levelID = id
	}
	info, ok := catalog.Info(levelID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'pecktopia levels' to see available levels.")
		os.Exit(1)
	}

	store := openStoreOrExit()
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs of %s.\n", info.Name)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		if err := tui.RunRecords(store, catalog, levelID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.BestRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Records - %s\n", info.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pecktopia play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %-16s  %s\n", "Rank", "Time", "Ticks", "Chicken", "Date", "Items")
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %-16s  %s\n", "----", "----", "-----", "-------", "----", "-----")
	for i, r := range runs {
		fmt.Println(formatRunLine(i+1, r, flagOwner))
	}

	if stats, err := store.RunStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %.1fs  Average: %.1fs\n",
			stats.Runs, stats.Best.Seconds(), stats.Average.Seconds())
	}
}

// formatRunLine renders one row of the plain listing. Runs of owner
// carry a leading star.
func formatRunLine(rank int, r storage.RunEntry, owner string) string {
	mark := " "
	if r.Owner == owner {
		mark = "*"
	}
	return fmt.Sprintf("%s %-4d  %-8s  %-6d  %-12s  %-16s  %s",
		mark,
		rank,
		fmt.Sprintf("%.1fs", r.Duration.Seconds()),
		r.Ticks,
		r.Owner,
		r.CreatedAt.Format("2006-01-02 15:04"),
		strings.Join(r.Items, ", "),
	)
}
