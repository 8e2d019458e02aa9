package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aplus-runner/internal/config"
	"github.com/vovakirdan/aplus-runner/internal/platform/tui"
	"github.com/vovakirdan/aplus-runner/internal/storage"
)

var (
	flagChapter int
	flagLimit   int
	flagBrowse  bool
	flagClear   bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the run history",
	Long: `Display finished runs from the run history.

Without --chapter the most recent runs across all chapters are listed.
With --chapter the best runs of that chapter are listed, highest grade
first, along with the chapter's totals.

The history is a log only: unlocked chapters and the roster always
start fresh when the game starts.

Examples:
  runner records
  runner records --chapter 2 --limit 5
  runner records --browse
  runner records --clear`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagChapter, "chapter", 0, "Show the best runs of this chapter")
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of runs to list")
	recordsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history browser")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runRecords(_ *cobra.Command, _ []string) {
	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	chapters := runnerCfg.Chapters.Count

	if flagChapter < 0 || flagChapter > chapters {
		fmt.Fprintf(os.Stderr, "Error: chapter must be between 1 and %d\n", chapters)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}

	runErr := showRecords(store, chapters)
	store.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func showRecords(store *storage.Store, chapters int) error {
	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		start := flagChapter
		if start == 0 {
			start = 1
		}
		return tui.RunRecords(store, chapters, start, width, height)
	}

	var runs []storage.RunRecord
	var err error
	if flagChapter > 0 {
		fmt.Printf("Best Runs - Chapter %d\n", flagChapter)
		runs, err = store.BestRuns(flagChapter, flagLimit)
	} else {
		fmt.Println("Recent Runs")
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return err
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-3s  %-10s  %-5s  %-5s  %-5s  %-3s  %s\n", "#", "Ch", "Grade", "Time", "Score", "Team", "By", "Date")
	fmt.Printf("  %-4s  %-3s  %-10s  %-5s  %-5s  %-5s  %-3s  %s\n", "--", "--", "-----", "----", "-----", "----", "--", "----")

	for i, r := range runs {
		row := tui.RunRow(i+1, r)
		fmt.Printf("  %-4s  %-3s  %-10s  %-5s  %-5s  %-5s  %-3s  %s\n",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7])
	}

	if flagChapter > 0 {
		stats, err := store.ChapterStats(flagChapter)
		if err == nil {
			fmt.Println()
			fmt.Printf("Attempts: %d  Clears: %d  Best: %s  High score: %d\n",
				stats.Attempts, stats.Clears, stats.BestGrade, stats.HighScore)
		}
	}
	return nil
}
