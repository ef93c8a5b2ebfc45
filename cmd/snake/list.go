package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows all registered game variants with the runs and best score recorded for each.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Debug("listing without scores", "error", err)
	} else {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			logger.Warn("could not load stats", "error", err)
		}
		store.Close()
	}

	writeVariantList(os.Stdout, registry.List(), stats)
}

// writeVariantList prints the variant table. stats may be nil.
func writeVariantList(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No variants available.")
		return
	}

	fmt.Fprintln(w, "Available variants:")
	fmt.Fprintln(w)

	idLen, titleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		idLen = max(idLen, len(g.ID))
		titleLen = max(titleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %5s  %5s\n", idLen, "ID", titleLen, "Title", "Runs", "Best")
	fmt.Fprintf(w, "  %-*s  %-*s  %5s  %5s\n", idLen, "--", titleLen, "-----", "----", "----")
	for _, g := range games {
		runs, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			runs, best = st.GamesCount, st.HighScore
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %5d  %5d\n", idLen, g.ID, titleLen, g.Title, runs, best)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake play <id>' to play a variant.")
}
