// statscmd.go
//
// `wordler stats` — print the aggregated play record.

package main

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wordler/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := stats.Open(getEnv("STATS_DB", "data/wordler.db"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open stats store")
		}
		defer store.Close()

		sum, err := store.Summary(cmd.Context())
		if err != nil {
			return err
		}
		printSummary(sum)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printSummary(sum stats.Summary) {
	if sum.Games == 0 {
		fmt.Println("No games recorded yet. Try 'wordler play'.")
		return
	}
	fmt.Printf("Games played:   %d\n", sum.Games)
	fmt.Printf("Games won:      %d (%.1f%%)\n", sum.Wins, float64(sum.Wins)*100/float64(sum.Games))
	fmt.Printf("Current streak: %d\n", sum.Streak)

	if len(sum.Distribution) == 0 {
		return
	}
	fmt.Println("Guess distribution:")
	guesses := make([]int, 0, len(sum.Distribution))
	for g := range sum.Distribution {
		guesses = append(guesses, g)
	}
	sort.Ints(guesses)
	for _, g := range guesses {
		fmt.Printf("  %d: %d\n", g, sum.Distribution[g])
	}
}
