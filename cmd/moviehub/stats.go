package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show watchlist statistics",
	Args:  cobra.NoArgs,
	RunE:  runStatsCmd,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check server health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := NewClient(serverURL)
		status, err := client.Status()
		if err != nil {
			return fmt.Errorf("status check failed: %w", err)
		}
		if jsonOutput {
			printJSON(status)
			return nil
		}
		fmt.Printf("Server: %s (%s)\n", serverURL, status.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(statusCmd)
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	stats, err := client.Stats()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(stats)
		return nil
	}

	fmt.Printf("Total:              %d\n", stats.TotalMovies)
	fmt.Printf("Watched:            %d\n", stats.WatchedMovies)
	fmt.Printf("Unwatched:          %d\n", stats.UnwatchedMovies)
	fmt.Printf("Watched this month: %d\n", stats.WatchedThisMonth)

	if len(stats.ByGenre) > 0 {
		genres := make([]string, 0, len(stats.ByGenre))
		for g := range stats.ByGenre {
			genres = append(genres, g)
		}
		sort.Strings(genres)

		rows := make([][]string, 0, len(genres))
		for _, g := range genres {
			rows = append(rows, []string{g, strconv.Itoa(stats.ByGenre[g])})
		}
		fmt.Println()
		fmt.Println(renderTable(
			[]string{"Genre", "Count"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}

	if len(stats.RecentWatched) > 0 {
		fmt.Println("\nRecently watched:")
		for _, m := range stats.RecentWatched {
			date := ""
			if m.WatchedDate != nil {
				date = (*m.WatchedDate)[:10]
			}
			fmt.Printf("  %s %s (%d)\n", date, m.Title, m.ReleaseYear)
		}
	}
	return nil
}
