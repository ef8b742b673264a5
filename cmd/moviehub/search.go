package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [title]...",
	Short: "Search the metadata provider for movies",
	Long: `Search the metadata provider for movies.

Without a title, shows a default listing of popular movies.
Saved movies are marked in the SAVED column.

Examples:
  moviehub search
  moviehub search "The Matrix"`,
	RunE: runSearchCmd,
}

var detailsCmd = &cobra.Command{
	Use:   "details <imdb-id>",
	Short: "Show full provider details for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetailsCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(detailsCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	client := NewClient(serverURL)
	resp, err := client.Search(term)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Results) == 0 {
		fmt.Println("No movies found")
		return nil
	}

	rows := make([][]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		saved := ""
		if r.IsSaved {
			saved = "yes"
		}
		rows = append(rows, []string{
			r.IMDBID,
			r.Title,
			r.ReleaseYear,
			r.Rating,
			saved,
		})
	}
	fmt.Println(renderTable(
		[]string{"IMDb ID", "Title", "Year", "Rating", "Saved"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
	return nil
}

func runDetailsCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	detail, err := client.Details(args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(detail)
		return nil
	}

	fmt.Printf("%s (%s)\n", detail.Title, detail.ReleaseYear)
	fmt.Printf("IMDb:   %s\n", detail.IMDBID)
	fmt.Printf("Genre:  %s\n", detail.Genre)
	fmt.Printf("Rating: %s\n", detail.Rating)
	if detail.Plot != "" {
		fmt.Printf("\n%s\n", detail.Plot)
	}
	return nil
}
