package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Manage your watchlist",
}

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved movies",
	Args:  cobra.NoArgs,
	RunE:  runMoviesListCmd,
}

var moviesAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a movie to the watchlist",
	Long: `Add a movie to the watchlist.

Examples:
  moviehub movies add "Inception" --genre sci-fi --year 2010
  moviehub movies add "Heat" --genre crime --year 1995 --watched`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMoviesAddCmd,
}

var moviesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a movie from the watchlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoviesDeleteCmd,
}

var moviesWatchedCmd = &cobra.Command{
	Use:   "watched <id>",
	Short: "Mark a movie as watched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetWatchedCmd(args[0], true)
	},
}

var moviesUnwatchedCmd = &cobra.Command{
	Use:   "unwatched <id>",
	Short: "Mark a movie as unwatched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetWatchedCmd(args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	moviesCmd.AddCommand(moviesListCmd)
	moviesCmd.AddCommand(moviesAddCmd)
	moviesCmd.AddCommand(moviesDeleteCmd)
	moviesCmd.AddCommand(moviesWatchedCmd)
	moviesCmd.AddCommand(moviesUnwatchedCmd)

	moviesListCmd.Flags().String("status", "", "Filter by status (watched or unwatched)")
	moviesListCmd.Flags().String("genre", "", "Filter by genre")
	moviesListCmd.Flags().String("search", "", "Filter by title")
	moviesListCmd.Flags().Int("limit", 0, "Maximum number of results")
	moviesListCmd.Flags().Int("offset", 0, "Skip the first N results")

	moviesAddCmd.Flags().String("genre", "other", "Genre")
	moviesAddCmd.Flags().Int("year", 0, "Release year")
	moviesAddCmd.Flags().String("imdb", "", "IMDb ID")
	moviesAddCmd.Flags().Float64("rating", 0, "Rating")
	moviesAddCmd.Flags().Bool("watched", false, "Mark as already watched")
}

func runMoviesListCmd(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	genre, _ := cmd.Flags().GetString("genre")
	search, _ := cmd.Flags().GetString("search")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	client := NewClient(serverURL)
	resp, err := client.Movies(status, genre, search, limit, offset)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Movies) == 0 {
		fmt.Println("No movies in your watchlist")
		return nil
	}

	rows := make([][]string, 0, len(resp.Movies))
	for _, m := range resp.Movies {
		rating := ""
		if m.Rating != nil {
			rating = fmt.Sprintf("%.1f", *m.Rating)
		}
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			m.Genre,
			strconv.Itoa(m.ReleaseYear),
			m.Status,
			rating,
		})
	}
	fmt.Println(renderTable(
		[]string{"ID", "Title", "Genre", "Year", "Status", "Rating"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight},
	))
	fmt.Printf("%d of %d movies\n", len(resp.Movies), resp.Total)
	return nil
}

func runMoviesAddCmd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	genre, _ := cmd.Flags().GetString("genre")
	year, _ := cmd.Flags().GetInt("year")
	imdbID, _ := cmd.Flags().GetString("imdb")
	rating, _ := cmd.Flags().GetFloat64("rating")
	watched, _ := cmd.Flags().GetBool("watched")

	req := map[string]any{
		"title":        title,
		"genre":        genre,
		"release_year": year,
	}
	if imdbID != "" {
		req["imdb_id"] = imdbID
	}
	if cmd.Flags().Changed("rating") {
		req["rating"] = rating
	}
	if watched {
		req["status"] = "watched"
	}

	client := NewClient(serverURL)
	movie, err := client.AddMovie(req)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(movie)
		return nil
	}
	fmt.Printf("Added #%d %s (%d)\n", movie.ID, movie.Title, movie.ReleaseYear)
	return nil
}

func runMoviesDeleteCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid movie ID: %s", args[0])
	}

	client := NewClient(serverURL)
	if err := client.DeleteMovie(id); err != nil {
		return err
	}
	fmt.Printf("Deleted #%d\n", id)
	return nil
}

func runSetWatchedCmd(arg string, watched bool) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid movie ID: %s", arg)
	}

	client := NewClient(serverURL)
	movie, err := client.SetWatched(id, watched)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(movie)
		return nil
	}
	fmt.Printf("#%d %s is now %s\n", movie.ID, movie.Title, movie.Status)
	return nil
}
