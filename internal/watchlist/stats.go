package watchlist

import (
	"fmt"
	"time"
)

const recentWatchedLimit = 5

// Stats summarizes a user's collection: totals, watched counts for the
// current calendar month, a per-genre breakdown, and the most recently
// watched movies.
func (s *Store) Stats(userID int64) (*Stats, error) {
	stats := &Stats{ByGenre: make(map[string]int)}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(CASE WHEN status = 'watched' THEN 1 END),
			COUNT(CASE WHEN status = 'unwatched' THEN 1 END),
			COUNT(CASE WHEN status = 'watched' AND watched_date >= ? THEN 1 END)
		FROM movies WHERE user_id = ?`, monthStart, userID,
	).Scan(&stats.TotalMovies, &stats.WatchedMovies, &stats.UnwatchedMovies, &stats.WatchedThisMonth)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT genre, COUNT(*) FROM movies WHERE user_id = ? GROUP BY genre`, userID)
	if err != nil {
		return nil, fmt.Errorf("count by genre: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var genre string
		var count int
		if err := rows.Scan(&genre, &count); err != nil {
			return nil, fmt.Errorf("scan genre count: %w", err)
		}
		stats.ByGenre[genre] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre counts: %w", err)
	}

	recent, err := s.db.Query(
		"SELECT "+movieColumns+` FROM movies
		WHERE user_id = ? AND status = 'watched'
		ORDER BY watched_date DESC LIMIT ?`, userID, recentWatchedLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent watched: %w", err)
	}
	defer func() { _ = recent.Close() }()

	for recent.Next() {
		m, err := scanMovie(recent)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		stats.RecentWatched = append(stats.RecentWatched, m)
	}
	if err := recent.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent watched: %w", err)
	}

	return stats, nil
}
