// Package watchlist manages users and their saved movie collections.
package watchlist

import (
	"time"
)

// Status tracks whether a saved movie has been watched.
type Status string

const (
	StatusWatched   Status = "watched"
	StatusUnwatched Status = "unwatched"
)

// Genres lists the accepted genre values for a saved movie.
var Genres = []string{
	"action", "comedy", "drama", "horror", "sci-fi",
	"thriller", "romance", "documentary", "animation", "other",
}

// ValidGenre reports whether g is an accepted genre value.
func ValidGenre(g string) bool {
	for _, v := range Genres {
		if g == v {
			return true
		}
	}
	return false
}

// User is a registered account.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Movie is a saved watchlist entry, owned by a single user.
type Movie struct {
	ID          int64
	UserID      int64
	IMDBID      *string // nil when added manually without provider data
	Title       string
	Genre       string
	ReleaseYear int
	Status      Status
	Plot        *string
	Poster      *string
	Rating      *float64
	WatchedDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MovieFilter specifies criteria for listing a user's movies.
type MovieFilter struct {
	Status *Status
	Genre  *string
	Search *string // case-insensitive title substring; results ranked by similarity
	Limit  int     // 0 = no limit
	Offset int
}

// Stats summarizes a user's collection.
type Stats struct {
	TotalMovies      int
	WatchedMovies    int
	UnwatchedMovies  int
	WatchedThisMonth int
	ByGenre          map[string]int
	RecentWatched    []*Movie
}
