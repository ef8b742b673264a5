package api

import (
	"time"

	"github.com/nouran-alaa/moviehub/internal/watchlist"
)

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type updateProfileRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type createMovieRequest struct {
	IMDBID      *string  `json:"imdb_id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"release_year"`
	Status      *string  `json:"status"`
	Plot        *string  `json:"plot"`
	Poster      *string  `json:"poster"`
	Rating      *float64 `json:"rating"`
}

type updateMovieRequest struct {
	Title       *string  `json:"title"`
	Genre       *string  `json:"genre"`
	ReleaseYear *int     `json:"release_year"`
	Status      *string  `json:"status"`
	Plot        *string  `json:"plot"`
	Poster      *string  `json:"poster"`
	Rating      *float64 `json:"rating"`
}

type movieResponse struct {
	ID          int64    `json:"id"`
	IMDBID      *string  `json:"imdb_id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"release_year"`
	Status      string   `json:"status"`
	Plot        *string  `json:"plot"`
	Poster      *string  `json:"poster"`
	Rating      *float64 `json:"rating"`
	WatchedDate *string  `json:"watched_date"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type listMoviesResponse struct {
	Movies []movieResponse `json:"movies"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type statsResponse struct {
	TotalMovies      int             `json:"total_movies"`
	WatchedMovies    int             `json:"watched_movies"`
	UnwatchedMovies  int             `json:"unwatched_movies"`
	WatchedThisMonth int             `json:"watched_this_month"`
	ByGenre          map[string]int  `json:"by_genre"`
	RecentWatched    []movieResponse `json:"recent_watched"`
}

func toUserResponse(u *watchlist.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toMovieResponse(m *watchlist.Movie) movieResponse {
	resp := movieResponse{
		ID:          m.ID,
		IMDBID:      m.IMDBID,
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseYear: m.ReleaseYear,
		Status:      string(m.Status),
		Plot:        m.Plot,
		Poster:      m.Poster,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if m.WatchedDate != nil {
		d := m.WatchedDate.UTC().Format(time.RFC3339)
		resp.WatchedDate = &d
	}
	return resp
}

func toMovieResponses(movies []*watchlist.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}
