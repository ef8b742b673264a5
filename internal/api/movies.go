package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nouran-alaa/moviehub/internal/watchlist"
)

const (
	earliestReleaseYear = 1888
	maxYearsAhead       = 5
)

func validReleaseYear(year int) bool {
	return year >= earliestReleaseYear && year <= time.Now().Year()+maxYearsAhead
}

func validStatus(s string) bool {
	return s == string(watchlist.StatusWatched) || s == string(watchlist.StatusUnwatched)
}

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)

	filter := watchlist.MovieFilter{
		Genre:  queryString(r, "genre"),
		Search: queryString(r, "search"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		if !validStatus(status) {
			writeError(w, http.StatusBadRequest, "Status must be watched or unwatched")
			return
		}
		st := watchlist.Status(status)
		filter.Status = &st
	}

	movies, total, err := s.store.ListMovies(claims.UserID, filter)
	if err != nil {
		s.log.Error("list movies", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list movies")
		return
	}
	writeJSON(w, http.StatusOK, listMoviesResponse{
		Movies: toMovieResponses(movies),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func (s *Server) addMovie(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	var req createMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if !watchlist.ValidGenre(req.Genre) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Genre must be one of: %s", strings.Join(watchlist.Genres, ", ")))
		return
	}
	if !validReleaseYear(req.ReleaseYear) {
		writeError(w, http.StatusBadRequest, "Release year is out of range")
		return
	}

	movie := &watchlist.Movie{
		UserID:      claims.UserID,
		IMDBID:      req.IMDBID,
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Plot:        req.Plot,
		Poster:      req.Poster,
		Rating:      req.Rating,
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			writeError(w, http.StatusBadRequest, "Status must be watched or unwatched")
			return
		}
		movie.Status = watchlist.Status(*req.Status)
		if movie.Status == watchlist.StatusWatched {
			now := time.Now()
			movie.WatchedDate = &now
		}
	}

	if err := s.store.AddMovie(movie); err != nil {
		if errors.Is(err, watchlist.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Movie is already in your watchlist")
			return
		}
		s.log.Error("add movie", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add movie")
		return
	}
	writeJSON(w, http.StatusCreated, toMovieResponse(movie))
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	movie, err := s.store.GetMovie(claims.UserID, id)
	if err != nil {
		if errors.Is(err, watchlist.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.log.Error("get movie", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch movie")
		return
	}
	writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) updateMovie(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	var req updateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movie, err := s.store.GetMovie(claims.UserID, id)
	if err != nil {
		if errors.Is(err, watchlist.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.log.Error("get movie", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}
		movie.Title = title
	}
	if req.Genre != nil {
		if !watchlist.ValidGenre(*req.Genre) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Genre must be one of: %s", strings.Join(watchlist.Genres, ", ")))
			return
		}
		movie.Genre = *req.Genre
	}
	if req.ReleaseYear != nil {
		if !validReleaseYear(*req.ReleaseYear) {
			writeError(w, http.StatusBadRequest, "Release year is out of range")
			return
		}
		movie.ReleaseYear = *req.ReleaseYear
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			writeError(w, http.StatusBadRequest, "Status must be watched or unwatched")
			return
		}
		status := watchlist.Status(*req.Status)
		if status != movie.Status {
			movie.Status = status
			if status == watchlist.StatusWatched {
				now := time.Now()
				movie.WatchedDate = &now
			} else {
				movie.WatchedDate = nil
			}
		}
	}
	if req.Plot != nil {
		movie.Plot = req.Plot
	}
	if req.Poster != nil {
		movie.Poster = req.Poster
	}
	if req.Rating != nil {
		movie.Rating = req.Rating
	}

	if err := s.store.UpdateMovie(movie); err != nil {
		s.log.Error("update movie", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}
	writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) deleteMovie(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	if err := s.store.DeleteMovie(claims.UserID, id); err != nil {
		s.log.Error("delete movie", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete movie")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markWatched(w http.ResponseWriter, r *http.Request) {
	s.setWatched(w, r, true)
}

func (s *Server) markUnwatched(w http.ResponseWriter, r *http.Request) {
	s.setWatched(w, r, false)
}

func (s *Server) setWatched(w http.ResponseWriter, r *http.Request, watched bool) {
	claims := requestClaims(r)
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	movie, err := s.store.SetWatched(claims.UserID, id, watched)
	if err != nil {
		if errors.Is(err, watchlist.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.log.Error("set watched", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}
	writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)

	stats, err := s.store.Stats(claims.UserID)
	if err != nil {
		s.log.Error("load stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalMovies:      stats.TotalMovies,
		WatchedMovies:    stats.WatchedMovies,
		UnwatchedMovies:  stats.UnwatchedMovies,
		WatchedThisMonth: stats.WatchedThisMonth,
		ByGenre:          stats.ByGenre,
		RecentWatched:    toMovieResponses(stats.RecentWatched),
	})
}
