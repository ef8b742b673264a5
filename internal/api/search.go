package api

import (
	"errors"
	"net/http"

	"github.com/nouran-alaa/moviehub/internal/discovery"
	"github.com/nouran-alaa/moviehub/internal/omdb"
)

type searchResponse struct {
	Results []discovery.SearchResult `json:"results"`
}

func (s *Server) searchMovie(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	term := r.URL.Query().Get("title")

	results, err := s.discovery.Search(r.Context(), claims.UserID, term)
	if err != nil {
		s.log.Error("search movies", "term", term, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to search movies",
			Details: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

func (s *Server) movieDetails(w http.ResponseWriter, r *http.Request) {
	imdbID := r.PathValue("imdbID")

	detail, err := s.discovery.Details(r.Context(), imdbID)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.log.Error("fetch movie details", "imdb_id", imdbID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch movie details")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
