// Package api implements the REST API.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nouran-alaa/moviehub/internal/auth"
	"github.com/nouran-alaa/moviehub/internal/watchlist"
)

// Server is the API server.
type Server struct {
	store     *watchlist.Store
	tokens    *auth.TokenManager
	discovery Discovery
	log       *slog.Logger
}

// New creates a new API server.
func New(store *watchlist.Store, tokens *auth.TokenManager, discovery Discovery, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		store:     store,
		tokens:    tokens,
		discovery: discovery,
		log:       log,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Auth & profile
	mux.HandleFunc("POST /api/auth/register", s.register)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.getProfile))
	mux.HandleFunc("PUT /api/auth/me", s.requireAuth(s.updateProfile))

	// Watchlist
	mux.HandleFunc("GET /api/movies", s.requireAuth(s.listMovies))
	mux.HandleFunc("POST /api/movies", s.requireAuth(s.addMovie))
	mux.HandleFunc("GET /api/movies/stats", s.requireAuth(s.getStats))
	mux.HandleFunc("GET /api/movies/{id}", s.requireAuth(s.getMovie))
	mux.HandleFunc("PUT /api/movies/{id}", s.requireAuth(s.updateMovie))
	mux.HandleFunc("DELETE /api/movies/{id}", s.requireAuth(s.deleteMovie))
	mux.HandleFunc("POST /api/movies/{id}/watched", s.requireAuth(s.markWatched))
	mux.HandleFunc("POST /api/movies/{id}/unwatched", s.requireAuth(s.markUnwatched))

	// Provider search & detail
	mux.HandleFunc("GET /api/search-movie", s.requireAuth(s.searchMovie))
	mux.HandleFunc("GET /api/movie-details/{imdbID}", s.requireAuth(s.movieDetails))

	// System
	mux.HandleFunc("GET /api/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryString extracts an optional string from query string.
func queryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
