// Package discovery enriches movie search with provider metadata,
// flags candidates already saved by the requesting user, and caches
// provider results in-process.
package discovery

//go:generate mockgen -source=discovery.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nouran-alaa/moviehub/internal/cache"
	"github.com/nouran-alaa/moviehub/internal/omdb"
)

const (
	// cacheTTL is how long provider results are served from cache.
	cacheTTL = time.Hour

	statusUnwatched = "unwatched"
)

// SearchResult is a transient, per-request view of a provider
// candidate. IsSaved reflects the requesting user's collection at the
// time the entry was built.
type SearchResult struct {
	IMDBID      string  `json:"imdb_id"`
	Title       string  `json:"title"`
	ReleaseYear string  `json:"release_year"`
	Poster      *string `json:"poster"`
	Rating      string  `json:"rating,omitempty"` // default-listing path only
	Status      string  `json:"status"`
	IsSaved     bool    `json:"is_saved"`
}

// MovieDetail is the full provider record for the detail view. It is
// query-only and never carries a saved flag.
type MovieDetail struct {
	IMDBID      string  `json:"imdb_id"`
	Title       string  `json:"title"`
	ReleaseYear string  `json:"release_year"`
	Genre       string  `json:"genre"`
	Plot        string  `json:"plot"`
	Poster      *string `json:"poster"`
	Rating      string  `json:"rating"`
	Status      string  `json:"status"`
}

// MetadataClient is the slice of the OMDb client the service uses.
type MetadataClient interface {
	Search(ctx context.Context, term string) ([]omdb.SearchItem, error)
	GetByID(ctx context.Context, imdbID string) (*omdb.Movie, error)
	GetByTitle(ctx context.Context, title string) (*omdb.Movie, error)
}

// SavedChecker reports whether a user has already saved a provider ID.
type SavedChecker interface {
	HasIMDBID(userID int64, imdbID string) (bool, error)
}

// Service composes the metadata client, the saved-movie check, and the
// result cache into the search and detail operations.
type Service struct {
	client MetadataClient
	saved  SavedChecker
	cache  *cache.Cache
	log    *slog.Logger
	ttl    time.Duration
}

// New creates a discovery service.
func New(client MetadataClient, saved SavedChecker, c *cache.Cache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client: client,
		saved:  saved,
		cache:  c,
		log:    log,
		ttl:    cacheTTL,
	}
}

// Search returns provider candidates for the term, annotated with the
// user's saved flags. An empty or whitespace term returns the default
// listing instead (never cached). A provider "no matches" response is
// an empty, successful result.
//
// The cache key is scoped by user: saved flags are baked into the
// cached payload, and a shared key would leak one user's flags to
// another. Within the TTL a user's own flags may go stale.
func (s *Service) Search(ctx context.Context, userID int64, term string) ([]SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Defaults(ctx, userID)
	}

	key := fmt.Sprintf("search:%d:%s", userID, strings.ToLower(term))
	if v, ok := s.cache.Get(key); ok {
		return v.([]SearchResult), nil
	}

	items, err := s.client.Search(ctx, term)
	if errors.Is(err, omdb.ErrNotFound) {
		return []SearchResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}

	results := make([]SearchResult, 0, len(items))
	for _, item := range items {
		r := SearchResult{
			IMDBID:      item.IMDBID,
			Title:       item.Title,
			ReleaseYear: item.Year,
			Poster:      optional(item.Poster),
			Status:      statusUnwatched,
		}
		r.IsSaved, err = s.isSaved(userID, item.IMDBID)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	s.cache.Set(key, results, s.ttl)
	return results, nil
}

// Details returns the full provider record for an IMDb ID. Provider
// not-found passes through as omdb.ErrNotFound for the caller to map.
func (s *Service) Details(ctx context.Context, imdbID string) (MovieDetail, error) {
	key := "detail:" + imdbID
	if v, ok := s.cache.Get(key); ok {
		return v.(MovieDetail), nil
	}

	m, err := s.client.GetByID(ctx, imdbID)
	if err != nil {
		return MovieDetail{}, fmt.Errorf("details %q: %w", imdbID, err)
	}

	detail := MovieDetail{
		IMDBID:      m.IMDBID,
		Title:       m.Title,
		ReleaseYear: m.Year,
		Genre:       m.Genre,
		Plot:        m.Plot,
		Poster:      optional(m.Poster),
		Rating:      m.Rating,
		Status:      statusUnwatched,
	}

	s.cache.Set(key, detail, s.ttl)
	return detail, nil
}

// isSaved looks up the saved flag for a candidate. Candidates without a
// provider ID are never flagged.
func (s *Service) isSaved(userID int64, imdbID string) (bool, error) {
	if imdbID == "" {
		return false, nil
	}
	saved, err := s.saved.HasIMDBID(userID, imdbID)
	if err != nil {
		return false, fmt.Errorf("check saved %q: %w", imdbID, err)
	}
	return saved, nil
}

// optional maps an empty string to a JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
