package api

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/nouran-alaa/moviehub/internal/discovery"
)

// Discovery looks up movies from the metadata provider, with caching
// and saved-state annotation.
type Discovery interface {
	Search(ctx context.Context, userID int64, term string) ([]discovery.SearchResult, error)
	Details(ctx context.Context, imdbID string) (discovery.MovieDetail, error)
}
