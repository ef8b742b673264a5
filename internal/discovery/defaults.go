package discovery

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// fanoutWorkers bounds the number of concurrent default-listing lookups.
	fanoutWorkers = 8

	// fanoutTimeout bounds each individual default-listing lookup.
	fanoutTimeout = 4 * time.Second
)

// defaultTitles is the fixed set shown when no search term is given.
var defaultTitles = []string{
	"Inception", "The Dark Knight", "Interstellar", "Avatar", "Titanic",
	"The Matrix", "Gladiator", "Avengers", "Joker", "Fight Club",
}

// Defaults fetches the default movie listing with bounded parallel
// title lookups. Individual failures are logged and dropped; the batch
// always succeeds with whatever completed. Results keep input-slot
// order of the successful lookups.
func (s *Service) Defaults(ctx context.Context, userID int64) ([]SearchResult, error) {
	slots := make([]*SearchResult, len(defaultTitles))

	var g errgroup.Group
	g.SetLimit(fanoutWorkers)

	for i, title := range defaultTitles {
		g.Go(func() error {
			lookupCtx, cancel := context.WithTimeout(ctx, fanoutTimeout)
			defer cancel()

			m, err := s.client.GetByTitle(lookupCtx, title)
			if err != nil {
				s.log.Warn("default lookup failed", "title", title, "error", err)
				return nil
			}

			r := SearchResult{
				IMDBID:      m.IMDBID,
				Title:       m.Title,
				ReleaseYear: m.Year,
				Poster:      optional(m.Poster),
				Rating:      m.Rating,
				Status:      statusUnwatched,
			}
			saved, err := s.isSaved(userID, m.IMDBID)
			if err != nil {
				s.log.Warn("saved check failed", "title", title, "error", err)
			} else {
				r.IsSaved = saved
			}

			slots[i] = &r
			return nil
		})
	}

	// Workers never return errors; partial results are the contract.
	_ = g.Wait()

	results := make([]SearchResult, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, nil
}
