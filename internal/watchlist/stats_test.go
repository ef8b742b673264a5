package watchlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Empty(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")

	stats, err := s.Stats(user.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalMovies)
	assert.Zero(t, stats.WatchedMovies)
	assert.Empty(t, stats.ByGenre)
	assert.Empty(t, stats.RecentWatched)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")

	addTestMovie(t, s, user.ID, "Alien", func(m *Movie) { m.Genre = "horror" })
	addTestMovie(t, s, user.ID, "Aliens", func(m *Movie) { m.Genre = "horror" })
	amelie := addTestMovie(t, s, user.ID, "Amelie", func(m *Movie) { m.Genre = "romance" })
	heat := addTestMovie(t, s, user.ID, "Heat", func(m *Movie) { m.Genre = "thriller" })

	_, err := s.SetWatched(user.ID, amelie.ID, true)
	require.NoError(t, err)
	_, err = s.SetWatched(user.ID, heat.ID, true)
	require.NoError(t, err)

	// Push one watched date outside the current month
	heatMovie, err := s.GetMovie(user.ID, heat.ID)
	require.NoError(t, err)
	past := time.Now().AddDate(0, -2, 0)
	heatMovie.WatchedDate = &past
	require.NoError(t, s.UpdateMovie(heatMovie))

	stats, err := s.Stats(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalMovies)
	assert.Equal(t, 2, stats.WatchedMovies)
	assert.Equal(t, 2, stats.UnwatchedMovies)
	assert.Equal(t, 1, stats.WatchedThisMonth)
	assert.Equal(t, map[string]int{"horror": 2, "romance": 1, "thriller": 1}, stats.ByGenre)

	require.Len(t, stats.RecentWatched, 2)
	assert.Equal(t, "Amelie", stats.RecentWatched[0].Title, "most recently watched first")
	assert.Equal(t, "Heat", stats.RecentWatched[1].Title)
}

func TestStats_ScopedToUser(t *testing.T) {
	s := newTestStore(t)
	alice := addTestUser(t, s, "alice")
	bob := addTestUser(t, s, "bob")
	addTestMovie(t, s, alice.ID, "Heat")

	stats, err := s.Stats(bob.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalMovies)
}
