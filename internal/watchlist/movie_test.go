package watchlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestMovie(t *testing.T, s *Store, userID int64, title string, mutate ...func(*Movie)) *Movie {
	t.Helper()
	m := &Movie{
		UserID:      userID,
		Title:       title,
		Genre:       "drama",
		ReleaseYear: 2020,
	}
	for _, f := range mutate {
		f(m)
	}
	require.NoError(t, s.AddMovie(m))
	return m
}

func TestAddMovie(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")

	m := addTestMovie(t, s, user.ID, "Inception", func(m *Movie) {
		m.IMDBID = strPtr("tt1375666")
		m.Genre = "sci-fi"
		m.ReleaseYear = 2010
	})

	assert.NotZero(t, m.ID)
	assert.Equal(t, StatusUnwatched, m.Status, "status defaults to unwatched")

	got, err := s.GetMovie(user.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Title)
	require.NotNil(t, got.IMDBID)
	assert.Equal(t, "tt1375666", *got.IMDBID)
	assert.Nil(t, got.WatchedDate)
}

func TestAddMovie_DuplicateIMDBID(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")
	addTestMovie(t, s, user.ID, "Inception", func(m *Movie) { m.IMDBID = strPtr("tt1375666") })

	err := s.AddMovie(&Movie{
		UserID: user.ID, IMDBID: strPtr("tt1375666"),
		Title: "Inception again", Genre: "sci-fi", ReleaseYear: 2010,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAddMovie_SameIMDBIDDifferentUsers(t *testing.T) {
	s := newTestStore(t)
	alice := addTestUser(t, s, "alice")
	bob := addTestUser(t, s, "bob")

	addTestMovie(t, s, alice.ID, "Inception", func(m *Movie) { m.IMDBID = strPtr("tt1375666") })
	addTestMovie(t, s, bob.ID, "Inception", func(m *Movie) { m.IMDBID = strPtr("tt1375666") })
}

func TestGetMovie_ScopedToUser(t *testing.T) {
	s := newTestStore(t)
	alice := addTestUser(t, s, "alice")
	bob := addTestUser(t, s, "bob")
	m := addTestMovie(t, s, alice.ID, "Heat")

	_, err := s.GetMovie(bob.ID, m.ID)
	assert.ErrorIs(t, err, ErrNotFound, "another user's movie must not be visible")
}

func TestListMovies_Filters(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")

	addTestMovie(t, s, user.ID, "Alien", func(m *Movie) { m.Genre = "horror" })
	addTestMovie(t, s, user.ID, "Aliens", func(m *Movie) { m.Genre = "horror" })
	watched := addTestMovie(t, s, user.ID, "Amelie", func(m *Movie) { m.Genre = "romance" })
	_, err := s.SetWatched(user.ID, watched.ID, true)
	require.NoError(t, err)

	// No filter
	all, total, err := s.ListMovies(user.ID, MovieFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, total)

	// By genre
	horror := "horror"
	byGenre, total, err := s.ListMovies(user.ID, MovieFilter{Genre: &horror})
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)
	assert.Equal(t, 2, total)

	// By status
	st := StatusWatched
	byStatus, _, err := s.ListMovies(user.ID, MovieFilter{Status: &st})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Amelie", byStatus[0].Title)

	// By title search
	search := "alien"
	bySearch, _, err := s.ListMovies(user.ID, MovieFilter{Search: &search})
	require.NoError(t, err)
	require.Len(t, bySearch, 2)
	assert.Equal(t, "Alien", bySearch[0].Title, "exact match ranks first")
}

func TestListMovies_Pagination(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")
	for _, title := range []string{"A", "B", "C", "D"} {
		addTestMovie(t, s, user.ID, title)
	}

	page, total, err := s.ListMovies(user.ID, MovieFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, 4, total)
}

func TestListMovies_ScopedToUser(t *testing.T) {
	s := newTestStore(t)
	alice := addTestUser(t, s, "alice")
	bob := addTestUser(t, s, "bob")
	addTestMovie(t, s, alice.ID, "Heat")

	movies, total, err := s.ListMovies(bob.ID, MovieFilter{})
	require.NoError(t, err)
	assert.Empty(t, movies)
	assert.Zero(t, total)
}

func TestUpdateMovie(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")
	m := addTestMovie(t, s, user.ID, "Heat")

	m.Genre = "thriller"
	m.Rating = func() *float64 { v := 8.3; return &v }()
	require.NoError(t, s.UpdateMovie(m))

	got, err := s.GetMovie(user.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "thriller", got.Genre)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 8.3, *got.Rating, 0.001)
}

func TestDeleteMovie(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")
	m := addTestMovie(t, s, user.ID, "Heat")

	require.NoError(t, s.DeleteMovie(user.ID, m.ID))
	_, err := s.GetMovie(user.ID, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Idempotent
	assert.NoError(t, s.DeleteMovie(user.ID, m.ID))
}

func TestSetWatched(t *testing.T) {
	s := newTestStore(t)
	user := addTestUser(t, s, "alice")
	m := addTestMovie(t, s, user.ID, "Heat")

	watched, err := s.SetWatched(user.ID, m.ID, true)
	require.NoError(t, err)
	assert.Equal(t, StatusWatched, watched.Status)
	require.NotNil(t, watched.WatchedDate)

	unwatched, err := s.SetWatched(user.ID, m.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusUnwatched, unwatched.Status)
	assert.Nil(t, unwatched.WatchedDate)

	_, err = s.SetWatched(user.ID, 99999, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHasIMDBID(t *testing.T) {
	s := newTestStore(t)
	alice := addTestUser(t, s, "alice")
	bob := addTestUser(t, s, "bob")
	addTestMovie(t, s, alice.ID, "Inception", func(m *Movie) { m.IMDBID = strPtr("tt1375666") })

	saved, err := s.HasIMDBID(alice.ID, "tt1375666")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = s.HasIMDBID(bob.ID, "tt1375666")
	require.NoError(t, err)
	assert.False(t, saved, "saved flag must reflect the requesting user only")

	saved, err = s.HasIMDBID(alice.ID, "tt0000000")
	require.NoError(t, err)
	assert.False(t, saved)
}
