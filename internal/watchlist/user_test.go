package watchlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	s := newTestStore(t)

	u := &User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(u))

	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	addTestUser(t, s, "alice")

	err := s.CreateUser(&User{Username: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGetUser(t *testing.T) {
	s := newTestStore(t)
	created := addTestUser(t, s, "alice")

	u, err := s.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)

	_, err = s.GetUser(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByUsername(t *testing.T) {
	s := newTestStore(t)
	created := addTestUser(t, s, "bob")

	u, err := s.GetUserByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = s.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	u := addTestUser(t, s, "alice")

	u.Email = "new@example.com"
	require.NoError(t, s.UpdateUser(u))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)

	err = s.UpdateUser(&User{ID: 99999, Email: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
