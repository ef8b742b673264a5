package watchlist

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/nouran-alaa/moviehub/internal/migrations"
)

// newTestStore creates an in-memory SQLite store with the schema applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err, "apply schema")
	return NewStore(db)
}

func addTestUser(t *testing.T, s *Store, username string) *User {
	t.Helper()
	u := &User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(u))
	return u
}

func strPtr(s string) *string { return &s }
