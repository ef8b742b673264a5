package watchlist

import (
	"fmt"
	"strings"
	"time"
)

const movieColumns = "id, user_id, imdb_id, title, genre, release_year, status, plot, poster, rating, watched_date, created_at, updated_at"

func scanMovie(row interface{ Scan(...any) error }) (*Movie, error) {
	m := &Movie{}
	err := row.Scan(&m.ID, &m.UserID, &m.IMDBID, &m.Title, &m.Genre, &m.ReleaseYear,
		&m.Status, &m.Plot, &m.Poster, &m.Rating, &m.WatchedDate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// AddMovie inserts a new movie into a user's collection.
// Sets ID, CreatedAt, and UpdatedAt on the struct.
// Returns ErrDuplicate if the user already saved the same IMDb ID.
func (s *Store) AddMovie(m *Movie) error {
	now := time.Now()
	if m.Status == "" {
		m.Status = StatusUnwatched
	}
	result, err := s.db.Exec(`
		INSERT INTO movies (user_id, imdb_id, title, genre, release_year, status, plot, poster, rating, watched_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.IMDBID, m.Title, m.Genre, m.ReleaseYear, m.Status, m.Plot, m.Poster, m.Rating, m.WatchedDate, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert movie: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
	return nil
}

// GetMovie retrieves one of a user's movies by ID.
// Returns ErrNotFound if the movie does not exist or belongs to another user.
func (s *Store) GetMovie(userID, id int64) (*Movie, error) {
	m, err := scanMovie(s.db.QueryRow(
		"SELECT "+movieColumns+" FROM movies WHERE id = ? AND user_id = ?", id, userID,
	))
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, mapSQLiteError(err))
	}
	return m, nil
}

// ListMovies returns a user's movies matching the filter with pagination.
// When a search term is given, results are ordered by title similarity to
// the term; otherwise newest-first.
// Returns (results, totalCount, error).
func (s *Store) ListMovies(userID int64, f MovieFilter) ([]*Movie, int, error) {
	conditions := []string{"user_id = ?"}
	args := []any{userID}

	if f.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *f.Status)
	}
	if f.Genre != nil {
		conditions = append(conditions, "LOWER(genre) = LOWER(?)")
		args = append(args, *f.Genre)
	}
	if f.Search != nil {
		conditions = append(conditions, "title LIKE '%' || ? || '%' COLLATE NOCASE")
		args = append(args, *f.Search)
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM movies "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	query := "SELECT " + movieColumns + " FROM movies " + whereClause + " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movie: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate movies: %w", err)
	}

	if f.Search != nil {
		rankByTitle(results, *f.Search)
	}

	return results, total, nil
}

// UpdateMovie updates an existing movie.
// Sets UpdatedAt on the struct.
// Returns ErrNotFound if the movie does not exist or belongs to another user.
func (s *Store) UpdateMovie(m *Movie) error {
	now := time.Now()
	result, err := s.db.Exec(`
		UPDATE movies SET imdb_id = ?, title = ?, genre = ?, release_year = ?, status = ?, plot = ?, poster = ?, rating = ?, watched_date = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		m.IMDBID, m.Title, m.Genre, m.ReleaseYear, m.Status, m.Plot, m.Poster, m.Rating, m.WatchedDate, now, m.ID, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("update movie %d: %w", m.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update movie %d: %w", m.ID, ErrNotFound)
	}
	m.UpdatedAt = now
	return nil
}

// DeleteMovie removes one of a user's movies by ID.
// This operation is idempotent - no error is returned if the movie does not exist.
func (s *Store) DeleteMovie(userID, id int64) error {
	_, err := s.db.Exec("DELETE FROM movies WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// SetWatched transitions a movie's watched status, setting or clearing the
// watched date, and returns the updated movie.
func (s *Store) SetWatched(userID, id int64, watched bool) (*Movie, error) {
	m, err := s.GetMovie(userID, id)
	if err != nil {
		return nil, err
	}

	if watched {
		now := time.Now()
		m.Status = StatusWatched
		m.WatchedDate = &now
	} else {
		m.Status = StatusUnwatched
		m.WatchedDate = nil
	}

	if err := s.UpdateMovie(m); err != nil {
		return nil, err
	}
	return m, nil
}

// HasIMDBID reports whether the user has already saved the given IMDb ID.
func (s *Store) HasIMDBID(userID int64, imdbID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM movies WHERE user_id = ? AND imdb_id = ?)",
		userID, imdbID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check imdb id %q: %w", imdbID, err)
	}
	return exists, nil
}
