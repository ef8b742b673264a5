package watchlist

import (
	"fmt"
	"time"
)

// CreateUser inserts a new user account.
// Sets ID and CreatedAt on the struct.
// Returns ErrDuplicate if the username is taken.
func (s *Store) CreateUser(u *User) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		u.Username, u.Email, u.PasswordHash, now,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	u.ID = id
	u.CreatedAt = now
	return nil
}

// GetUser retrieves a user by ID.
// Returns ErrNotFound if the user does not exist.
func (s *Store) GetUser(id int64) (*User, error) {
	u := &User{}
	err := s.db.QueryRow(`
		SELECT id, username, email, password_hash, created_at
		FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, mapSQLiteError(err))
	}
	return u, nil
}

// GetUserByUsername retrieves a user by username.
// Returns ErrNotFound if the user does not exist.
func (s *Store) GetUserByUsername(username string) (*User, error) {
	u := &User{}
	err := s.db.QueryRow(`
		SELECT id, username, email, password_hash, created_at
		FROM users WHERE username = ?`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, mapSQLiteError(err))
	}
	return u, nil
}

// UpdateUser updates a user's email address.
// Returns ErrNotFound if the user does not exist.
func (s *Store) UpdateUser(u *User) error {
	result, err := s.db.Exec(`
		UPDATE users SET email = ? WHERE id = ?`,
		u.Email, u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update user %d: %w", u.ID, ErrNotFound)
	}
	return nil
}
