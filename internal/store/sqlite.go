package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/reddital/reddital-be/internal/models"
	"modernc.org/sqlite"
)

// SQLITE_CONSTRAINT_UNIQUE, the extended result code sqlite reports
// when an INSERT violates a UNIQUE index.
const sqliteConstraintUnique = 2067

// SQLiteStore persists users in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore on an open database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create inserts a new user and returns it with the assigned ID. The
// users table carries the UNIQUE(username) constraint, so under
// concurrent signups for the same username the database, not the
// caller's pre-check, is the authoritative duplicate signal.
func (s *SQLiteStore) Create(u models.User) (models.User, error) {
	res, err := s.db.Exec(
		"INSERT INTO users(username, email, password_hash) VALUES(?, ?, ?)",
		u.Username, u.Email, u.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("username %s is taken: %w", u.Username, models.ErrDuplicateEntity)
		}
		return models.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return s.FindByID(id)
}

// FindByUsername returns the user with the given username.
func (s *SQLiteStore) FindByUsername(username string) (models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?",
		username,
	)
	return scanUser(row)
}

// FindByID returns the user with the given ID.
func (s *SQLiteStore) FindByID(id int64) (models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?",
		id,
	)
	return scanUser(row)
}

// Save updates the mutable columns of an existing user, keyed by ID.
func (s *SQLiteStore) Save(u models.User) (models.User, error) {
	res, err := s.db.Exec(
		"UPDATE users SET email = ?, password_hash = ? WHERE id = ?",
		u.Email, u.PasswordHash, u.ID,
	)
	if err != nil {
		return models.User{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, fmt.Errorf("user id %d: %w", u.ID, models.ErrEntityNotFound)
	}
	return s.FindByID(u.ID)
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrEntityNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code() == sqliteConstraintUnique
}
