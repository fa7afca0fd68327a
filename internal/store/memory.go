package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/reddital/reddital-be/internal/models"
)

// MemoryStore is an in-memory UserStore with the same contract as
// SQLiteStore. It backs the test suites and is handy for local runs
// without a database file.
type MemoryStore struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int64]models.User), nextID: 1}
}

// Create assigns the next ID and stores the user. Duplicate usernames
// are rejected, mirroring the database's UNIQUE constraint.
func (s *MemoryStore) Create(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.User{}, fmt.Errorf("username %s is taken: %w", u.Username, models.ErrDuplicateEntity)
		}
	}

	u.ID = s.nextID
	s.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.ID] = u
	return u, nil
}

// FindByUsername returns the user with the given username.
func (s *MemoryStore) FindByUsername(username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrEntityNotFound
}

// FindByID returns the user with the given ID.
func (s *MemoryStore) FindByID(id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrEntityNotFound
	}
	return u, nil
}

// Save replaces the stored user keyed by its ID.
func (s *MemoryStore) Save(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return models.User{}, fmt.Errorf("user id %d: %w", u.ID, models.ErrEntityNotFound)
	}
	s.users[u.ID] = u
	return u, nil
}
