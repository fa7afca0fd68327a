package store

import "github.com/reddital/reddital-be/internal/models"

// UserStore abstracts durable user persistence. Implementations must
// enforce username uniqueness on Create and report an absent row as
// models.ErrEntityNotFound, a duplicate username as
// models.ErrDuplicateEntity.
type UserStore interface {
	// Create persists a new user and returns it with the store-assigned ID.
	Create(u models.User) (models.User, error)

	// FindByUsername returns the user with the given username.
	FindByUsername(username string) (models.User, error)

	// FindByID returns the user with the given ID.
	FindByID(id int64) (models.User, error)

	// Save updates an existing user, keyed by its ID.
	Save(u models.User) (models.User, error)
}
