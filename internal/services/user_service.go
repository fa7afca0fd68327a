package services

import (
	"errors"
	"fmt"

	"github.com/reddital/reddital-be/internal/hash"
	"github.com/reddital/reddital-be/internal/models"
	"github.com/reddital/reddital-be/internal/store"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Signup(username, email, password string) (models.Credential, error)
	Login(username, password string) (models.Credential, error)
	FindUserByUsername(username string) (models.Credential, error)
	FindUserByID(id int64) (models.Credential, error)
	UpdateProfile(username, newEmail string) (models.Credential, error)
	ChangePassword(username, newPassword string) (models.Credential, error)
}

// UserService owns the signup/login/lookup/update business rules. The
// store and hasher are explicit constructor dependencies so tests can
// substitute an in-memory store or a cheap hasher.
type UserService struct {
	store  store.UserStore
	hasher hash.PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(st store.UserStore, hasher hash.PasswordHasher) *UserService {
	return &UserService{store: st, hasher: hasher}
}

// Signup registers a new user. The username must be free; the plaintext
// password is hashed before anything is persisted and never stored.
func (s *UserService) Signup(username, email, password string) (models.Credential, error) {
	if username == "" || email == "" || password == "" {
		return models.Credential{}, fmt.Errorf("signup requires username, email and password: %w", models.ErrBadParameters)
	}

	_, err := s.store.FindByUsername(username)
	if err == nil {
		return models.Credential{}, fmt.Errorf("failed to signup, user %s already exists: %w", username, models.ErrDuplicateEntity)
	}
	if !errors.Is(err, models.ErrEntityNotFound) {
		return models.Credential{}, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return models.Credential{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// The store's uniqueness constraint is the authoritative duplicate
	// signal; the lookup above only catches the common case early.
	created, err := s.store.Create(models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		return models.Credential{}, err
	}
	return created.Credential(), nil
}

// Login verifies a username/password pair. A password mismatch yields
// ErrUnauthorized with a message that does not say which part was
// wrong. Read-only.
func (s *UserService) Login(username, password string) (models.Credential, error) {
	user, err := s.store.FindByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			return models.Credential{}, fmt.Errorf("the user %s was not found: %w", username, models.ErrEntityNotFound)
		}
		return models.Credential{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return models.Credential{}, fmt.Errorf("wrong username or password: %w", models.ErrUnauthorized)
	}
	return user.Credential(), nil
}

// FindUserByUsername returns the credential view of the named user.
func (s *UserService) FindUserByUsername(username string) (models.Credential, error) {
	user, err := s.store.FindByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			return models.Credential{}, fmt.Errorf("the user %s was not found: %w", username, models.ErrEntityNotFound)
		}
		return models.Credential{}, err
	}
	return user.Credential(), nil
}

// FindUserByID returns the credential view of the user with the given ID.
func (s *UserService) FindUserByID(id int64) (models.Credential, error) {
	user, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			return models.Credential{}, fmt.Errorf("the user with id %d was not found: %w", id, models.ErrEntityNotFound)
		}
		return models.Credential{}, err
	}
	return user.Credential(), nil
}

// UpdateProfile sets a new email for the named user. Username and ID
// are immutable through this path.
func (s *UserService) UpdateProfile(username, newEmail string) (models.Credential, error) {
	user, err := s.store.FindByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			return models.Credential{}, fmt.Errorf("the user %s was not found: %w", username, models.ErrEntityNotFound)
		}
		return models.Credential{}, err
	}

	user.Email = newEmail
	saved, err := s.store.Save(user)
	if err != nil {
		return models.Credential{}, err
	}
	return saved.Credential(), nil
}

// ChangePassword hashes the new plaintext and replaces the stored hash
// for the named user.
func (s *UserService) ChangePassword(username, newPassword string) (models.Credential, error) {
	if newPassword == "" {
		return models.Credential{}, fmt.Errorf("new password must not be empty: %w", models.ErrBadParameters)
	}

	user, err := s.store.FindByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrEntityNotFound) {
			return models.Credential{}, fmt.Errorf("the user %s was not found: %w", username, models.ErrEntityNotFound)
		}
		return models.Credential{}, err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return models.Credential{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashed
	saved, err := s.store.Save(user)
	if err != nil {
		return models.Credential{}, err
	}
	return saved.Credential(), nil
}
