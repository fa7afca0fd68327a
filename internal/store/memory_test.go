package store

import (
	"testing"

	"github.com/reddital/reddital-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreContract(t *testing.T) {
	s := NewMemoryStore()

	created, err := s.Create(models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.Create(models.User{Username: "alice", Email: "b@x.com", PasswordHash: "h2"})
	require.ErrorIs(t, err, models.ErrDuplicateEntity)

	byName, err := s.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := s.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = s.FindByUsername("bob")
	require.ErrorIs(t, err, models.ErrEntityNotFound)
	_, err = s.FindByID(999999)
	require.ErrorIs(t, err, models.ErrEntityNotFound)

	created.Email = "new@x.com"
	saved, err := s.Save(created)
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", saved.Email)

	_, err = s.Save(models.User{ID: 12345})
	require.ErrorIs(t, err, models.ErrEntityNotFound)
}

func TestMemoryStoreIDsAreStable(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.Create(models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	second, err := s.Create(models.User{Username: "bob", Email: "b@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	saved, err := s.Save(models.User{ID: first.ID, Username: "alice", Email: "c@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, saved.ID)
}
