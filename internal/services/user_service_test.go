package services

import (
	"testing"

	"github.com/reddital/reddital-be/internal/hash"
	"github.com/reddital/reddital-be/internal/models"
	"github.com/reddital/reddital-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*UserService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewUserService(st, hash.NewBcryptHasher(bcrypt.MinCost)), st
}

func TestSignup(t *testing.T) {
	svc, st := newTestService(t)

	cred, err := svc.Signup("alice", "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Positive(t, cred.ID)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "a@x.com", cred.Email)

	stored, err := st.FindByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestSignupDuplicateIsRejectedOnce(t *testing.T) {
	svc, st := newTestService(t)

	first, err := svc.Signup("alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Signup("alice", "other@x.com", "different")
	require.ErrorIs(t, err, models.ErrDuplicateEntity)

	// The failed attempt must not have touched the stored record.
	stored, err := st.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestSignupEmptyParameters(t *testing.T) {
	svc, _ := newTestService(t)

	for _, tc := range []struct {
		name                      string
		username, email, password string
	}{
		{"empty username", "", "a@x.com", "secret123"},
		{"empty email", "alice", "", "secret123"},
		{"empty password", "alice", "a@x.com", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(tc.username, tc.email, tc.password)
			require.ErrorIs(t, err, models.ErrBadParameters)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	signed, err := svc.Signup("alice", "a@x.com", "secret123")
	require.NoError(t, err)

	cred, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, signed.ID, cred.ID)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "a@x.com", cred.Email)

	_, err = svc.Login("alice", "wrong")
	require.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.Login("bob", "x")
	require.ErrorIs(t, err, models.ErrEntityNotFound)
}

func TestFindUser(t *testing.T) {
	svc, _ := newTestService(t)

	signed, err := svc.Signup("alice", "a@x.com", "secret123")
	require.NoError(t, err)

	byName, err := svc.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, signed, byName)

	byID, err := svc.FindUserByID(signed.ID)
	require.NoError(t, err)
	assert.Equal(t, signed, byID)

	_, err = svc.FindUserByUsername("bob")
	require.ErrorIs(t, err, models.ErrEntityNotFound)

	_, err = svc.FindUserByID(999999)
	require.ErrorIs(t, err, models.ErrEntityNotFound)
}

func TestUpdateProfileChangesOnlyEmail(t *testing.T) {
	svc, st := newTestService(t)

	signed, err := svc.Signup("alice", "a@x.com", "secret123")
	require.NoError(t, err)

	before, err := st.FindByUsername("alice")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile("alice", "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, signed.ID, updated.ID)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "new@x.com", updated.Email)

	after, err := st.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)

	// The old password still logs in.
	_, err = svc.Login("alice", "secret123")
	require.NoError(t, err)

	_, err = svc.UpdateProfile("bob", "b@x.com")
	require.ErrorIs(t, err, models.ErrEntityNotFound)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup("alice", "a@x.com", "secret123")
	require.NoError(t, err)

	updated, err := svc.ChangePassword("alice", "newsecret")
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "a@x.com", updated.Email)

	_, err = svc.Login("alice", "newsecret")
	require.NoError(t, err)

	_, err = svc.Login("alice", "secret123")
	require.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.ChangePassword("bob", "whatever")
	require.ErrorIs(t, err, models.ErrEntityNotFound)

	_, err = svc.ChangePassword("alice", "")
	require.ErrorIs(t, err, models.ErrBadParameters)
}
