package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	created, err := users.Create("ama@example.com", "Ama Mensah", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := users.FindByEmail("ama@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Ama Mensah", found.FullName)
}

func TestUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	original, err := users.Create("ama@example.com", "Ama Mensah", "hash")
	require.NoError(t, err)

	_, err = users.Create("ama@example.com", "Impostor", "other-hash")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Original record is intact
	found, err := users.FindByEmail("ama@example.com")
	require.NoError(t, err)
	assert.Equal(t, original.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestUserFindUnknownEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := NewUserStore(db).FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
