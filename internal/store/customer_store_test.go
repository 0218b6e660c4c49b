package store

import (
	"testing"

	"github.com/EasWay/bina-mobile/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCreateListDelete(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerStore(db)

	created, err := customers.Create("owner-1", models.CreateCustomerRequest{
		FullName:       "Kofi Boateng",
		PhoneNumber:    "0244000000",
		Address:        "Accra",
		Gender:         "male",
		ReferralSource: "word of mouth",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list, err := customers.List("owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, customers.Delete("owner-1", created.ID))
	assert.ErrorIs(t, customers.Delete("owner-1", created.ID), ErrNotFound)
}

func TestCustomerEmptyFieldsAccepted(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerStore(db)

	created, err := customers.Create("owner-1", models.CreateCustomerRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.FullName)
}

func TestCustomerOwnerIsolation(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerStore(db)

	created, err := customers.Create("owner-a", models.CreateCustomerRequest{FullName: "Kofi"})
	require.NoError(t, err)

	assert.ErrorIs(t, customers.Delete("owner-b", created.ID), ErrNotFound)

	list, err := customers.List("owner-b")
	require.NoError(t, err)
	assert.Empty(t, list)
}
