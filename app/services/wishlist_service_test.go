package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftline/storefront/app/models"
)

func TestWishlistGetCreatesLazily(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(t, db)
	user := createUser(t, db, "wish@example.com")

	wishlist, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, wishlist.UserID)
	assert.Empty(t, wishlist.Items)

	again, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, wishlist.ID, again.ID)
}

func TestWishlistAddRemoveProtocol(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(t, db)
	user := createUser(t, db, "wish@example.com")
	product := createProduct(t, db, "Watch", 10)

	added, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, added, "first add reports a change")

	added, err = svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, added, "repeat add reports no change")

	wishlist, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, wishlist.Items, 1, "repeat add must not duplicate the entry")

	removed, err := svc.Remove(user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, removed, "first remove reports a change")

	removed, err = svc.Remove(user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, removed, "repeat remove reports no change")
}

func TestWishlistRemoveDoesNotCreateWishlist(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(t, db)
	user := createUser(t, db, "wish@example.com")
	product := createProduct(t, db, "Watch", 10)

	removed, err := svc.Remove(user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	var count int64
	require.NoError(t, db.Model(&models.Wishlist{}).Count(&count).Error)
	assert.Zero(t, count, "removing from a user with no wishlist must not create one")
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(t, db)
	user := createUser(t, db, "wish@example.com")

	_, err := svc.Add(user.ID, 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistsAreIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newWishlistService(t, db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	product := createProduct(t, db, "Watch", 10)

	_, err := svc.Add(alice.ID, product.ID)
	require.NoError(t, err)

	bobList, err := svc.Get(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobList.Items)

	// Removing from Bob's empty list does not touch Alice's entry.
	removed, err := svc.Remove(bob.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	aliceList, err := svc.Get(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceList.Items, 1)
}
