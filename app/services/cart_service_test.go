package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftline/storefront/app/models"
)

func TestCartGetCreatesLazily(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")

	cart, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cart.UserID)
	assert.Empty(t, cart.Items)

	// A second access returns the same cart, not a new one.
	again, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestCartAddItemDefaultsToOne(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	product := createProduct(t, db, "Bamboo Watch", 65)

	cart, err := svc.AddItem(user.ID, product.ID, 0)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
}

func TestCartAddItemMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	product := createProduct(t, db, "Bamboo Watch", 65)

	_, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := svc.AddItem(user.ID, product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "re-adding a product must not create a second line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")

	_, err := svc.AddItem(user.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// The rejected add leaves no line behind.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCartAddItemRejectsProductDeletedMidFlight(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	product := createProduct(t, db, "Watch", 10)

	// The existence check runs inside the mutation transaction, so a
	// delete landing just before the add is always observed.
	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)

	_, err := svc.AddItem(user.ID, product.ID, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCartTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	watch := createProduct(t, db, "Watch", 10.00)
	band := createProduct(t, db, "Band", 5.00)

	_, err := svc.AddItem(user.ID, watch.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(user.ID, band.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, cart.TotalQuantity())
	assert.InDelta(t, 25.00, cart.TotalPrice(), 0.001)
}

func TestCartUpdateItemSetsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	product := createProduct(t, db, "Watch", 10)

	cart, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateItem(user.ID, itemID, 7)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCartUpdateItemZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	product := createProduct(t, db, "Watch", 10)

	cart, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateItem(user.ID, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartUpdateItemNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")

	_, err := svc.UpdateItem(user.ID, 9999, 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartItemsAreOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	alice := createUser(t, db, "alice@example.com")
	mallory := createUser(t, db, "mallory@example.com")
	product := createProduct(t, db, "Watch", 10)

	cart, err := svc.AddItem(alice.ID, product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	// Another user cannot touch Alice's line.
	_, err = svc.UpdateItem(mallory.ID, itemID, 99)
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = svc.RemoveItem(mallory.ID, itemID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	cart, err = svc.Get(alice.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	product := createProduct(t, db, "Watch", 10)

	cart, err := svc.AddItem(user.ID, product.ID, 1)
	require.NoError(t, err)

	cart, err = svc.RemoveItem(user.ID, cart.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = svc.RemoveItem(user.ID, 9999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	user := createUser(t, db, "cart@example.com")
	watch := createProduct(t, db, "Watch", 10)
	band := createProduct(t, db, "Band", 4)

	_, err := svc.AddItem(user.ID, watch.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(user.ID, band.ID, 1)
	require.NoError(t, err)

	cart, err := svc.Clear(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalQuantity())

	// The cart row survives a clear.
	again, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	product := createProduct(t, db, "Watch", 10)

	_, err := svc.AddItem(alice.ID, product.ID, 5)
	require.NoError(t, err)

	bobCart, err := svc.Get(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobCart.Items)
}
