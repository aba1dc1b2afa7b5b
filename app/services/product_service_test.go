package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
)

func newProductService(t *testing.T, db *gorm.DB) *ProductService {
	t.Helper()
	return NewProductService(repositories.NewProductRepository(db), nil)
}

func TestProductCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(t, db)

	product, err := svc.Create(ProductInput{
		Code:     "f230fh0g3",
		Name:     "  Bamboo Watch  ",
		Category: "Accessories",
		Price:    65,
		Quantity: 24,
		Rating:   5,
	})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, "Bamboo Watch", product.Name, "name is trimmed")
	assert.Equal(t, models.InStock, product.InventoryStatus, "empty status defaults to INSTOCK")
}

func TestProductCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(t, db)

	_, err := svc.Create(ProductInput{
		Name:            "",
		Price:           -1,
		Quantity:        -2,
		Rating:          6,
		InventoryStatus: "SOMETIMES",
	})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "price")
	assert.Contains(t, verrs, "quantity")
	assert.Contains(t, verrs, "rating")
	assert.Contains(t, verrs, "inventory_status")
}

func TestProductUpdatePatchesOnlyGivenFields(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(t, db)

	created, err := svc.Create(ProductInput{Name: "Watch", Price: 65, Quantity: 10})
	require.NoError(t, err)

	newPrice := 72.0
	updated, err := svc.Update(created.ID, ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Watch", updated.Name)
	assert.Equal(t, 72.0, updated.Price)
	assert.Equal(t, 10, updated.Quantity)
}

func TestProductUpdateValidatesResult(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(t, db)

	created, err := svc.Create(ProductInput{Name: "Watch", Price: 65})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(created.ID, ProductPatch{Name: &empty})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "name")
}

func TestProductFindAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(t, db)

	created, err := svc.Create(ProductInput{Name: "Watch", Price: 65})
	require.NoError(t, err)

	found, err := svc.Find(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Find(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrProductNotFound)

	_, err = svc.Update(created.ID, ProductPatch{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}
