package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// In-memory SQLite exists per connection; the pool must not open a
	// second one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "irrelevant",
		Username: "tester",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()

	product := models.Product{
		Name:            name,
		Price:           price,
		Quantity:        10,
		InventoryStatus: models.InStock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(repositories.NewCartRepository(db))
}

func newWishlistService(t *testing.T, db *gorm.DB) *WishlistService {
	t.Helper()
	return NewWishlistService(
		repositories.NewWishlistRepository(db),
		repositories.NewProductRepository(db),
	)
}
