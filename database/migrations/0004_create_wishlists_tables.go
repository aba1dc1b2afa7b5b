package migrations

import (
	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/pkg/migration"
)

func init() {
	migration.Register("20250401000003_create_wishlists_tables", &createWishlistsTables{})
}

type createWishlistsTables struct{}

func (m *createWishlistsTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Wishlist{}, &models.WishlistItem{})
}

func (m *createWishlistsTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.WishlistItem{}, &models.Wishlist{})
}
