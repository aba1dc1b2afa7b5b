package migrations

import (
	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/pkg/migration"
)

func init() {
	migration.Register("20250401000002_create_carts_tables", &createCartsTables{})
}

type createCartsTables struct{}

func (m *createCartsTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Cart{}, &models.CartItem{})
}

func (m *createCartsTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.CartItem{}, &models.Cart{})
}
