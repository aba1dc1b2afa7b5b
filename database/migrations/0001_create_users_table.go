// Package migrations declares the schema history. Each migration
// registers itself with the runner from init().
package migrations

import (
	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/pkg/migration"
)

func init() {
	migration.Register("20250401000000_create_users_table", &createUsersTable{})
}

type createUsersTable struct{}

func (m *createUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *createUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.User{})
}
