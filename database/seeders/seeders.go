// Package seeders populates a fresh database with the bootstrap admin
// account and a demo catalog.
package seeders

import (
	"gorm.io/gorm"

	"github.com/craftline/storefront/pkg/logger"
)

// Run executes every seeder. Seeders are idempotent; running them
// against a populated database changes nothing.
func Run(db *gorm.DB) error {
	seeders := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"admin_user", seedAdminUser},
		{"products", seedProducts},
	}

	for _, s := range seeders {
		logger.Info("seeding", "seeder", s.name)
		if err := s.fn(db); err != nil {
			return err
		}
	}
	return nil
}
