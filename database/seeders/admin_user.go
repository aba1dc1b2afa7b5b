package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/config"
	"github.com/craftline/storefront/pkg/auth"
	"github.com/craftline/storefront/pkg/logger"
)

// seedAdminUser creates the bootstrap administrator from ADMIN_EMAIL
// and ADMIN_PASSWORD. If the account exists it is promoted to admin
// but its password is left alone.
func seedAdminUser(db *gorm.DB) error {
	email := config.AdminEmail()

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if user.Role != models.RoleAdmin {
			user.Role = models.RoleAdmin
			return db.Save(&user).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "admin1234"))
	if err != nil {
		return err
	}

	user = models.User{
		Email:     email,
		Password:  hash,
		Username:  "admin",
		Firstname: "Admin",
		Role:      models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	logger.Info("admin account created", "email", email)
	return nil
}
