package seeders

import (
	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
)

// seedProducts loads a small demo catalog into an empty products table.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Code:              "f230fh0g3",
			Name:              "Bamboo Watch",
			Description:       "Analog wristwatch with a bamboo case and leather strap.",
			Image:             "bamboo-watch.jpg",
			Category:          "Accessories",
			Price:             65,
			Quantity:          24,
			InternalReference: "REF-001-2024",
			ShellID:           15,
			InventoryStatus:   models.InStock,
			Rating:            5,
		},
		{
			Code:              "nvklal433",
			Name:              "Black Watch",
			Description:       "Minimalist black watch with a silicone strap.",
			Image:             "black-watch.jpg",
			Category:          "Accessories",
			Price:             72,
			Quantity:          61,
			InternalReference: "REF-002-2024",
			ShellID:           15,
			InventoryStatus:   models.InStock,
			Rating:            4,
		},
		{
			Code:              "zz21cz3c1",
			Name:              "Blue Band",
			Description:       "Fitness tracker band, water resistant to 50 m.",
			Image:             "blue-band.jpg",
			Category:          "Fitness",
			Price:             79,
			Quantity:          2,
			InternalReference: "REF-003-2024",
			ShellID:           12,
			InventoryStatus:   models.LowStock,
			Rating:            3,
		},
		{
			Code:              "244wgerg2",
			Name:              "Blue T-Shirt",
			Description:       "Plain blue cotton t-shirt.",
			Image:             "blue-t-shirt.jpg",
			Category:          "Clothing",
			Price:             29,
			Quantity:          25,
			InternalReference: "REF-004-2024",
			ShellID:           9,
			InventoryStatus:   models.InStock,
			Rating:            5,
		},
		{
			Code:              "h456wer53",
			Name:              "Bracelet",
			Description:       "Braided leather bracelet with a steel clasp.",
			Image:             "bracelet.jpg",
			Category:          "Accessories",
			Price:             15,
			Quantity:          0,
			InternalReference: "REF-005-2024",
			ShellID:           15,
			InventoryStatus:   models.OutOfStock,
			Rating:            4,
		},
	}

	return db.Create(&products).Error
}
