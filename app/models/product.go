package models

import "gorm.io/gorm"

// InventoryStatus is the displayed availability of a product.
// It is set independently of Quantity; the catalog does not derive
// one from the other.
type InventoryStatus string

const (
	InStock    InventoryStatus = "INSTOCK"
	LowStock   InventoryStatus = "LOWSTOCK"
	OutOfStock InventoryStatus = "OUTOFSTOCK"
)

// Valid reports whether s is one of the known statuses.
func (s InventoryStatus) Valid() bool {
	switch s {
	case InStock, LowStock, OutOfStock:
		return true
	}
	return false
}

// Product is a catalog record. Timestamps come from gorm.Model and are
// set server-side on every write.
type Product struct {
	gorm.Model
	Code              string          `gorm:"size:255;index"         json:"code"`
	Name              string          `gorm:"size:255;not null;index" json:"name"`
	Description       string          `gorm:"type:text"              json:"description"`
	Image             string          `gorm:"size:255"               json:"image"`
	Category          string          `gorm:"size:255;index"         json:"category"`
	Price             float64         `gorm:"not null;default:0"     json:"price"`
	Quantity          int             `gorm:"not null;default:0"     json:"quantity"`
	InternalReference string          `gorm:"size:255"               json:"internal_reference"`
	ShellID           int             `json:"shell_id"`
	InventoryStatus   InventoryStatus `gorm:"size:50"                json:"inventory_status"`
	Rating            float64         `json:"rating"`
}
