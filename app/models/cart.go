package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is the single cart owned by a user. The unique index on UserID
// enforces one cart per user; items are cascade-deleted with the cart.
type Cart struct {
	gorm.Model
	UserID uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// TotalQuantity is the sum of all line-item quantities.
// Computed on read, never persisted.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is Σ quantity × product price across all line items.
// Items must be loaded with their Product association.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Product.Price
	}
	return total
}

// CartItem is one line in a cart. The composite unique index keeps at
// most one line per product within a cart; merge-on-add relies on it.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}
