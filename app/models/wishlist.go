package models

import (
	"time"

	"gorm.io/gorm"
)

// Wishlist is the single wishlist owned by a user, created lazily on
// first access.
type Wishlist struct {
	gorm.Model
	UserID uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Items  []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
}

// WishlistItem marks a product as wished. At most one entry per product
// within a wishlist.
type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WishlistID uint      `gorm:"not null;uniqueIndex:idx_wishlist_product" json:"wishlist_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_wishlist_product" json:"product_id"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}
