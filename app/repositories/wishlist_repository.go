package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/craftline/storefront/app/models"
)

// WishlistRepository wraps wishlist persistence. Like carts, wishlists
// are created lazily, one per user.
type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Transaction runs fn against a transactional copy of the repository.
func (r *WishlistRepository) Transaction(fn func(tx *WishlistRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&WishlistRepository{db: tx})
	})
}

// GetOrCreate returns the user's wishlist, creating an empty one on
// first access.
func (r *WishlistRepository) GetOrCreate(userID uint) (models.Wishlist, error) {
	wishlist := models.Wishlist{UserID: userID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&wishlist).Error
	if err != nil {
		return models.Wishlist{}, err
	}
	return r.FindByUser(userID)
}

// FindByUser loads the wishlist with items and their products, oldest
// addition first.
func (r *WishlistRepository) FindByUser(userID uint) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("wishlist_items.added_at ASC, wishlist_items.id ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&wishlist).Error
	return wishlist, err
}

func (r *WishlistRepository) FindItemByProduct(wishlistID, productID uint) (models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).First(&item).Error
	return item, err
}

func (r *WishlistRepository) CreateItem(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *WishlistRepository) DeleteItem(item *models.WishlistItem) error {
	return r.db.Delete(item).Error
}
