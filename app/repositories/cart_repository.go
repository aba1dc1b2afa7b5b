package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/craftline/storefront/app/models"
)

// CartRepository wraps cart persistence. Carts are created lazily, one
// per user, guarded by the unique index on user_id.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Transaction runs fn against a transactional copy of the repository.
func (r *CartRepository) Transaction(fn func(tx *CartRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&CartRepository{db: tx})
	})
}

// DB exposes the underlying handle so other repositories can join the
// same transaction.
func (r *CartRepository) DB() *gorm.DB { return r.db }

// GetOrCreate returns the user's cart, creating an empty one on first
// access. The insert is an upsert that does nothing on conflict, so two
// concurrent first accesses converge on the same row.
func (r *CartRepository) GetOrCreate(userID uint) (models.Cart, error) {
	cart := models.Cart{UserID: userID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error
	if err != nil {
		return models.Cart{}, err
	}
	return r.FindByUser(userID)
}

// FindByUser loads the cart with items and their products, oldest
// addition first.
func (r *CartRepository) FindByUser(userID uint) (models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.added_at ASC, cart_items.id ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	return cart, err
}

// FindItemByProduct returns the cart line for a product, if any.
func (r *CartRepository) FindItemByProduct(cartID, productID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	return item, err
}

// FindItem returns a cart line by its ID, scoped to the cart. A line
// that exists in another user's cart is not found.
func (r *CartRepository) FindItem(cartID, itemID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error
	return item, err
}

func (r *CartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *CartRepository) SaveItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *CartRepository) DeleteItem(item *models.CartItem) error {
	return r.db.Delete(item).Error
}

// Touch bumps the cart's updated_at after an item mutation.
func (r *CartRepository) Touch(cartID uint) error {
	return r.db.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}

// ClearItems removes every line from the cart.
func (r *CartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
