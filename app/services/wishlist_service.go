package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
)

// WishlistService manages per-user wishlists. Add and Remove report
// whether they changed anything instead of erroring on repeats, so
// both are safe to retry.
type WishlistService struct {
	wishlists *repositories.WishlistRepository
	products  *repositories.ProductRepository
}

func NewWishlistService(wishlists *repositories.WishlistRepository, products *repositories.ProductRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

// Get returns the user's wishlist, creating an empty one on first
// access.
func (s *WishlistService) Get(userID uint) (models.Wishlist, error) {
	return s.wishlists.GetOrCreate(userID)
}

// Add puts a product on the wishlist. Returns true when the product was
// newly added, false when it was already there.
func (s *WishlistService) Add(userID, productID uint) (bool, error) {
	exists, err := s.products.Exists(productID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrProductNotFound
	}

	added := false
	err = s.wishlists.Transaction(func(tx *repositories.WishlistRepository) error {
		wishlist, err := tx.GetOrCreate(userID)
		if err != nil {
			return err
		}

		_, err = tx.FindItemByProduct(wishlist.ID, productID)
		switch {
		case err == nil:
			return nil // already wished
		case errors.Is(err, gorm.ErrRecordNotFound):
			added = true
			return tx.CreateItem(&models.WishlistItem{
				WishlistID: wishlist.ID,
				ProductID:  productID,
			})
		default:
			return err
		}
	})
	return added, err
}

// Remove takes a product off the wishlist. Returns true when an entry
// was removed, false when the product was not on the list. A user with
// no wishlist yet gets false; the remove path never creates one.
func (s *WishlistService) Remove(userID, productID uint) (bool, error) {
	removed := false
	err := s.wishlists.Transaction(func(tx *repositories.WishlistRepository) error {
		wishlist, err := tx.FindByUser(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		item, err := tx.FindItemByProduct(wishlist.ID, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		removed = true
		return tx.DeleteItem(&item)
	})
	return removed, err
}
