package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
	"github.com/craftline/storefront/pkg/logger"
	"github.com/craftline/storefront/pkg/metrics"
)

// CartService manages per-user carts. Every mutation runs inside a
// transaction and returns the fresh cart with items and totals.
type CartService struct {
	carts *repositories.CartRepository
}

func NewCartService(carts *repositories.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (models.Cart, error) {
	return s.carts.GetOrCreate(userID)
}

// AddItem puts quantity units of a product into the cart. If the
// product is already in the cart the quantities merge; the line is
// never duplicated. A non-positive quantity counts as 1.
func (s *CartService) AddItem(userID, productID uint, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	err := s.carts.Transaction(func(tx *repositories.CartRepository) error {
		// Checked inside the transaction so a concurrent product delete
		// cannot slip a dangling line into the cart.
		exists, err := repositories.NewProductRepository(tx.DB()).Exists(productID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrProductNotFound
		}

		cart, err := tx.GetOrCreate(userID)
		if err != nil {
			return err
		}

		item, err := tx.FindItemByProduct(cart.ID, productID)
		switch {
		case err == nil:
			item.Quantity += quantity
			err = tx.SaveItem(&item)
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = tx.CreateItem(&models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
			})
		}
		if err != nil {
			return err
		}
		return tx.Touch(cart.ID)
	})
	if err != nil {
		return models.Cart{}, s.fail("add", err)
	}

	metrics.CartOperations.WithLabelValues("add", "ok").Inc()
	logger.Debug("cart item added", "user_id", userID, "product_id", productID, "quantity", quantity)
	return s.carts.FindByUser(userID)
}

// UpdateItem sets the quantity of a cart line. Zero or negative removes
// the line. A line that is not in the caller's cart is not found.
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (models.Cart, error) {
	err := s.carts.Transaction(func(tx *repositories.CartRepository) error {
		cart, err := tx.GetOrCreate(userID)
		if err != nil {
			return err
		}

		item, err := tx.FindItem(cart.ID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if quantity <= 0 {
			err = tx.DeleteItem(&item)
		} else {
			item.Quantity = quantity
			err = tx.SaveItem(&item)
		}
		if err != nil {
			return err
		}
		return tx.Touch(cart.ID)
	})
	if err != nil {
		return models.Cart{}, s.fail("update", err)
	}

	metrics.CartOperations.WithLabelValues("update", "ok").Inc()
	return s.carts.FindByUser(userID)
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(userID, itemID uint) (models.Cart, error) {
	err := s.carts.Transaction(func(tx *repositories.CartRepository) error {
		cart, err := tx.GetOrCreate(userID)
		if err != nil {
			return err
		}

		item, err := tx.FindItem(cart.ID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := tx.DeleteItem(&item); err != nil {
			return err
		}
		return tx.Touch(cart.ID)
	})
	if err != nil {
		return models.Cart{}, s.fail("remove", err)
	}

	metrics.CartOperations.WithLabelValues("remove", "ok").Inc()
	return s.carts.FindByUser(userID)
}

// Clear empties the cart. The cart row itself stays.
func (s *CartService) Clear(userID uint) (models.Cart, error) {
	err := s.carts.Transaction(func(tx *repositories.CartRepository) error {
		cart, err := tx.GetOrCreate(userID)
		if err != nil {
			return err
		}
		if err := tx.ClearItems(cart.ID); err != nil {
			return err
		}
		return tx.Touch(cart.ID)
	})
	if err != nil {
		return models.Cart{}, s.fail("clear", err)
	}

	metrics.CartOperations.WithLabelValues("clear", "ok").Inc()
	return s.carts.FindByUser(userID)
}

func (s *CartService) fail(operation string, err error) error {
	metrics.CartOperations.WithLabelValues(operation, "error").Inc()
	return err
}
