package controllers

import (
	"errors"
	"net/http"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/services"
	"github.com/craftline/storefront/pkg/middleware"
	"github.com/craftline/storefront/pkg/response"
)

// WishlistController serves the per-user wishlist. Mounted behind
// RequireUser.
type WishlistController struct {
	wishlists *services.WishlistService
}

func NewWishlistController(wishlists *services.WishlistService) *WishlistController {
	return &WishlistController{wishlists: wishlists}
}

type wishlistPayload struct {
	ID     uint                  `json:"id"`
	UserID uint                  `json:"user_id"`
	Items  []models.WishlistItem `json:"items"`
}

func toWishlistPayload(wishlist models.Wishlist) wishlistPayload {
	items := wishlist.Items
	if items == nil {
		items = []models.WishlistItem{}
	}
	return wishlistPayload{ID: wishlist.ID, UserID: wishlist.UserID, Items: items}
}

// Show handles GET /api/wishlist.
func (c *WishlistController) Show(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	wishlist, err := c.wishlists.Get(user.ID)
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.Success(w, toWishlistPayload(wishlist))
}

// Add handles POST /api/wishlist/products/{id}. The "added" flag is
// false when the product was already on the list.
func (c *WishlistController) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	productID, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	added, err := c.wishlists.Add(user.ID, productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		serverError(w, r, err)
		return
	}

	response.Success(w, map[string]bool{"added": added})
}

// Remove handles DELETE /api/wishlist/products/{id}. The "removed"
// flag is false when the product was not on the list.
func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	productID, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	removed, err := c.wishlists.Remove(user.ID, productID)
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.Success(w, map[string]bool{"removed": removed})
}
