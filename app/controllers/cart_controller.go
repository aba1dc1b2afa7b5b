package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/services"
	"github.com/craftline/storefront/pkg/middleware"
	"github.com/craftline/storefront/pkg/response"
)

// CartController serves the per-user cart. All routes are mounted
// behind RequireUser, so UserFromCtx never returns nil here.
type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// cartPayload is the wire shape of a cart, with computed totals.
type cartPayload struct {
	ID            uint              `json:"id"`
	UserID        uint              `json:"user_id"`
	Items         []models.CartItem `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalPrice    float64           `json:"total_price"`
}

func toCartPayload(cart models.Cart) cartPayload {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartPayload{
		ID:            cart.ID,
		UserID:        cart.UserID,
		Items:         items,
		TotalQuantity: cart.TotalQuantity(),
		TotalPrice:    cart.TotalPrice(),
	}
}

// Show handles GET /api/cart.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	cart, err := c.carts.Get(user.ID)
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.Success(w, toCartPayload(cart))
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// decodeQuantity reads an optional {"quantity": n} body. An empty body
// yields zero, which callers treat as "use the default".
func decodeQuantity(r *http.Request) (int, error) {
	var in quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}
	return in.Quantity, nil
}

// AddItem handles POST /api/cart/add/{productId}. Adding a product
// already in the cart merges the quantities into the existing line.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	productID, ok := pathID(r, "productId")
	if !ok {
		response.NotFound(w, "Product not found")
		return
	}

	quantity, err := decodeQuantity(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := c.carts.AddItem(user.ID, productID, quantity)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		serverError(w, r, err)
		return
	}

	response.Success(w, toCartPayload(cart))
}

// UpdateItem handles PATCH /api/cart/items/{cartItemId}. A quantity of
// zero or less removes the line.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	itemID, ok := pathID(r, "cartItemId")
	if !ok {
		response.NotFound(w, "Cart item not found")
		return
	}

	var in quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := c.carts.UpdateItem(user.ID, itemID, in.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			response.NotFound(w, "Cart item not found")
			return
		}
		serverError(w, r, err)
		return
	}

	response.Success(w, toCartPayload(cart))
}

// RemoveItem handles DELETE /api/cart/items/{cartItemId}.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	itemID, ok := pathID(r, "cartItemId")
	if !ok {
		response.NotFound(w, "Cart item not found")
		return
	}

	cart, err := c.carts.RemoveItem(user.ID, itemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			response.NotFound(w, "Cart item not found")
			return
		}
		serverError(w, r, err)
		return
	}

	response.Success(w, toCartPayload(cart))
}

// Clear handles DELETE /api/cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	cart, err := c.carts.Clear(user.ID)
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.Success(w, toCartPayload(cart))
}
