// Package routes mounts the HTTP surface onto the router.
package routes

import (
	"net/http"

	"github.com/craftline/storefront/app/controllers"
	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/pkg/metrics"
	"github.com/craftline/storefront/pkg/middleware"
	"github.com/craftline/storefront/pkg/rbac"
	"github.com/craftline/storefront/pkg/router"
	"github.com/craftline/storefront/pkg/ws"
)

// Deps are the handlers the route table wires together.
type Deps struct {
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Carts     *controllers.CartController
	Wishlists *controllers.WishlistController
	GraphQL   http.HandlerFunc
	Hub       *ws.Hub
}

// Register mounts every route. Global middleware (metrics, recovery,
// request IDs, logging, CORS, rate limiting, authentication) is applied
// by the server before this is called.
func Register(r *router.Router, d Deps) {
	admin := rbac.HasRole(models.RoleAdmin)

	api := r.Group("/api")

	// Accounts and sessions.
	api.Post("/account", "account.register", d.Auth.Register)
	api.Get("/account", "account.me", d.Auth.Me, middleware.RequireUser)
	api.Post("/token", "token.create", d.Auth.Login)

	// Catalog. Reads are public, writes are admin-only.
	api.Get("/products", "products.index", d.Products.Index)
	api.Get("/products/{id}", "products.show", d.Products.Show)
	api.Post("/products", "products.store", d.Products.Store, admin)
	api.Patch("/products/{id}", "products.update", d.Products.Update, admin)
	api.Delete("/products/{id}", "products.destroy", d.Products.Destroy, admin)
	api.Post("/products/{id}/image", "products.image", d.Products.UploadImage, admin)

	// Cart, owned by the authenticated user.
	cart := api.Group("/cart", middleware.RequireUser)
	cart.Get("/", "cart.show", d.Carts.Show)
	cart.Post("/add/{productId}", "cart.add", d.Carts.AddItem)
	cart.Patch("/items/{cartItemId}", "cart.items.update", d.Carts.UpdateItem)
	cart.Delete("/items/{cartItemId}", "cart.items.remove", d.Carts.RemoveItem)
	cart.Delete("/", "cart.clear", d.Carts.Clear)

	// Wishlist, owned by the authenticated user.
	wishlist := api.Group("/wishlist", middleware.RequireUser)
	wishlist.Get("/", "wishlist.show", d.Wishlists.Show)
	wishlist.Post("/products/{id}", "wishlist.add", d.Wishlists.Add)
	wishlist.Delete("/products/{id}", "wishlist.remove", d.Wishlists.Remove)

	// Operational surface.
	r.Get("/metrics", "metrics", metrics.Handler())
	if d.GraphQL != nil {
		r.Post("/graphql", "graphql", d.GraphQL)
	}
	if d.Hub != nil {
		r.Get("/ws/catalog", "ws.catalog", d.Hub.Handler)
	}
}
