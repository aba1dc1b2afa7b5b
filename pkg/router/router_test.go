package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/products/42", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err, "missing params must not build a URL")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestGroupPrefixesRoutes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	cart := api.Group("/cart")
	cart.Get("/", "cart.show", ok)
	cart.Post("/add/{productId}", "cart.add", ok)

	path, found := r.Path("cart.add")
	require.True(t, found)
	assert.Equal(t, "/api/cart/add/{productId}", path)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/cart")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Marked", "yes")
			next.ServeHTTP(w, r)
		})
	}

	r := New()
	guarded := r.Group("/admin", mark)
	guarded.Get("/ping", "admin.ping", ok)
	r.Get("/open", "open", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/admin/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "yes", resp.Header.Get("X-Marked"))

	resp, err = http.Get(srv.URL + "/open")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("X-Marked"))
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/a", "a", ok)
	r.Post("/b", "b", ok)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "GET", routes[0].Method)
	assert.Equal(t, "/a", routes[0].Path)
}
