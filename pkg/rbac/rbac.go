// Package rbac provides role-based access control middleware.
package rbac

import (
	"net/http"

	"github.com/craftline/storefront/pkg/middleware"
	"github.com/craftline/storefront/pkg/response"
)

// HasRole allows access only to authenticated users with one of the
// given roles. Mount after middleware.Authenticate.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := middleware.UserFromCtx(r.Context())
			if user == nil {
				response.Unauthorized(w)
				return
			}
			if !allowed[user.Role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
