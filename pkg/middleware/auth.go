package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
	"github.com/craftline/storefront/pkg/auth"
	"github.com/craftline/storefront/pkg/response"
)

type userCtxKey struct{}

// UserFromCtx returns the authenticated user resolved by Authenticate,
// or nil when the request is anonymous.
func UserFromCtx(ctx context.Context) *models.User {
	if u, ok := ctx.Value(userCtxKey{}).(*models.User); ok {
		return u
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Authenticate resolves an optional bearer token to a concrete user.
//
// No Authorization header: the request proceeds anonymously (some
// endpoints are public). A token that is present but invalid, expired,
// or whose subject no longer exists is rejected with 401.
func Authenticate(users *repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			user, err := users.FindByID(claims.UserID)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests. Mount after Authenticate.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromCtx(r.Context()) == nil {
			response.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
