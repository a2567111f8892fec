package transport

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/contact-management/application/auth"
	"github.com/muhammadheryan/contact-management/constant"
	"github.com/muhammadheryan/contact-management/utils/errors"
)

// TokenHeader carries the opaque bearer token issued by login.
const TokenHeader = "X-API-TOKEN"

// AuthMiddleware resolves the token header to a user via AuthApp and stores
// the identity in the request context, so handlers receive it explicitly
// instead of reading ambient state. Public endpoints pass through.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(TokenHeader)
			user, err := authApp.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute defines which endpoints require no token: registration and
// login only.
func isPublicRoute(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	return r.URL.Path == "/api/users" || r.URL.Path == "/api/auth/login"
}
