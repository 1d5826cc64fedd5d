package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sendloop/sendloop/pkg/cookie"
)

// CookieName is the session token cookie.
const CookieName = "sendloop_session"

// tokenKey is the context key for the session token.
type tokenKey struct{}

// Middleware ensures every request carries a valid session token:
// an existing signed cookie is verified and reused, anything else gets
// a fresh token. The token lands in the request context.
func Middleware(cookies *cookie.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := cookies.Get(r, CookieName)
			if err != nil || token == "" {
				token = uuid.NewString()
				cookies.Set(w, CookieName, token)
			}
			ctx := context.WithValue(r.Context(), tokenKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext returns the session token placed by Middleware.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
