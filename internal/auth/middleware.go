package auth

import (
	"context"
	"net/http"
	"strings"

	"BakeShop/pkg/kit"
)

type ctxKey struct{}

// Identity is the opaque user handle attached to requests. Cart and
// order handlers only use ID; Email and DisplayName are display data.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// RequireUser rejects requests without a valid bearer token and puts
// the token's identity into the request context.
func RequireUser(jwt *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil || claims.UserID == "" {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			id := Identity{
				ID:          claims.UserID,
				Email:       claims.Email,
				DisplayName: claims.DisplayName,
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
		})
	}
}
