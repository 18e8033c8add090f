package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

type key int

const userClaimsKey key = 0

// NeedAuth resolves the caller identity from a Bearer token and stores it in
// the request context. Requests without a valid token are rejected with 401.
func NeedAuth(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Missing authentication", http.StatusUnauthorized)
				return
			}
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				http.Error(w, "Malformed authorization header", http.StatusUnauthorized)
				return
			}

			user, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), &user)))
		})
	}
}

// WithUser stores the caller identity the way NeedAuth does.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userClaimsKey, user)
}

// GetUserFromContext returns the authenticated caller, or nil when the
// request never went through NeedAuth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
