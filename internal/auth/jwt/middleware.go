package jwtauth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type ClaimsContextKey struct{}

//go:generate mockgen -source=middleware.go -destination=mocks/mock.go -package=mockjwt
type TokenParser interface {
	ParseToken(tokenStr string) (*Claims, error)
}

// NewMiddleware resolves the acting tenant from the Authorization
// header. The convention is "Bearer <token>"; anything else is 401.
// No data access happens before this check.
func NewMiddleware(logger *zap.Logger, tokenManager TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokenManager.ParseToken(headerParts[1])
			if err != nil || claims == nil {
				logger.Warn("error when parsing JWT token", zap.Error(err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if claims.StoreID == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
