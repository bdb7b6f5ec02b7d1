package http

import (
	"context"
	"net/http"
	"strings"

	"carrental-backend/internal/security"
)

type contextKey string

const adminClaimsKey contextKey = "admin_claims"

// AdminAuth guards the back-office routes: requests must carry a valid
// bearer token issued by the login endpoint.
func AdminAuth(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// adminFromContext returns the authenticated operator, or nil outside the
// admin routes.
func adminFromContext(ctx context.Context) *security.AdminClaims {
	claims, _ := ctx.Value(adminClaimsKey).(*security.AdminClaims)
	return claims
}
