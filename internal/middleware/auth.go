package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tipstream/api/internal/model"
	"github.com/tipstream/api/internal/service"
)

// TokenVerifier defines the interface for token validation
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Auth returns a middleware that gates requests on a bearer token.
// An absent Authorization header is 401; a header that is present but
// malformed, tampered, or expired is 403.
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeEnvelope(w, http.StatusUnauthorized,
					model.NewFail("missing authorization header"))
				return
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeEnvelope(w, http.StatusForbidden,
					model.NewFail("invalid authorization header format"))
				return
			}

			token := parts[1]

			// Validate token
			claims, err := verifier.Verify(token)
			if err != nil {
				switch err {
				case service.ErrTokenExpired:
					writeEnvelope(w, http.StatusForbidden,
						model.NewFail("token expired"))
				default:
					writeEnvelope(w, http.StatusForbidden,
						model.NewFail("invalid token"))
				}
				return
			}

			// Add claims to context
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsKey is the context key for token claims
const ClaimsKey contextKey = "claims"

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the token claims from context
func GetClaims(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*service.Claims); ok {
		return claims
	}
	return nil
}
