package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gameopolis-api/internal/utils"
)

type contextKey string

const usernameKey contextKey = "username"

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header format must be 'Bearer {token}'")
	}
	return parts[1], nil
}

// Require guards admin routes: it validates the bearer token and puts the
// authenticated username into the request context.
func (s *Service) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := ExtractToken(r)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Not authorized", err.Error())
			return
		}

		claims, err := s.Verify(tokenString)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Not authorized", "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Username returns the authenticated admin name, or "" on public routes.
func Username(ctx context.Context) string {
	if name, ok := ctx.Value(usernameKey).(string); ok {
		return name
	}
	return ""
}
