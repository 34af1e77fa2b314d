package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/tlv300/whois-be/internal/model"
	"github.com/tlv300/whois-be/internal/service"
)

type contextKey string

const adminContextKey = contextKey("admin")

type AuthMiddleware struct {
	authService service.IAuthService
	logger      *log.Logger
}

func NewAuthMiddleware(s service.IAuthService, l *log.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: s,
		logger:      l,
	}
}

// Authenticate guards the admin endpoints with a bearer JWT.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		tokenString := headerParts[1]

		claims, err := m.authService.ValidateToken(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				respondWithError(w, http.StatusUnauthorized, "Token has expired")
			} else {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminFromContext returns the authenticated admin's claims, if any.
func AdminFromContext(ctx context.Context) (*model.Claims, bool) {
	claims, ok := ctx.Value(adminContextKey).(*model.Claims)
	return claims, ok
}
