package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/service"
)

type contextKey string

const (
	UserIDKey  contextKey = "userId"
	IsAdminKey contextKey = "isAdmin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireUser validates the bearer token and stores the caller's identity in
// the request context.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			http.Error(w, `{"message":"Unauthorized, token is missing."}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.VerifyToken(token)
		if err != nil {
			http.Error(w, `{"message":"Invalid token."}`, http.StatusUnauthorized)
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			http.Error(w, `{"message":"Invalid token."}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, UserIDKey, userID)
		ctx = context.WithValue(ctx, IsAdminKey, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects callers whose token lacks the admin flag. It must run
// after RequireUser.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			http.Error(w, `{"message":"Access denied, admin only"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the authenticated user id from context
func GetUserID(ctx context.Context) primitive.ObjectID {
	if v := ctx.Value(UserIDKey); v != nil {
		return v.(primitive.ObjectID)
	}
	return primitive.NilObjectID
}

// IsAdmin extracts the admin flag from context
func IsAdmin(ctx context.Context) bool {
	if v := ctx.Value(IsAdminKey); v != nil {
		return v.(bool)
	}
	return false
}

// extractToken accepts both "Authorization: Bearer <token>" and a raw token
// in the Authorization header, as the original API did.
func extractToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return auth
}
