package handler

import (
	"context"
	"drone-spot-api/common"
	"drone-spot-api/model"
	"drone-spot-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserUIDKey   contextKey = "userUID"
	UserLevelKey contextKey = "userLevel"
)

// AuthMiddleware gates requests on a verified access token. It never touches
// the session store; access tokens are self-contained.
type AuthMiddleware struct {
	codec *service.TokenCodec
}

func NewAuthMiddleware(codec *service.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{codec: codec}
}

// Require rejects the request unless a valid bearer access token is present.
// The rejection message is the same for missing, malformed and expired
// tokens.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.claimsFromHeader(r)
		if !ok {
			err := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", nil)
			err.Send(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
	})
}

// Optional lets the request through either way; a valid token injects the
// identity, anything else leaves the request anonymous.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := m.claimsFromHeader(r); ok {
			r = r.WithContext(withIdentity(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) claimsFromHeader(r *http.Request) (*model.AppClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return nil, false
	}

	claims, err := m.codec.VerifyAccess(headerParts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func withIdentity(ctx context.Context, claims *model.AppClaims) context.Context {
	ctx = context.WithValue(ctx, UserUIDKey, claims.Subject)
	return context.WithValue(ctx, UserLevelKey, claims.Level)
}

// AdminMiddleware requires the admin privilege level. It must run after
// Require so the level is already in the context.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level, ok := r.Context().Value(UserLevelKey).(int)

		if !ok || level < model.LevelAdmin {
			err := common.NewAppError(http.StatusForbidden, "Access denied. Admin privileges required.", nil)
			err.Send(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
