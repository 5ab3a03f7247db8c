package utils

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	UserIDKey ContextKey = "userId"
	EmailKey  ContextKey = "email"
)

// UserIDFromContext returns the authenticated subject id placed on the
// request context by the JWT middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok && email != ""
}

func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(jwt.MapClaims)
	return claims, ok
}
