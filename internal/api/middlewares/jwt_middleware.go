package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/internal/token"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

// JWTMiddleware resolves the request Principal from the Authorization header
// and stores the claims on the request context. Requests failing verification
// never reach a handler.
func JWTMiddleware(verifier *token.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.VerifyAuthHeader(r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, token.ErrInvalidHeader) {
					utils.WriteError(w, "Invalid token header", http.StatusUnauthorized)
					return
				}
				utils.Logger.Infof("token rejected: %v", err)
				utils.WriteError(w, err.Error(), http.StatusUnauthorized)
				return
			}

			sub, _ := claims["sub"].(string)
			email, _ := claims["email"].(string)

			ctx := context.WithValue(r.Context(), utils.ClaimsKey, claims)
			ctx = context.WithValue(ctx, utils.UserIDKey, sub)
			ctx = context.WithValue(ctx, utils.EmailKey, email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
