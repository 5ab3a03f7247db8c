package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cmwalshWVU/prompt-pad-api/internal/config"
)

// ErrInvalidHeader is returned when the Authorization header does not carry
// a "Bearer <token>" value.
var ErrInvalidHeader = errors.New("invalid token header")

// InvalidTokenError wraps the verification failure so callers can surface the
// underlying reason without ever seeing the signing secret.
type InvalidTokenError struct {
	Reason error
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %v", e.Reason)
}

func (e *InvalidTokenError) Unwrap() error { return e.Reason }

// Verifier checks bearer tokens against a statically configured secret and
// algorithm. It is stateless: no network call, no revocation list. A token
// stays valid until its stated expiry even if the backend user is deleted.
type Verifier struct {
	key       interface{}
	algorithm string
}

// NewVerifier builds a Verifier from the app configuration. HS* algorithms
// verify with the shared secret; RS* expect the secret to be a PEM-encoded
// RSA public key.
func NewVerifier(cfg *config.AppConfig) (*Verifier, error) {
	alg := cfg.JWTAlgorithm
	if alg == "" {
		alg = "HS256"
	}

	var key interface{}
	switch {
	case strings.HasPrefix(alg, "HS"):
		key = []byte(cfg.JWTSecret)
	case strings.HasPrefix(alg, "RS"):
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTSecret))
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		key = pub
	default:
		return nil, fmt.Errorf("unsupported JWT algorithm: %s", alg)
	}

	return &Verifier{key: key, algorithm: alg}, nil
}

// VerifyAuthHeader validates a raw Authorization header value and returns the
// token claims. The audience claim is intentionally not checked: the token
// issuer is pre-trusted in this deployment.
func (v *Verifier) VerifyAuthHeader(header string) (jwt.MapClaims, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, ErrInvalidHeader
	}
	rawToken := strings.TrimPrefix(header, "Bearer ")

	return v.Verify(rawToken)
}

// Verify validates a bare token string and returns its claims as an opaque
// map. Callers index claims by name ("sub", "email") and must tolerate an
// evolving claim set.
func (v *Verifier) Verify(rawToken string) (jwt.MapClaims, error) {
	parsedToken, err := jwt.Parse(rawToken, func(token *jwt.Token) (any, error) {
		return v.key, nil
	}, jwt.WithValidMethods([]string{v.algorithm}))
	if err != nil {
		return nil, &InvalidTokenError{Reason: err}
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, &InvalidTokenError{Reason: errors.New("malformed claims")}
	}

	return claims, nil
}
