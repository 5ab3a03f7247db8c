package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/cmwalshWVU/prompt-pad-api/internal/config"
)

const testSecret = "unit-test-secret"

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	v, err := NewVerifier(&config.AppConfig{JWTSecret: testSecret, JWTAlgorithm: "HS256"})
	require.NoError(t, err)
	return v
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyAuthHeader_ValidToken(t *testing.T) {
	v := newTestVerifier(t)

	raw := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "user1@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"role":  "authenticated",
	})

	claims, err := v.VerifyAuthHeader("Bearer " + raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims["sub"])
	require.Equal(t, "user1@example.com", claims["email"])
	// issuer-specific extras come through untouched
	require.Equal(t, "authenticated", claims["role"])
}

func TestVerifyAuthHeader_MissingBearerPrefix(t *testing.T) {
	v := newTestVerifier(t)

	for _, header := range []string{"", "Basic abc", "bearer lowercase", "Token xyz"} {
		claims, err := v.VerifyAuthHeader(header)
		require.ErrorIs(t, err, ErrInvalidHeader, "header %q", header)
		require.Nil(t, claims)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	v := newTestVerifier(t)

	raw := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	claims, err := v.Verify(raw)
	require.Nil(t, claims)

	var invalid *InvalidTokenError
	require.ErrorAs(t, err, &invalid)
	require.ErrorIs(t, invalid.Reason, jwt.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	v := newTestVerifier(t)

	raw := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(raw)
	require.Nil(t, claims)

	var invalid *InvalidTokenError
	require.ErrorAs(t, err, &invalid)
}

func TestVerify_MalformedToken(t *testing.T) {
	v := newTestVerifier(t)

	claims, err := v.Verify("not.a.token")
	require.Nil(t, claims)

	var invalid *InvalidTokenError
	require.ErrorAs(t, err, &invalid)
	// the reason is surfaced but the secret never is
	require.NotContains(t, err.Error(), testSecret)
}

func TestVerify_RejectsUnexpectedAlgorithm(t *testing.T) {
	v := newTestVerifier(t)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, verr := v.Verify(unsigned)
	require.Nil(t, claims)
	require.Error(t, verr)
}

func TestNewVerifier_UnsupportedAlgorithm(t *testing.T) {
	_, err := NewVerifier(&config.AppConfig{JWTSecret: testSecret, JWTAlgorithm: "ES256"})
	require.Error(t, err)
}

func TestNewVerifier_RSAKeyMustParse(t *testing.T) {
	_, err := NewVerifier(&config.AppConfig{JWTSecret: "not a pem key", JWTAlgorithm: "RS256"})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidHeader))
}
