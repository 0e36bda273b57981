package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim keys mirror the WS-Federation format the backend emits.
const (
	ClaimUserID   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimUsername = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimRole     = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

// signingKey is arbitrary: the client never verifies signatures.
var signingKey = []byte("testing-key")

// SignedToken mints a token shaped like the backend's, expiring at exp.
func SignedToken(t *testing.T, userID, username, role string, exp time.Time) string {
	t.Helper()
	return SignedTokenWithClaims(t, jwt.MapClaims{
		ClaimUserID:   userID,
		ClaimUsername: username,
		ClaimRole:     role,
		"exp":         exp.Unix(),
	})
}

// SignedTokenWithClaims mints a token carrying exactly the given claims.
func SignedTokenWithClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}
