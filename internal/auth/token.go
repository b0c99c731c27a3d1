package auth

import (
	"errors"
	"fmt"
	"time"

	"amora_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved caller, extracted from a provider token.
type Identity struct {
	UserID string
	Email  string
}

type providerClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParseToken verifies a provider-issued access token (HS256, shared
// signing secret) and resolves the caller's identity from its claims.
// There is no local session state; every request goes through here.
func ParseToken(secret, tokenStr string) (*Identity, error) {
	claims := &providerClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Token expired", 401)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidToken, "auth", "Invalid token", 401)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid token", 401)
	}

	return &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}

// NewToken mints a token the way the identity provider does. The server
// never issues tokens in production; this exists for local tooling and
// tests.
func NewToken(secret, userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := providerClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
