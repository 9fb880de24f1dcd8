// Package auth issues and validates the access tokens consumed by middleware.RequireAuth.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"jobboard-backend/internal/config"
)

// SecretKey signs and verifies every token
var SecretKey = ""

// JwtIssuer is the expected issuer claim
var JwtIssuer = "JobBoard"

// TokenExpiry is the lifetime of newly generated tokens
var TokenExpiry = time.Hour

// Configure sets the signing key, issuer and expiry from cfg
func Configure(cfg config.JWTConfig) {
	SecretKey = cfg.Secret
	if cfg.Issuer != "" {
		JwtIssuer = cfg.Issuer
	}
	if cfg.Expiry > 0 {
		TokenExpiry = cfg.Expiry
	}
}

// GenerateToken returns a signed HS256 access token whose subject is userID
func GenerateToken(userID uuid.UUID) (string, error) {
	if SecretKey == "" {
		return "", errors.New("SECRET_KEY is not set")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    JwtIssuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signedToken, err := token.SignedString([]byte(SecretKey))
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %s", err)
	}
	return signedToken, nil
}

// ValidatedToken parses encodeToken into registered claims, checking the
// signing method, signature and expiry.
func ValidatedToken(encodeToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodeToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(SecretKey), nil
	})
}
