// Package token implements stateless HS256 bearer tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Config contains token signing configuration.
type Config struct {
	SecretKey     string
	TokenDuration time.Duration
}

// Claims is the token payload: the subject email plus standard iat/exp.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticator signs and verifies bearer tokens. Tokens are not persisted
// server-side; verification is purely cryptographic.
type Authenticator struct {
	secret   []byte
	duration time.Duration
}

// NewAuthenticator creates a token authenticator.
func NewAuthenticator(cfg Config) *Authenticator {
	return &Authenticator{
		secret:   []byte(cfg.SecretKey),
		duration: cfg.TokenDuration,
	}
}

// Sign issues a token for the given email.
func (a *Authenticator) Sign(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.duration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the subject email.
// Implements httputil.TokenVerifier.
func (a *Authenticator) VerifyToken(_ context.Context, tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Email == "" {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}
