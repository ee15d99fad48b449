package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNotJWT is returned by ParseClaims for opaque tokens.
var ErrNotJWT = errors.New("token is not a JWT")

// TokenIssuer signs and validates HS256 session tokens.
// It backs the offline account store and the fake backend used in tests.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a new issuer.
// secret must be at least 32 characters for HS256 security.
func NewTokenIssuer(secret string, issuer string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token with userID as subject and a random jti.
func (m *TokenIssuer) Issue(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("auth.Issue: empty subject")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Issue: sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token and returns its subject.
func (m *TokenIssuer) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("auth.Validate: token is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", fmt.Errorf("auth.Validate: parse token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("auth.Validate: invalid token claims")
	}

	return claims.Subject, nil
}

// Claims is the unverified content of a stored session token.
// ExpiresAt is zero when the token carries no exp claim.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token had expired at t.
func (c Claims) Expired(t time.Time) bool {
	return !c.ExpiresAt.IsZero() && !t.Before(c.ExpiresAt)
}

// ParseClaims reads the subject and expiry of a token without verifying its
// signature. The client does not hold the signing key.
func ParseClaims(tokenString string) (Claims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	out := Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
