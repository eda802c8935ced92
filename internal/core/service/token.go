package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/safenotes/notes-system/internal/core/domain"
)

const defaultTokenTTL = 120 * time.Minute

// TokenIssuer mints signed, time-bounded access tokens. Verification of
// incoming tokens is the auth middleware's job; the issuer only produces.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue returns an HS256 JWT asserting the user's identity and role. Each
// call mints a fresh jti, so two tokens for the same user are never equal.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role.String(),
		"jti":  uuid.New().String(),
		"iss":  t.issuer,
		"aud":  t.audience,
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}
