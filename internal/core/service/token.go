package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// TokenIssuer signs and verifies HS256 tokens carrying an identity claim
// set. The secret and lifetime are injected at construction; there is no
// package-level signing state.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 100 * time.Second
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime applied to issued tokens.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs the claim set with an expiry of now+TTL. A random jti is
// embedded so issuing identical claims twice always produces distinct
// tokens, even within the same second.
func (t *TokenIssuer) Issue(claims domain.TokenClaims) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	now := time.Now()
	mc := jwt.MapClaims{
		"first_name": claims.FirstName,
		"last_name":  claims.LastName,
		"email":      claims.Email,
		"role":       claims.Role,
		"iat":        now.Unix(),
		"exp":        now.Add(t.ttl).Unix(),
		"jti":        hex.EncodeToString(nonce),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(t.secret)
}

// Verify checks the signature first, then the expiry, and returns the
// embedded claims. Tampered or otherwise unparseable tokens come back as
// domain.ErrInvalidToken; structurally valid tokens past their expiry as
// domain.ErrTokenExpired.
func (t *TokenIssuer) Verify(token string) (domain.TokenClaims, error) {
	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mc, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.TokenClaims{}, domain.ErrTokenExpired
		}
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}

	return domain.TokenClaims{
		FirstName: claimString(mc, "first_name"),
		LastName:  claimString(mc, "last_name"),
		Email:     claimString(mc, "email"),
		Role:      claimString(mc, "role"),
	}, nil
}

func claimString(mc jwt.MapClaims, key string) string {
	s, _ := mc[key].(string)
	return s
}
