// Package auth issues and verifies the short-lived access tokens handed out
// by Login and Refresh. Tokens are HS512-signed JWTs carrying the username,
// the user id and one entry per assigned role.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of an access token. Subject holds the username.
type Claims struct {
	jwt.RegisteredClaims
	Name   string   `json:"name"`
	UserID string   `json:"uid"`
	Roles  []string `json:"roles,omitempty"`
}

// HasRole reports whether role is among the token's role claims.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Issuer signs and verifies access tokens. It holds no mutable state.
type Issuer struct {
	secretKey []byte
	ttl       time.Duration
}

// NewIssuer validates the key material and lifetime. Both problems are
// configuration errors and are reported as common.ErrConfiguration.
func NewIssuer(secretKey string, ttl time.Duration) (*Issuer, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("%w: signing key is empty", common.ErrConfiguration)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: access token lifetime must be positive", common.ErrConfiguration)
	}
	return &Issuer{secretKey: []byte(secretKey), ttl: ttl}, nil
}

// TTL is the configured access token lifetime.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// IssueAccessToken builds a token for user valid until now+TTL.
func (i *Issuer) IssueAccessToken(user *models.User, roles []string, now time.Time) (string, error) {
	if user == nil || user.UserName == "" {
		return "", errors.New("cannot issue token for anonymous user")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserName,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Name:   user.UserName,
		UserID: user.ID,
		Roles:  roles,
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseAccessToken verifies signature, algorithm and lifetime against now.
// It returns common.ErrTokenExpired for an expired token and
// common.ErrInvalidToken for anything else that fails verification.
func (i *Issuer) ParseAccessToken(tokenString string, now time.Time) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return i.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
