package backend

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Engineerbabu777/blog-app/internal/common"
)

// Claims extends the registered JWT claims with the authenticated user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// CreateToken issues an HS256 session token for userID using the configured
// secret and validity. It also returns the expiry so callers can store it
// alongside the token.
func (c *Client) CreateToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(c.validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseToken verifies a session token and returns the user id it was issued
// for. Expired tokens map to common.ErrTokenExpired, anything else invalid
// to common.ErrInvalidToken.
func (c *Client) ParseToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
