package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the custom JWT claims used across the app.
type Claims struct {
	UserID uint        `json:"userId"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the user.
func GenerateToken(userID uint, role entity.Role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and resolves the role claim.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	role, err := entity.ParseRole(string(claims.Role))
	if err != nil || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	claims.Role = role
	return claims, nil
}
