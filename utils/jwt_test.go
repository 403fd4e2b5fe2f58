package utils

import (
	"testing"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParseToken(t *testing.T) {
	tok, err := GenerateToken(7, entity.RoleEmployee1, "s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, entity.RoleEmployee1, claims.Role)
}

func TestParseToken_Rejects(t *testing.T) {
	good, err := GenerateToken(7, entity.RoleUser, "s3cret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(7, entity.RoleUser, "s3cret", -time.Minute)
	require.NoError(t, err)
	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 7,
		Role:   "Chef",
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	cases := map[string]struct{ token, secret string }{
		"wrong secret": {good, "other"},
		"expired":      {expired, "s3cret"},
		"garbage":      {"not.a.token", "s3cret"},
		"unknown role": {badRole, "s3cret"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.token, tc.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
