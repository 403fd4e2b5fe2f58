package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"Admin":      RoleAdmin,
		"admin":      RoleAdmin,
		" Employee1": RoleEmployee1,
		"EMPLOYEE2":  RoleEmployee2,
		"user":       RoleUser,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("Manager")
	assert.ErrorIs(t, err, ErrUnknownRole)
	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRoleLandingPath(t *testing.T) {
	assert.Equal(t, "/admin", RoleAdmin.LandingPath())
	assert.Equal(t, "/employee1", RoleEmployee1.LandingPath())
	assert.Equal(t, "/employee2", RoleEmployee2.LandingPath())
	assert.Equal(t, "/", RoleUser.LandingPath())

	assert.True(t, RoleEmployee2.IsStaff())
	assert.False(t, RoleUser.IsStaff())
}

func TestParsePaymentMethod(t *testing.T) {
	for _, in := range []string{"UPI", "upi "} {
		pm, err := ParsePaymentMethod(in)
		require.NoError(t, err)
		assert.Equal(t, PaymentUPI, pm)
		assert.True(t, pm.IsOnline())
	}
	for _, in := range []string{"COD", "cash on delivery", "Cash-On-Delivery"} {
		pm, err := ParsePaymentMethod(in)
		require.NoError(t, err)
		assert.Equal(t, PaymentCOD, pm)
		assert.False(t, pm.IsOnline())
	}
	_, err := ParsePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}

func TestDiscountedPrice(t *testing.T) {
	f := FoodItem{ActualPrice: decimal.RequireFromString("199.99"), DiscountPer: 15}
	assert.Equal(t, "169.99", f.DiscountedPrice().StringFixed(2))

	f = FoodItem{ActualPrice: decimal.RequireFromString("80"), DiscountPer: 0}
	assert.True(t, f.DiscountedPrice().Equal(decimal.NewFromInt(80)))
}
