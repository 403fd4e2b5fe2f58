package entity

import (
	"errors"
	"strings"
)

type PaymentMethod string

const (
	PaymentUPI PaymentMethod = "UPI"
	PaymentCOD PaymentMethod = "COD"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

func PaymentMethods() []PaymentMethod { return []PaymentMethod{PaymentUPI, PaymentCOD} }

// ParsePaymentMethod accepts the enum values plus a few spellings the
// checkout form has used for cash on delivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upi":
		return PaymentUPI, nil
	case "cod", "cash_on_delivery", "cash-on-delivery", "cash on delivery":
		return PaymentCOD, nil
	}
	return "", ErrUnknownPaymentMethod
}

// IsOnline reports whether the customer pays before delivery.
func (p PaymentMethod) IsOnline() bool { return p == PaymentUPI }
