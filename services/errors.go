package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart            = errors.New("your cart is empty")
	ErrUnauthenticated      = errors.New("please log in to proceed")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")

	ErrUsernameTaken = errors.New("this username is already taken")
	ErrUnknownUser   = errors.New("the username you entered is not registered")
	ErrWrongPassword = errors.New("the password you entered is incorrect")
	ErrInactiveUser  = errors.New("your account is inactive, please contact the administrator")

	ErrNotFound      = errors.New("not found")
	ErrCategoryInUse = errors.New("category still has food items")
	ErrInvalidInput  = errors.New("invalid input")
)

// OrderPersistenceError means the order could not be stored. Nothing was
// committed and the cart is still in the session, so the user may retry.
type OrderPersistenceError struct {
	Step string // header, line or transaction
	Err  error
}

func (e *OrderPersistenceError) Error() string {
	return fmt.Sprintf("save order %s: %v", e.Step, e.Err)
}

func (e *OrderPersistenceError) Unwrap() error { return e.Err }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func isNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
