package service

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrForbidden           = errors.New("access denied")
	ErrUserNotFound        = errors.New("user not found")
	ErrSelfTarget          = errors.New("cannot change your own admin status")
	ErrSnackNotFound       = errors.New("snack not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrCartItemNotFound    = errors.New("snack not found")
	ErrSnackUnavailable    = errors.New("snack not available")
	ErrOutOfStock          = errors.New("out of stock")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrConcurrencyConflict = errors.New("the record was modified concurrently, please retry")
)
