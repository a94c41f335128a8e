package service

import "errors"

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotInCart   = errors.New("product not in cart")
	ErrEmptyCart       = errors.New("cart is empty")
)
