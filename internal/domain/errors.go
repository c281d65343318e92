package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart indicates a checkout attempt with no priceable items.
	ErrEmptyCart = errors.New("cart is empty")
)
