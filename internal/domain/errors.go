package domain

import "errors"

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedIdentity = errors.New("malformed identity payload")
	ErrInvalidCartItem   = errors.New("invalid cart item")
	ErrDishNotInCart     = errors.New("dish not in cart")
)
