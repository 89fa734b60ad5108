package services

import "errors"

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrAlreadyInCart   = errors.New("menu item already in cart")
	ErrNotDeliveryCrew = errors.New("user is not in the Delivery crew group")
	ErrStatusInvalid   = errors.New("status can only be set to delivered")
	ErrUserTaken       = errors.New("username already registered")
	ErrInvalidLogin    = errors.New("invalid credentials")
)
