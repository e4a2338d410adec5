package models

import "errors"

// Domain errors returned by the services. Controllers match these with
// errors.Is and translate them to HTTP status codes; anything else is treated
// as a storage failure and surfaces as a 500.
var (
	ErrDuplicateIdentity  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrProductNotFound    = errors.New("product not found")
	ErrLineNotFound       = errors.New("cart item not found")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrValidation         = errors.New("malformed request payload")
)
