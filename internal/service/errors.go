package service

import "errors"

// Redemption domain errors. The HTTP layer maps these to client-error
// statuses; everything else surfaces as a server error.
var (
	// ErrInvalidQuantity: qty was zero or negative.
	ErrInvalidQuantity = errors.New("qty must be positive")

	// ErrQuantityLimitExceeded: qty was above the per-order cap.
	ErrQuantityLimitExceeded = errors.New("qty exceeds max limit (100)")

	// ErrProductNotFound: the product id does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientBalance: the balance does not cover price x qty.
	ErrInsufficientBalance = errors.New("insufficient points")
)
