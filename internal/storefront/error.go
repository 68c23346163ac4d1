package storefront

import "errors"

var (
	// -- Caller errors --
	ErrUnknownProduct = errors.New("unknown product")
	ErrInvalidTheme   = errors.New("invalid theme")

	// -- Checkout --
	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderInFlight = errors.New("an order is already being processed")

	// -- Comparison --
	ErrComparisonFull = errors.New("comparison list is full")

	// -- Persistence --
	ErrPersistenceRead = errors.New("stored value is not readable")
)
