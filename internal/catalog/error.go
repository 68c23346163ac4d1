package catalog

import "errors"

var (
	ErrDuplicateProduct  = errors.New("duplicate product id")
	ErrInvalidProductID  = errors.New("product id must be positive")
	ErrInvalidPrice      = errors.New("invalid product price")
	ErrInvalidRating     = errors.New("rating must be within 0 and 5")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidSortOrder  = errors.New("invalid sort order")
)
