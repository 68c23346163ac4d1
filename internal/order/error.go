package order

import "errors"

var (
	ErrEmptyOrder       = errors.New("order has no items")
	ErrProcessingFailed = errors.New("order processing failed")
)
