package cart

import (
	"storefront/internal/catalog"
	"storefront/internal/money"
)

// Line is one product's quantity in the active cart. Quantity is always >= 1.
type Line struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// View joins a line to its catalog product.
type View struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal money.Amount    `json:"lineTotal"`
}
