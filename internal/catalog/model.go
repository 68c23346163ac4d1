package catalog

import "storefront/internal/money"

type Product struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Price         money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"originalPrice,omitempty"`
	Rating        float64      `json:"rating"`
	Reviews       int          `json:"reviews"`
	Image         string       `json:"image,omitempty"`
	Description   string       `json:"description"`
	InStock       bool         `json:"inStock"`
	Badge         string       `json:"badge,omitempty"`
}

// Resolver looks products up by id.
type Resolver interface {
	Get(id int) (Product, bool)
}

type SortOrder string

const (
	SortDefault   SortOrder = ""
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortName      SortOrder = "name"
	SortRating    SortOrder = "rating"
)

// Query narrows and orders a product listing. Zero values mean "no constraint".
type Query struct {
	Term     string
	Category string
	Price    *PriceRange
	Sort     SortOrder
}

// PriceRange is inclusive; a zero Max means open-ended.
type PriceRange struct {
	Min money.Amount
	Max money.Amount
}
