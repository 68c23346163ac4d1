package order

import (
	"time"

	"storefront/internal/money"
)

type Status string

// Orders are recorded as pending; fulfilment happens outside the store.
const StatusPending Status = "pending"

// Order is immutable once built; prices are captured at placement time.
type Order struct {
	ID       string       `json:"id"`
	Items    []Item       `json:"items"`
	Subtotal money.Amount `json:"subtotal"`
	Shipping money.Amount `json:"shipping"`
	Total    money.Amount `json:"total"`
	PlacedAt time.Time    `json:"date"`
	Status   Status       `json:"status"`
}

type Item struct {
	ProductID int          `json:"id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	Price     money.Amount `json:"price"`
}

func (i Item) LineTotal() money.Amount {
	return i.Price.Mul(i.Quantity)
}

// ItemCount is the sum of item quantities.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
