package order

import (
	"time"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/money"
)

// Build snapshots the lines at the catalog's current prices into a
// pending order. Unresolvable lines are left out.
func Build(id string, lines []cart.Line, products catalog.Resolver, policy ShippingPolicy, placedAt time.Time) (*Order, error) {
	items := make([]Item, 0, len(lines))
	subtotal := money.Zero

	for _, l := range lines {
		p, ok := products.Get(l.ProductID)
		if !ok || l.Quantity < 1 {
			continue
		}
		item := Item{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  l.Quantity,
			Price:     p.Price,
		}
		subtotal = subtotal.Add(item.LineTotal())
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	shipping := policy.Cost(subtotal)
	return &Order{
		ID:       id,
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
		PlacedAt: placedAt,
		Status:   StatusPending,
	}, nil
}
