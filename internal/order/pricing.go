package order

import "storefront/internal/money"

const (
	DefaultFreeShippingThreshold money.Amount = 5000
	DefaultFlatShippingFee       money.Amount = 599
)

// ShippingPolicy charges a flat fee unless the subtotal exceeds the threshold.
type ShippingPolicy struct {
	FreeThreshold money.Amount
	FlatFee       money.Amount
}

func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeThreshold: DefaultFreeShippingThreshold,
		FlatFee:       DefaultFlatShippingFee,
	}
}

// Cost is zero strictly above the threshold.
func (p ShippingPolicy) Cost(subtotal money.Amount) money.Amount {
	if subtotal > p.FreeThreshold {
		return money.Zero
	}
	return p.FlatFee
}

func (p ShippingPolicy) Total(subtotal money.Amount) money.Amount {
	return subtotal.Add(p.Cost(subtotal))
}
