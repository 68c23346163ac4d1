package cart

import (
	"storefront/internal/catalog"
	"storefront/internal/money"
)

// Cart keeps at most one line per product in insertion order.
// It is not safe for concurrent use; the owning store serialises access.
type Cart struct {
	lines []Line
}

func New(lines ...Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		c.merge(l)
	}
	return c
}

// merge folds a line in, combining duplicates and dropping non-positive quantities.
func (c *Cart) merge(l Line) {
	if l.Quantity < 1 {
		return
	}
	if i := c.index(l.ProductID); i >= 0 {
		c.lines[i].Quantity += l.Quantity
		return
	}
	c.lines = append(c.lines, l)
}

func (c *Cart) index(productID int) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add increments the product's line or inserts it with quantity 1.
func (c *Cart) Add(productID int) Line {
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity++
		return c.lines[i]
	}
	l := Line{ProductID: productID, Quantity: 1}
	c.lines = append(c.lines, l)
	return l
}

// Remove deletes the product's line. Returns false when there was none.
func (c *Cart) Remove(productID int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity adjusts an existing line; quantity <= 0 removes it.
// Products not in the cart are left alone. Reports whether the cart changed.
func (c *Cart) SetQuantity(productID, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity = quantity
	return true
}

func (c *Cart) Get(productID int) (Line, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the sum of quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal prices every line at the resolver's current price.
// Lines whose product cannot be resolved are skipped.
func (c *Cart) Subtotal(products catalog.Resolver) money.Amount {
	total := money.Zero
	for _, l := range c.lines {
		p, ok := products.Get(l.ProductID)
		if !ok {
			continue
		}
		total = total.Add(p.Price.Mul(l.Quantity))
	}
	return total
}

// Views joins resolvable lines to their products.
func (c *Cart) Views(products catalog.Resolver) []View {
	views := make([]View, 0, len(c.lines))
	for _, l := range c.lines {
		p, ok := products.Get(l.ProductID)
		if !ok {
			continue
		}
		views = append(views, View{
			Product:   p,
			Quantity:  l.Quantity,
			LineTotal: p.Price.Mul(l.Quantity),
		})
	}
	return views
}
