package catalog

import (
	"fmt"
	"sort"
	"strings"

	"storefront/internal/money"
)

// Catalog is the immutable set of products for a session.
type Catalog struct {
	products []Product
	byID     map[int]int
}

// New validates products and builds a catalog preserving the given order.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidProductID, p.ID)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		if p.Price < 0 || p.OriginalPrice < 0 {
			return nil, fmt.Errorf("%w: product %d", ErrInvalidPrice, p.ID)
		}
		if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
			return nil, fmt.Errorf("%w: product %d original price below price", ErrInvalidPrice, p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("%w: product %d", ErrInvalidRating, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// MustNew panics on invalid fixtures.
func MustNew(products []Product) *Catalog {
	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Get(id int) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns a copy of every product in fixture order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		key := strings.ToLower(p.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p.Category)
	}
	return out
}

// Search matches term against name, category and description, case-insensitively.
func (c *Catalog) Search(term string) []Product {
	return c.Find(Query{Term: term})
}

// Find applies q to the catalog.
func (c *Catalog) Find(q Query) []Product {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	out := make([]Product, 0, len(c.products))

	for _, p := range c.products {
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.Price != nil && !q.Price.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out
}

func matchesTerm(p Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func sortProducts(products []Product, order SortOrder) {
	switch order {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}
}

// ParseSortOrder accepts the listing sort keys; empty means fixture order.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.TrimSpace(s)); o {
	case SortDefault, SortPriceLow, SortPriceHigh, SortName, SortRating:
		return o, nil
	default:
		return SortDefault, fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}

// ParsePriceRange reads "min-max" or "min+" (open-ended).
func ParsePriceRange(s string) (*PriceRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if strings.HasSuffix(s, "+") {
		min, err := money.Parse(strings.TrimSuffix(s, "+"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
		}
		return &PriceRange{Min: min}, nil
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}
	min, err := money.Parse(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}
	max, err := money.Parse(parts[1])
	if err != nil || max < min {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriceRange, s)
	}
	return &PriceRange{Min: min, Max: max}, nil
}

func (r PriceRange) Contains(price money.Amount) bool {
	if price < r.Min {
		return false
	}
	return r.Max == 0 || price <= r.Max
}
