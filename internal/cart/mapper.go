package cart

import "storefront/internal/catalog"

// Record is the persisted cart entry: the product snapshot flattened
// alongside its quantity.
type Record struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// ToRecords snapshots product fields next to each line. Unresolvable
// lines keep only their id and quantity.
func ToRecords(lines []Line, products catalog.Resolver) []Record {
	records := make([]Record, 0, len(lines))
	for _, l := range lines {
		p, ok := products.Get(l.ProductID)
		if !ok {
			p = catalog.Product{ID: l.ProductID}
		}
		records = append(records, Record{Product: p, Quantity: l.Quantity})
	}
	return records
}

// FromRecords rebuilds lines, ignoring the snapshot fields.
func FromRecords(records []Record) []Line {
	lines := make([]Line, 0, len(records))
	for _, r := range records {
		lines = append(lines, Line{ProductID: r.ID, Quantity: r.Quantity})
	}
	return lines
}
