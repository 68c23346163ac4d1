package order

// History lists orders most recent first.
type History struct {
	orders []Order
}

func NewHistory(orders ...Order) *History {
	h := &History{orders: make([]Order, 0, len(orders))}
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if o.ID == "" || seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		h.orders = append(h.orders, o)
	}
	return h
}

func (h *History) Prepend(o Order) {
	h.orders = append([]Order{o}, h.orders...)
}

// All returns a copy, most recent first.
func (h *History) All() []Order {
	out := make([]Order, len(h.orders))
	copy(out, h.orders)
	return out
}

func (h *History) Get(id string) (Order, bool) {
	for _, o := range h.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (h *History) Len() int {
	return len(h.orders)
}
