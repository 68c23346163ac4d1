// Package wishlist keeps an ordered set of product ids.
package wishlist

type Membership string

const (
	Added   Membership = "added"
	Removed Membership = "removed"
)

// Wishlist holds unique product ids in insertion order.
type Wishlist struct {
	ids []int
}

// New drops duplicate ids, keeping the first occurrence.
func New(ids ...int) *Wishlist {
	w := &Wishlist{}
	for _, id := range ids {
		if !w.Contains(id) {
			w.ids = append(w.ids, id)
		}
	}
	return w
}

func (w *Wishlist) index(id int) int {
	for i, v := range w.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (w *Wishlist) Contains(id int) bool {
	return w.index(id) >= 0
}

// Toggle removes id when present, otherwise appends it.
func (w *Wishlist) Toggle(id int) Membership {
	if w.Remove(id) {
		return Removed
	}
	w.ids = append(w.ids, id)
	return Added
}

func (w *Wishlist) Remove(id int) bool {
	i := w.index(id)
	if i < 0 {
		return false
	}
	w.ids = append(w.ids[:i], w.ids[i+1:]...)
	return true
}

func (w *Wishlist) IDs() []int {
	out := make([]int, len(w.ids))
	copy(out, w.ids)
	return out
}

func (w *Wishlist) Len() int {
	return len(w.ids)
}
