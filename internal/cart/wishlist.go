package cart

import "github.com/example/sabouha-storefront/internal/domain"

// Wishlist is a set-like collection keyed by product ID, holding full
// product copies in insertion order.
type Wishlist []domain.Product

// Contains reports whether the product ID is wishlisted.
func (w Wishlist) Contains(productID string) bool {
	for _, p := range w {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Toggle removes p when present and appends it otherwise. Applying the
// toggle twice returns the original wishlist.
func Toggle(w Wishlist, p domain.Product) Wishlist {
	if w.Contains(p.ID) {
		next := make(Wishlist, 0, len(w))
		for _, entry := range w {
			if entry.ID != p.ID {
				next = append(next, entry)
			}
		}
		return next
	}
	next := make(Wishlist, len(w), len(w)+1)
	copy(next, w)
	return append(next, p)
}
