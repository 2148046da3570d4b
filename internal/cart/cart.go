// Package cart holds the pure state transitions for the shopping cart and
// the wishlist. Every operation returns a fresh slice and leaves the
// caller's slice untouched, so callers can rely on reference comparison
// for change detection.
package cart

import "github.com/example/sabouha-storefront/internal/domain"

// Items is an ordered cart collection with at most one entry per product ID.
type Items []domain.CartItem

// Add puts qty units of p into the cart. A repeat add for the same product
// increases the existing quantity; a quantity below 1 counts as 1.
func Add(items Items, p domain.Product, qty int) Items {
	if qty < 1 {
		qty = 1
	}
	next := make(Items, len(items), len(items)+1)
	copy(next, items)
	for i, item := range next {
		if item.ID == p.ID {
			next[i].CartQuantity = item.CartQuantity + qty
			return next
		}
	}
	return append(next, domain.CartItem{Product: p, CartQuantity: qty})
}

// SetQuantity sets the entry's quantity to max(1, qty). Driving an entry
// to zero goes through Remove, never through here.
func SetQuantity(items Items, productID string, qty int) Items {
	if qty < 1 {
		qty = 1
	}
	next := make(Items, len(items))
	copy(next, items)
	for i, item := range next {
		if item.ID == productID {
			next[i].CartQuantity = qty
		}
	}
	return next
}

// Remove drops the entry for productID. Removing an absent ID is a no-op.
func Remove(items Items, productID string) Items {
	next := make(Items, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// Count is the total number of units across all entries.
func Count(items Items) int {
	sum := 0
	for _, item := range items {
		sum += item.CartQuantity
	}
	return sum
}

// Total is the grand total: sum of price times quantity over all entries.
func Total(items Items) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Price * float64(item.CartQuantity)
	}
	return sum
}
