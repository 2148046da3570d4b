// Package catalog derives the storefront's product views. Every function
// here is pure: the input slice is never mutated and the relative order of
// products is preserved.
package catalog

import (
	"strings"
	"time"

	"github.com/example/sabouha-storefront/internal/domain"
)

// RecencyWindow classifies a product as "new" for home-page display.
const RecencyWindow = 5 * 24 * time.Hour

// FeaturedDisplayLimit caps the home-featured section. The cap belongs to
// the presentation boundary; HomeFeaturedView itself returns the full
// matching set.
const FeaturedDisplayLimit = 8

// Filter is the shopper's current category/search selection.
type Filter struct {
	Category string
	Search   string
}

// Matches reports whether p satisfies the category and search predicates.
// The sentinel category (or an empty one) and an empty search text both
// mean "no filter"; search is a case-insensitive substring match on the
// product name.
func (f Filter) Matches(p domain.Product) bool {
	if f.Category != "" && f.Category != domain.CategoryAll && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// IsOffer is the sole discount detector: true iff the original price is
// present and strictly greater than the current price.
func IsOffer(p domain.Product) bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// CatalogView returns the non-offer products matching the filter.
func CatalogView(products []domain.Product, f Filter) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if IsOffer(p) {
			continue
		}
		if f.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// OffersView returns every discounted product, unfiltered.
func OffersView(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if IsOffer(p) {
			result = append(result, p)
		}
	}
	return result
}

// HomeFeaturedView returns the non-offer products that are either recently
// created (within RecencyWindow of now) or flagged featured, intersected
// with the filter.
func HomeFeaturedView(products []domain.Product, f Filter, now time.Time) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	cutoff := now.UnixMilli() - RecencyWindow.Milliseconds()
	for _, p := range products {
		if IsOffer(p) {
			continue
		}
		if (p.CreatedAt > cutoff || p.IsFeatured) && f.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}
