package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sabouha-storefront/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func testProducts(now time.Time) []domain.Product {
	old := now.Add(-30 * 24 * time.Hour).UnixMilli()
	fresh := now.Add(-time.Hour).UnixMilli()
	return []domain.Product{
		{ID: "1", Name: "سيروم فيتامين سي", Category: "عناية بالبشرة", Price: 180, OriginalPrice: ptr(220), CreatedAt: fresh, IsFeatured: true},
		{ID: "2", Name: "أحمر شفاه كلاسيك", Category: "مكياج", Price: 95, CreatedAt: fresh},
		{ID: "3", Name: "عطر الورد الدمشقي", Category: "عطور", Price: 250, OriginalPrice: ptr(320), CreatedAt: old},
		{ID: "4", Name: "ماسك الشعر بالأرجان", Category: "عناية بالشعر", Price: 120, CreatedAt: old, IsFeatured: true},
		{ID: "5", Name: "كريم العين المجدد", Category: "عناية بالبشرة", Price: 145, CreatedAt: old},
	}
}

// ============================================
// IsOffer Tests
// ============================================

func TestIsOffer(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		origin  *float64
		isOffer bool
	}{
		{"discounted", 180, ptr(220), true},
		{"no original price", 95, nil, false},
		{"original equals price", 100, ptr(100), false},
		{"original below price", 100, ptr(80), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{Price: tt.price, OriginalPrice: tt.origin}
			assert.Equal(t, tt.isOffer, IsOffer(p))
		})
	}
}

// ============================================
// CatalogView Tests
// ============================================

func TestCatalogView_ExcludesOffers(t *testing.T) {
	now := time.Now()
	view := CatalogView(testProducts(now), Filter{})

	require.Len(t, view, 3)
	for _, p := range view {
		assert.False(t, IsOffer(p))
	}
	// Stable filter: input order preserved.
	assert.Equal(t, "2", view[0].ID)
	assert.Equal(t, "4", view[1].ID)
	assert.Equal(t, "5", view[2].ID)
}

func TestCatalogView_CategoryFilter(t *testing.T) {
	now := time.Now()

	view := CatalogView(testProducts(now), Filter{Category: "عناية بالبشرة"})
	require.Len(t, view, 1)
	assert.Equal(t, "5", view[0].ID)

	// Sentinel and empty category both mean "all".
	assert.Len(t, CatalogView(testProducts(now), Filter{Category: domain.CategoryAll}), 3)
	assert.Len(t, CatalogView(testProducts(now), Filter{Category: ""}), 3)
}

func TestCatalogView_Search(t *testing.T) {
	now := time.Now()
	products := testProducts(now)
	products = append(products, domain.Product{ID: "6", Name: "Vitamin C Serum", Category: "عناية بالبشرة", Price: 70, CreatedAt: now.UnixMilli()})

	view := CatalogView(products, Filter{Search: "vitamin"})
	require.Len(t, view, 1)
	assert.Equal(t, "6", view[0].ID)

	view = CatalogView(products, Filter{Search: "الشعر"})
	require.Len(t, view, 1)
	assert.Equal(t, "4", view[0].ID)

	// Empty search means no filter.
	assert.Len(t, CatalogView(products, Filter{Search: ""}), 4)
}

func TestCatalogView_EmptyInput(t *testing.T) {
	assert.Empty(t, CatalogView(nil, Filter{}))
	assert.Empty(t, OffersView(nil))
	assert.Empty(t, HomeFeaturedView(nil, Filter{}, time.Now()))
}

func TestCatalogView_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	products := testProducts(now)
	before := make([]domain.Product, len(products))
	copy(before, products)

	CatalogView(products, Filter{Category: "مكياج", Search: "أحمر"})
	OffersView(products)
	HomeFeaturedView(products, Filter{}, now)

	assert.Equal(t, before, products)
}

// ============================================
// OffersView Tests
// ============================================

func TestOffersView(t *testing.T) {
	now := time.Now()
	view := OffersView(testProducts(now))

	require.Len(t, view, 2)
	assert.Equal(t, "1", view[0].ID)
	assert.Equal(t, "3", view[1].ID)
}

func TestOffersAndCatalogPartitionProducts(t *testing.T) {
	now := time.Now()
	products := testProducts(now)

	offers := OffersView(products)
	rest := CatalogView(products, Filter{Category: domain.CategoryAll, Search: ""})

	assert.Equal(t, len(products), len(offers)+len(rest))
	seen := map[string]bool{}
	for _, p := range append(offers, rest...) {
		assert.False(t, seen[p.ID], "product %s appears in both views", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, len(products))
}

// ============================================
// HomeFeaturedView Tests
// ============================================

func TestHomeFeaturedView_RecentOrFeatured(t *testing.T) {
	now := time.Now()
	view := HomeFeaturedView(testProducts(now), Filter{Category: domain.CategoryAll, Search: ""}, now)

	// "2" is recent, "4" is featured, "5" is neither; offers never show.
	require.Len(t, view, 2)
	assert.Equal(t, "2", view[0].ID)
	assert.Equal(t, "4", view[1].ID)
}

func TestHomeFeaturedView_IntersectsWithFilter(t *testing.T) {
	now := time.Now()

	view := HomeFeaturedView(testProducts(now), Filter{Category: "عناية بالشعر"}, now)
	require.Len(t, view, 1)
	assert.Equal(t, "4", view[0].ID)

	view = HomeFeaturedView(testProducts(now), Filter{Search: "لا يوجد"}, now)
	assert.Empty(t, view)
}

func TestHomeFeaturedView_RecencyBoundary(t *testing.T) {
	now := time.Now()
	products := []domain.Product{
		{ID: "inside", Name: "a", Price: 10, CreatedAt: now.Add(-RecencyWindow + time.Minute).UnixMilli()},
		{ID: "outside", Name: "b", Price: 10, CreatedAt: now.Add(-RecencyWindow - time.Minute).UnixMilli()},
	}

	view := HomeFeaturedView(products, Filter{}, now)
	require.Len(t, view, 1)
	assert.Equal(t, "inside", view[0].ID)
}
