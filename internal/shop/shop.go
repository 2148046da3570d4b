// Package shop owns the storefront state: the catalog and settings records
// loaded at startup, the per-session carts and wishlists, and the
// fire-and-forget persistence that follows every mutation. All state
// transitions go through this one owner; views only read derived state and
// dispatch mutation intents.
package shop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/example/sabouha-storefront/internal/catalog"
	"github.com/example/sabouha-storefront/internal/domain"
	"github.com/example/sabouha-storefront/internal/messaging"
	"github.com/example/sabouha-storefront/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrProductNotFound = errors.New("shop: product not found")

// Shop is the single owner of storefront state. Reads take the read lock;
// every mutation applies a pure transition under the write lock and then
// publishes a persistence event, so callers never wait on storage.
type Shop struct {
	mu      sync.RWMutex
	ready   bool
	gateway store.Gateway
	kv      store.KV
	bus     EventBus.Bus
	orders  messaging.Publisher

	products   []domain.Product
	hero       domain.HeroSettings
	appearance domain.AppearanceSettings
	contact    domain.ContactSettings
	promo      domain.PromoSettings

	sessMu   sync.Mutex
	sessions map[string]*Session
}

// New wires a shop over its persistence gateway and local store. The
// orders publisher may be nil, in which case checkout stops at the
// summary/link hand-off.
func New(gateway store.Gateway, kv store.KV, orders messaging.Publisher) *Shop {
	s := &Shop{
		gateway:  gateway,
		kv:       kv,
		bus:      EventBus.New(),
		orders:   orders,
		sessions: make(map[string]*Session),
	}
	s.subscribePersisters()
	return s
}

// Ready reports whether the initial load has completed. The storefront is
// not interactive before that.
func (s *Shop) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Load runs the four initial bulk loads concurrently. Load never fails the
// startup: a failed or absent resource degrades to the compiled-in
// default, and a defaulted product list is persisted back as the new
// baseline.
func (s *Shop) Load(ctx context.Context) {
	var (
		wg         sync.WaitGroup
		products   []domain.Product
		hero       domain.HeroSettings
		appearance domain.AppearanceSettings
		contact    domain.ContactSettings
		seeded     bool
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		p, ok, err := s.gateway.GetProducts(ctx)
		if err != nil {
			zap.S().Warnf("load products failed, falling back to seed catalog: %v", err)
		}
		if err != nil || !ok || len(p) == 0 {
			products = domain.SeedProducts()
			seeded = true
			return
		}
		products = p
	}()
	go func() {
		defer wg.Done()
		h, ok, err := s.gateway.GetHero(ctx)
		if err != nil {
			zap.S().Warnf("load hero settings failed, using defaults: %v", err)
		}
		if err != nil || !ok {
			hero = domain.DefaultHero()
			return
		}
		hero = h
	}()
	go func() {
		defer wg.Done()
		a, ok, err := s.gateway.GetAppearance(ctx)
		if err != nil {
			zap.S().Warnf("load appearance failed, using defaults: %v", err)
		}
		if err != nil || !ok {
			appearance = domain.DefaultAppearance()
			return
		}
		appearance = a
	}()
	go func() {
		defer wg.Done()
		c, ok, err := s.gateway.GetContact(ctx)
		if err != nil {
			zap.S().Warnf("load contact failed, using defaults: %v", err)
		}
		if err != nil || !ok {
			contact = domain.DefaultContact()
			return
		}
		contact = c
	}()
	wg.Wait()

	promo := s.loadPromo()

	s.mu.Lock()
	s.products = products
	s.hero = hero
	s.appearance = appearance
	s.contact = contact
	s.promo = promo
	s.ready = true
	s.mu.Unlock()

	if seeded {
		// Re-baseline: the seed catalog becomes the persisted one.
		s.bus.Publish(topicProducts, snapshotProducts(products))
	}
	zap.S().Infow("storefront state loaded",
		"products", len(products), "seeded", seeded)
}

// loadPromo reads the promo record from the local store. A missing or
// corrupt record degrades to the default.
func (s *Shop) loadPromo() domain.PromoSettings {
	value, ok, err := s.kv.Get(store.PromoKey)
	if err != nil {
		zap.S().Warnf("load promo failed, using defaults: %v", err)
		return domain.DefaultPromo()
	}
	if !ok {
		return domain.DefaultPromo()
	}
	var promo domain.PromoSettings
	if err := json.UnmarshalFromString(value, &promo); err != nil {
		zap.S().Warnf("corrupt promo record, using defaults: %v", err)
		return domain.DefaultPromo()
	}
	return promo
}

// Flush blocks until all pending persistence events have been handled.
// Used on shutdown and in tests.
func (s *Shop) Flush() {
	s.bus.WaitAsync()
}

// ---- read side ----

// Products returns a copy of the full product collection.
func (s *Shop) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

// Product looks a single product up by ID.
func (s *Shop) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FindProduct(s.products, id)
}

// CatalogView derives the filtered, non-discounted catalog.
func (s *Shop) CatalogView(f catalog.Filter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.CatalogView(s.products, f)
}

// OffersView derives the discounted products.
func (s *Shop) OffersView() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.OffersView(s.products)
}

// HomeFeaturedView derives the home-page selection (recent or featured).
// The result is unbounded; display capping happens at the API boundary.
func (s *Shop) HomeFeaturedView(f catalog.Filter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.HomeFeaturedView(s.products, f, time.Now())
}

func (s *Shop) Hero() domain.HeroSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hero
}

func (s *Shop) Appearance() domain.AppearanceSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appearance
}

func (s *Shop) Contact() domain.ContactSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contact
}

func (s *Shop) Promo() domain.PromoSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.promo
}

// ReviewCount is the total number of reviews across the catalog.
func (s *Shop) ReviewCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, p := range s.products {
		count += len(p.Reviews)
	}
	return count
}

// ---- write side (administration + reviews) ----

// ReplaceProducts swaps in a new catalog, the administration dashboard's
// whole-list save. Removal happens by omission.
func (s *Shop) ReplaceProducts(products []domain.Product) {
	next := append([]domain.Product(nil), products...)
	s.mu.Lock()
	s.products = next
	s.mu.Unlock()
	s.bus.Publish(topicProducts, snapshotProducts(next))
}

// AddReview prepends a review to the product's sequence (most recent
// first) and persists the catalog.
func (s *Shop) AddReview(productID string, review domain.Review) (domain.Review, error) {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.Date == "" {
		review.Date = time.Now().Format("2006-01-02")
	}

	s.mu.Lock()
	idx := -1
	for i, p := range s.products {
		if p.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.Review{}, ErrProductNotFound
	}
	p := s.products[idx]
	reviews := make([]domain.Review, 0, len(p.Reviews)+1)
	reviews = append(reviews, review)
	reviews = append(reviews, p.Reviews...)
	p.Reviews = reviews
	s.products[idx] = p
	snapshot := snapshotProducts(s.products)
	s.mu.Unlock()

	s.bus.Publish(topicProducts, snapshot)
	return review, nil
}

func (s *Shop) UpdateHero(hero domain.HeroSettings) {
	s.mu.Lock()
	s.hero = hero
	s.mu.Unlock()
	s.bus.Publish(topicHero, hero)
}

func (s *Shop) UpdateAppearance(appearance domain.AppearanceSettings) {
	s.mu.Lock()
	s.appearance = appearance
	s.mu.Unlock()
	s.bus.Publish(topicAppearance, appearance)
}

func (s *Shop) UpdateContact(contact domain.ContactSettings) {
	s.mu.Lock()
	s.contact = contact
	s.mu.Unlock()
	s.bus.Publish(topicContact, contact)
}

func (s *Shop) UpdatePromo(promo domain.PromoSettings) {
	s.mu.Lock()
	s.promo = promo
	s.mu.Unlock()
	s.bus.Publish(topicPromo, promo)
}

func snapshotProducts(products []domain.Product) []domain.Product {
	return append([]domain.Product(nil), products...)
}
