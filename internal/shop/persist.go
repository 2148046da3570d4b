package shop

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/sabouha-storefront/internal/domain"
	"github.com/example/sabouha-storefront/internal/store"
)

// Persistence event topics. Mutations publish a snapshot and return
// immediately; the subscribers below do the actual writes. A failed write
// is logged and the in-memory state stands; no rollback, no retry.
const (
	topicProducts   = "persist.products"
	topicHero       = "persist.hero"
	topicAppearance = "persist.appearance"
	topicContact    = "persist.contact"
	topicPromo      = "persist.promo"
	topicCart       = "persist.cart"
)

func (s *Shop) subscribePersisters() {
	s.bus.SubscribeAsync(topicProducts, s.persistProducts, false)
	s.bus.SubscribeAsync(topicHero, s.persistHero, false)
	s.bus.SubscribeAsync(topicAppearance, s.persistAppearance, false)
	s.bus.SubscribeAsync(topicContact, s.persistContact, false)
	s.bus.SubscribeAsync(topicPromo, s.persistPromo, false)
	s.bus.SubscribeAsync(topicCart, s.persistCartSnapshot, false)
}

func (s *Shop) persistProducts(products []domain.Product) {
	if err := s.gateway.SaveProducts(context.Background(), products); err != nil {
		zap.S().Errorf("persist products failed: %v", err)
	}
}

func (s *Shop) persistHero(hero domain.HeroSettings) {
	if err := s.gateway.SaveHero(context.Background(), hero); err != nil {
		zap.S().Errorf("persist hero failed: %v", err)
	}
}

func (s *Shop) persistAppearance(appearance domain.AppearanceSettings) {
	if err := s.gateway.SaveAppearance(context.Background(), appearance); err != nil {
		zap.S().Errorf("persist appearance failed: %v", err)
	}
}

func (s *Shop) persistContact(contact domain.ContactSettings) {
	if err := s.gateway.SaveContact(context.Background(), contact); err != nil {
		zap.S().Errorf("persist contact failed: %v", err)
	}
}

func (s *Shop) persistPromo(promo domain.PromoSettings) {
	value, err := json.MarshalToString(promo)
	if err != nil {
		zap.S().Errorf("encode promo failed: %v", err)
		return
	}
	if err := s.kv.Set(store.PromoKey, value); err != nil {
		zap.S().Errorf("persist promo failed: %v", err)
	}
}

func (s *Shop) persistCartSnapshot(key, snapshot string) {
	if err := s.kv.Set(key, snapshot); err != nil {
		zap.S().Errorf("persist cart snapshot %s failed: %v", key, err)
	}
}
