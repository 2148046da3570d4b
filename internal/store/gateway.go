// Package store is the persistence boundary: a named-resource gateway for
// the catalog and settings records, and a durable key-value store for
// client state snapshots. Absence is reported as ok=false, distinct from
// an error; callers decide the fallback.
package store

import (
	"context"

	"github.com/example/sabouha-storefront/internal/domain"
)

// Named resources held by the gateway.
const (
	ResourceProducts   = "products"
	ResourceHero       = "hero"
	ResourceAppearance = "appearance"
	ResourceContact    = "contact"
)

// Key-value store keys. Cart snapshots are scoped per session under the
// fixed prefix; the promo record lives under the fixed key.
const (
	CartKeyPrefix = "sabouha_cart_v1"
	PromoKey      = "sabouha_promo_v1"
)

// CartKey returns the KV key for a session's cart snapshot.
func CartKey(sessionID string) string {
	return CartKeyPrefix + ":" + sessionID
}

// Gateway exposes whole-record load/save per named resource. There is no
// partial-field update: callers merge locally and save the full record.
type Gateway interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool, error)
	SaveProducts(ctx context.Context, products []domain.Product) error

	GetHero(ctx context.Context) (domain.HeroSettings, bool, error)
	SaveHero(ctx context.Context, hero domain.HeroSettings) error

	GetAppearance(ctx context.Context) (domain.AppearanceSettings, bool, error)
	SaveAppearance(ctx context.Context, appearance domain.AppearanceSettings) error

	GetContact(ctx context.Context) (domain.ContactSettings, bool, error)
	SaveContact(ctx context.Context, contact domain.ContactSettings) error
}

// KV is the durable local key-value store used for serialized client
// state (cart snapshots, promo banner record).
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
