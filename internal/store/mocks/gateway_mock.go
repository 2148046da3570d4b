// Package mocks provides in-memory Gateway and KV implementations for
// tests, with optional error injection.
package mocks

import (
	"context"
	"sync"

	"github.com/example/sabouha-storefront/internal/domain"
)

// MemGateway is an in-memory store.Gateway. Set FailLoads / FailSaves to
// simulate a broken backend; SaveCalls records every save by resource name.
type MemGateway struct {
	mu sync.Mutex

	Products      []domain.Product
	HasProducts   bool
	Hero          domain.HeroSettings
	HasHero       bool
	Appearance    domain.AppearanceSettings
	HasAppearance bool
	Contact       domain.ContactSettings
	HasContact    bool

	FailLoads bool
	FailSaves bool
	LoadErr   error
	SaveErr   error

	SaveCalls []string
}

func NewMemGateway() *MemGateway {
	return &MemGateway{}
}

func (g *MemGateway) loadErr() error {
	if g.LoadErr != nil {
		return g.LoadErr
	}
	return errBackendDown
}

func (g *MemGateway) saveErr() error {
	if g.SaveErr != nil {
		return g.SaveErr
	}
	return errBackendDown
}

func (g *MemGateway) recordSave(resource string) {
	g.SaveCalls = append(g.SaveCalls, resource)
}

// SavedResources returns a copy of the recorded save calls.
func (g *MemGateway) SavedResources() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.SaveCalls...)
}

func (g *MemGateway) GetProducts(ctx context.Context) ([]domain.Product, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoads {
		return nil, false, g.loadErr()
	}
	return append([]domain.Product(nil), g.Products...), g.HasProducts, nil
}

func (g *MemGateway) SaveProducts(ctx context.Context, products []domain.Product) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSaves {
		return g.saveErr()
	}
	g.Products = append([]domain.Product(nil), products...)
	g.HasProducts = true
	g.recordSave("products")
	return nil
}

func (g *MemGateway) GetHero(ctx context.Context) (domain.HeroSettings, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoads {
		return domain.HeroSettings{}, false, g.loadErr()
	}
	return g.Hero, g.HasHero, nil
}

func (g *MemGateway) SaveHero(ctx context.Context, hero domain.HeroSettings) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSaves {
		return g.saveErr()
	}
	g.Hero = hero
	g.HasHero = true
	g.recordSave("hero")
	return nil
}

func (g *MemGateway) GetAppearance(ctx context.Context) (domain.AppearanceSettings, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoads {
		return domain.AppearanceSettings{}, false, g.loadErr()
	}
	return g.Appearance, g.HasAppearance, nil
}

func (g *MemGateway) SaveAppearance(ctx context.Context, appearance domain.AppearanceSettings) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSaves {
		return g.saveErr()
	}
	g.Appearance = appearance
	g.HasAppearance = true
	g.recordSave("appearance")
	return nil
}

func (g *MemGateway) GetContact(ctx context.Context) (domain.ContactSettings, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoads {
		return domain.ContactSettings{}, false, g.loadErr()
	}
	return g.Contact, g.HasContact, nil
}

func (g *MemGateway) SaveContact(ctx context.Context, contact domain.ContactSettings) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSaves {
		return g.saveErr()
	}
	g.Contact = contact
	g.HasContact = true
	g.recordSave("contact")
	return nil
}
