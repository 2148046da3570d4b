package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/example/sabouha-storefront/internal/api/middleware"
)

// requireReady rejects traffic until the initial load has finished.
func (h *Handlers) requireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.shop.Ready() {
			respondError(w, http.StatusServiceUnavailable, "store is still loading")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter wires the full route table.
func NewRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireReady)

		r.Get("/bootstrap", h.Bootstrap)

		r.Get("/products", h.GetCatalog)
		r.Get("/products/offers", h.GetOffers)
		r.Get("/products/featured", h.GetFeatured)
		r.Get("/products/{id}", h.GetProduct)
		r.Post("/products/{id}/reviews", h.AddReview)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddToCart)
		r.Put("/cart/items/{id}", h.UpdateCartQuantity)
		r.Delete("/cart/items/{id}", h.RemoveFromCart)

		r.Get("/wishlist", h.GetWishlist)
		r.Post("/wishlist/toggle", h.ToggleWishlist)

		r.Post("/checkout", h.Checkout)

		r.Post("/admin/login", h.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(h.tokens))
			r.Put("/admin/products", h.ReplaceProducts)
			r.Put("/admin/settings/hero", h.UpdateHero)
			r.Put("/admin/settings/appearance", h.UpdateAppearance)
			r.Put("/admin/settings/contact", h.UpdateContact)
			r.Put("/admin/settings/promo", h.UpdatePromo)
		})
	})

	return r
}
