// Package api is the HTTP surface of the storefront: shopper reads and
// cart/wishlist/checkout intents, plus the administration write
// endpoints gated by the admin token.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/example/sabouha-storefront/internal/auth"
	"github.com/example/sabouha-storefront/internal/cart"
	"github.com/example/sabouha-storefront/internal/catalog"
	"github.com/example/sabouha-storefront/internal/domain"
	"github.com/example/sabouha-storefront/internal/shop"
)

const sessionCookie = "sabouha_session"

type Handlers struct {
	shop      *shop.Shop
	tokens    *auth.TokenService
	adminHash string
	validate  *validator.Validate
}

func NewHandlers(s *shop.Shop, tokens *auth.TokenService, adminPasswordHash string) *Handlers {
	return &Handlers{
		shop:      s,
		tokens:    tokens,
		adminHash: adminPasswordHash,
		validate:  validator.New(),
	}
}

// ---- helpers ----

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			zap.S().Errorf("failed to encode JSON response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// ModeFromRequest resolves the application mode from the load-time query
// parameters; both accepted flag names enter administration.
func ModeFromRequest(r *http.Request) domain.Mode {
	q := r.URL.Query()
	if cast.ToBool(q.Get("admin")) || cast.ToBool(q.Get("manage")) {
		return domain.ModeAdministration
	}
	return domain.ModeShopping
}

func filterFromRequest(r *http.Request) catalog.Filter {
	q := r.URL.Query()
	return catalog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
	}
}

// session resolves the shopper session from the cookie, minting one when
// absent.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) *shop.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return h.shop.Session(cookie.Value)
	}
	id := shop.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return h.shop.Session(id)
}

type cartResponse struct {
	Items cart.Items `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

func newCartResponse(items cart.Items) cartResponse {
	return cartResponse{Items: items, Count: cart.Count(items), Total: cart.Total(items)}
}

// ---- bootstrap ----

type bootstrapResponse struct {
	Mode        domain.Mode               `json:"mode"`
	Categories  []string                  `json:"categories"`
	Products    []domain.Product          `json:"products"`
	Hero        domain.HeroSettings       `json:"heroSettings"`
	Appearance  domain.AppearanceSettings `json:"appearanceSettings"`
	Contact     domain.ContactSettings    `json:"contactSettings"`
	Promo       domain.PromoSettings      `json:"promoSettings"`
	Cart        cartResponse              `json:"cart"`
	Wishlist    cart.Wishlist             `json:"wishlist"`
	ReviewCount int                       `json:"reviewCount"`
}

// Bootstrap returns everything the client needs to become interactive,
// mirroring the app's initial load.
func (h *Handlers) Bootstrap(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	respondJSON(w, http.StatusOK, bootstrapResponse{
		Mode:        ModeFromRequest(r),
		Categories:  domain.Categories,
		Products:    h.shop.Products(),
		Hero:        h.shop.Hero(),
		Appearance:  h.shop.Appearance(),
		Contact:     h.shop.Contact(),
		Promo:       h.shop.Promo(),
		Cart:        newCartResponse(sess.Cart()),
		Wishlist:    sess.Wishlist(),
		ReviewCount: h.shop.ReviewCount(),
	})
}

// ---- catalog ----

func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.shop.CatalogView(filterFromRequest(r)))
}

func (h *Handlers) GetOffers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.shop.OffersView())
}

// GetFeatured returns the home-page selection, capped for display.
func (h *Handlers) GetFeatured(w http.ResponseWriter, r *http.Request) {
	featured := h.shop.HomeFeaturedView(filterFromRequest(r))
	if len(featured) > catalog.FeaturedDisplayLimit {
		featured = featured[:catalog.FeaturedDisplayLimit]
	}
	respondJSON(w, http.StatusOK, featured)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := h.shop.Product(id)
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// ---- reviews ----

type reviewInput struct {
	User    string  `json:"user" validate:"required,max=120"`
	Comment string  `json:"comment"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
}

func (h *Handlers) AddReview(w http.ResponseWriter, r *http.Request) {
	var input reviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	review, err := h.shop.AddReview(chi.URLParam(r, "id"), domain.Review{
		User:    input.User,
		Comment: input.Comment,
		Rating:  input.Rating,
		Date:    input.Date,
	})
	if err != nil {
		if errors.Is(err, shop.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to add review")
		return
	}
	respondJSON(w, http.StatusCreated, review)
}

// ---- cart ----

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	respondJSON(w, http.StatusOK, newCartResponse(sess.Cart()))
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	sess := h.session(w, r)
	items, err := sess.AddToCart(req.ProductID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(items))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handlers) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	sess := h.session(w, r)
	items := sess.SetQuantity(chi.URLParam(r, "id"), req.Quantity)
	respondJSON(w, http.StatusOK, newCartResponse(items))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	items := sess.RemoveFromCart(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, newCartResponse(items))
}

// ---- wishlist ----

func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	respondJSON(w, http.StatusOK, sess.Wishlist())
}

type toggleWishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *Handlers) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req toggleWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	sess := h.session(w, r)
	wishlist, err := sess.ToggleWishlist(req.ProductID)
	if err != nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, wishlist)
}

// ---- checkout ----

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	order, err := h.shop.Checkout(r.Context(), sess)
	if err != nil {
		if errors.Is(err, shop.ErrEmptyCart) {
			respondError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		respondError(w, http.StatusInternalServerError, "checkout failed")
		return
	}
	respondJSON(w, http.StatusCreated, order)
}
