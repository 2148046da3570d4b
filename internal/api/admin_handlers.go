package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/example/sabouha-storefront/internal/auth"
	"github.com/example/sabouha-storefront/internal/domain"
)

// ---- login ----

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login exchanges the admin password for a short-lived token. The token
// is also set as a cookie so the browser admin panel works without
// handling headers.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	if !auth.CheckPassword(req.Password, h.adminHash) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt, err := h.tokens.GenerateAdminToken()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "admin_token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}

// ---- catalog administration ----

type productPayload struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         float64         `json:"price" validate:"gt=0"`
	OriginalPrice *float64        `json:"originalPrice"`
	Category      string          `json:"category" validate:"required"`
	Image         string          `json:"image"`
	CreatedAt     int64           `json:"createdAt"`
	IsNew         bool            `json:"isNew"`
	IsFeatured    bool            `json:"isFeatured"`
	Rating        float64         `json:"rating"`
	Reviews       []domain.Review `json:"reviews"`
	Colors        []string        `json:"colors"`
}

func (p productPayload) toDomain() domain.Product {
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Image:         p.Image,
		CreatedAt:     p.CreatedAt,
		IsNew:         p.IsNew,
		IsFeatured:    p.IsFeatured,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Colors:        p.Colors,
	}
}

// ReplaceProducts swaps the whole catalog for the submitted list.
// Products absent from the list are gone after the save.
func (h *Handlers) ReplaceProducts(w http.ResponseWriter, r *http.Request) {
	var payloads []productPayload
	if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	products := make([]domain.Product, 0, len(payloads))
	now := time.Now().UnixMilli()
	for _, p := range payloads {
		if err := h.validate.Struct(p); err != nil {
			respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
			return
		}
		if !domain.ValidCategory(p.Category) || p.Category == domain.CategoryAll {
			respondError(w, http.StatusBadRequest, "unknown category: "+p.Category)
			return
		}
		product := p.toDomain()
		if product.CreatedAt == 0 {
			product.CreatedAt = now
		}
		products = append(products, product)
	}

	h.shop.ReplaceProducts(products)
	respondJSON(w, http.StatusOK, h.shop.Products())
}

// ---- settings administration ----

type heroPayload struct {
	WelcomeText    string  `json:"welcomeText"`
	Title          string  `json:"title" validate:"required"`
	Subtitle       string  `json:"subtitle"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	Layout         string  `json:"layout" validate:"required,oneof=background split"`
	TextAlignment  string  `json:"textAlignment" validate:"required,oneof=right center left"`
	OverlayOpacity float64 `json:"overlayOpacity" validate:"gte=0,lte=1"`
}

func (h *Handlers) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var payload heroPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	hero := domain.HeroSettings{
		WelcomeText:    payload.WelcomeText,
		Title:          payload.Title,
		Subtitle:       payload.Subtitle,
		Description:    payload.Description,
		Image:          payload.Image,
		Layout:         payload.Layout,
		TextAlignment:  payload.TextAlignment,
		OverlayOpacity: payload.OverlayOpacity,
	}
	h.shop.UpdateHero(hero)
	respondJSON(w, http.StatusOK, hero)
}

type appearancePayload struct {
	SiteBackground    string  `json:"siteBackground"`
	FeaturedSectionBg string  `json:"featuredSectionBg"`
	ShopPageBg        string  `json:"shopPageBg"`
	GlassOpacity      float64 `json:"glassOpacity" validate:"gte=0,lte=1"`
	EnableAnimatedBg  bool    `json:"enableAnimatedBg"`
	SiteLogo          string  `json:"siteLogo"`
	SiteName          string  `json:"siteName" validate:"required"`
}

func (h *Handlers) UpdateAppearance(w http.ResponseWriter, r *http.Request) {
	var payload appearancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	appearance := domain.AppearanceSettings{
		SiteBackground:    payload.SiteBackground,
		FeaturedSectionBg: payload.FeaturedSectionBg,
		ShopPageBg:        payload.ShopPageBg,
		GlassOpacity:      payload.GlassOpacity,
		EnableAnimatedBg:  payload.EnableAnimatedBg,
		SiteLogo:          payload.SiteLogo,
		SiteName:          payload.SiteName,
	}
	h.shop.UpdateAppearance(appearance)
	respondJSON(w, http.StatusOK, appearance)
}

type contactPayload struct {
	Address   string `json:"address"`
	Phone     string `json:"phone" validate:"required"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Email     string `json:"email" validate:"omitempty,email"`
}

func (h *Handlers) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var payload contactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	contact := domain.ContactSettings{
		Address:   payload.Address,
		Phone:     payload.Phone,
		Facebook:  payload.Facebook,
		Instagram: payload.Instagram,
		Email:     payload.Email,
	}
	h.shop.UpdateContact(contact)
	respondJSON(w, http.StatusOK, contact)
}

type promoPayload struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
	PromoImage  string `json:"promoImage"`
	ProductID   string `json:"productId"`
}

func (h *Handlers) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	var payload promoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	promo := domain.PromoSettings{
		Enabled:     payload.Enabled,
		Title:       payload.Title,
		Subtitle:    payload.Subtitle,
		Description: payload.Description,
		Badge:       payload.Badge,
		PromoImage:  payload.PromoImage,
		ProductID:   payload.ProductID,
	}
	h.shop.UpdatePromo(promo)
	respondJSON(w, http.StatusOK, promo)
}
