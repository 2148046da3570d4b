package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sabouha-storefront/internal/domain"
)

func adminToken(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", loginRequest{Password: testAdminPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_token" {
			return c
		}
	}
	t.Fatal("no admin token cookie set")
	return nil
}

func TestLogin(t *testing.T) {
	router, _, _ := newTestServer(t, apiTestProducts())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", loginRequest{Password: testAdminPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[loginResponse](t, rec)
	assert.NotEmpty(t, body.Token)
	assert.False(t, body.ExpiresAt.IsZero())
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _, _ := newTestServer(t, apiTestProducts())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", loginRequest{Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _, _ := newTestServer(t, apiTestProducts())

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/promo", promoPayload{Enabled: true})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_BearerHeaderAccepted(t *testing.T) {
	router, _, _ := newTestServer(t, apiTestProducts())
	rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", loginRequest{Password: testAdminPassword})
	token := decodeBody[loginResponse](t, rec).Token

	req := doJSONRequest(t, http.MethodPut, "/api/v1/admin/settings/promo", promoPayload{Enabled: true})
	req.Header.Set("Authorization", "Bearer "+token)
	rec = serve(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReplaceProducts(t *testing.T) {
	router, s, gw := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/products", []productPayload{
		{ID: "10", Name: "كريم يدين", Category: "عناية بالبشرة", Price: 45},
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The submitted list is the catalog now; removal happens by omission.
	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "10", products[0].ID)
	assert.NotZero(t, products[0].CreatedAt)

	s.Flush()
	assert.Contains(t, gw.SavedResources(), "products")
}

func TestReplaceProducts_RejectsBadInput(t *testing.T) {
	router, s, _ := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	cases := []struct {
		name    string
		payload []productPayload
	}{
		{"zero price", []productPayload{{ID: "10", Name: "كريم", Category: "مكياج", Price: 0}}},
		{"unknown category", []productPayload{{ID: "10", Name: "كريم", Category: "خضروات", Price: 10}}},
		{"sentinel category", []productPayload{{ID: "10", Name: "كريم", Category: domain.CategoryAll, Price: 10}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/products", tc.payload, cookie)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// Catalog untouched after rejected saves.
	assert.Len(t, s.Products(), 3)
}

func TestUpdateHero(t *testing.T) {
	router, s, gw := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/hero", heroPayload{
		Title:          "بوتيك صبوحة",
		Layout:         domain.HeroLayoutSplit,
		TextAlignment:  domain.AlignCenter,
		OverlayOpacity: 0.4,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, domain.HeroLayoutSplit, s.Hero().Layout)
	s.Flush()
	assert.Contains(t, gw.SavedResources(), "hero")
}

func TestUpdateHero_RejectsUnknownLayout(t *testing.T) {
	router, _, _ := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/hero", heroPayload{
		Title:         "بوتيك صبوحة",
		Layout:        "diagonal",
		TextAlignment: domain.AlignCenter,
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAppearance(t *testing.T) {
	router, s, _ := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/appearance", appearancePayload{
		SiteName:     "بوتيك صبوحة",
		GlassOpacity: 0.8,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 0.8, s.Appearance().GlassOpacity)
}

func TestUpdateContact(t *testing.T) {
	router, s, gw := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/contact", contactPayload{
		Phone: "+970 599 000 000",
		Email: "hello@example.com",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "+970 599 000 000", s.Contact().Phone)
	s.Flush()
	assert.Contains(t, gw.SavedResources(), "contact")
}

func TestUpdateContact_RejectsBadEmail(t *testing.T) {
	router, _, _ := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/contact", contactPayload{
		Phone: "+970 599 000 000",
		Email: "not-an-email",
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePromo(t *testing.T) {
	router, s, _ := newTestServer(t, apiTestProducts())
	cookie := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/promo", promoPayload{
		Enabled: true,
		Title:   "تخفيضات الصيف",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	promo := s.Promo()
	assert.True(t, promo.Enabled)
	assert.Equal(t, "تخفيضات الصيف", promo.Title)
}
