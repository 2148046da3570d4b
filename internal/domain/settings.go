package domain

// Hero layout values.
const (
	HeroLayoutBackground = "background"
	HeroLayoutSplit      = "split"
)

// Hero text alignment values.
const (
	AlignRight  = "right"
	AlignCenter = "center"
	AlignLeft   = "left"
)

// HeroSettings describes the landing banner. Records are loaded and saved
// whole; callers merge locally before saving.
type HeroSettings struct {
	WelcomeText    string  `json:"welcomeText"`
	Title          string  `json:"title"`
	Subtitle       string  `json:"subtitle"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	Layout         string  `json:"layout"`
	TextAlignment  string  `json:"textAlignment"`
	OverlayOpacity float64 `json:"overlayOpacity"`
}

// PromoSettings describes the promotional banner. Unlike the other
// settings records it lives in the local key-value store.
type PromoSettings struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
	PromoImage  string `json:"promoImage,omitempty"`
	ProductID   string `json:"productId,omitempty"`
}

// AppearanceSettings describes site-wide presentation defaults.
type AppearanceSettings struct {
	SiteBackground    string  `json:"siteBackground"`
	FeaturedSectionBg string  `json:"featuredSectionBg"`
	ShopPageBg        string  `json:"shopPageBg"`
	GlassOpacity      float64 `json:"glassOpacity"`
	EnableAnimatedBg  bool    `json:"enableAnimatedBg"`
	SiteLogo          string  `json:"siteLogo,omitempty"`
	SiteName          string  `json:"siteName"`
}

// ContactSettings holds the boutique's contact channels. The phone number
// is also the checkout hand-off target.
type ContactSettings struct {
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Email     string `json:"email"`
}
