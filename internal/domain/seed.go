package domain

import "time"

// Compiled-in defaults. Any failed or absent initial load degrades to
// these instead of surfacing an error to the shopper.

func ptr(v float64) *float64 { return &v }

// SeedProducts returns the default catalog used when the persisted
// product list is missing or empty. CreatedAt is stamped at call time so
// the seed items count as recent.
func SeedProducts() []Product {
	now := time.Now().UnixMilli()
	return []Product{
		{
			ID:            "1",
			Name:          "سيروم فيتامين سي المطور",
			Description:   "سيروم مركز يحتوي على حمض الهيالورونيك وفيتامين سي لتفتيح البشرة ومحاربة علامات الشيخوخة وإعادة النضارة الفورية.",
			Price:         180,
			OriginalPrice: ptr(220),
			Category:      "عناية بالبشرة",
			Image:         "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?q=80&w=800",
			CreatedAt:     now,
			IsNew:         true,
			IsFeatured:    true,
			Rating:        4.8,
			Reviews:       []Review{},
		},
		{
			ID:          "2",
			Name:        "أحمر شفاه كلاسيك - صبوحة",
			Description: "تركيبة تدوم طويلاً مع ترطيب عميق وألوان جذابة تناسب جميع المناسبات الرسمية واليومية.",
			Price:       95,
			Category:    "مكياج",
			Image:       "https://images.unsplash.com/photo-1586776977607-310e9c725c37?q=80&w=800",
			CreatedAt:   now,
			IsNew:       true,
			Rating:      4.9,
			Reviews:     []Review{},
		},
		{
			ID:            "3",
			Name:          "عطر الورد الدمشقي الفاخر",
			Description:   "مزيج ساحر من أزهار الورد الطبيعية مع لمسة من المسك الأصيل وخشب الصندل لثبات يدوم طويلاً.",
			Price:         250,
			OriginalPrice: ptr(320),
			Category:      "عطور",
			Image:         "https://images.unsplash.com/photo-1541643600914-78b084683601?q=80&w=800",
			CreatedAt:     now,
			IsFeatured:    true,
			Rating:        5.0,
			Reviews:       []Review{},
		},
		{
			ID:          "4",
			Name:        "ماسك الشعر بخلاصة الأرجان",
			Description: "علاج مكثف لإصلاح الشعر التالف وزيادة اللمعان والنعومة من الاستخدام الأول.",
			Price:       120,
			Category:    "عناية بالشعر",
			Image:       "https://images.unsplash.com/photo-1527799822367-3188572f481b?q=80&w=800",
			CreatedAt:   now,
			Rating:      4.7,
			Reviews:     []Review{},
		},
		{
			ID:          "5",
			Name:        "كريم العين المجدد للهالات",
			Description: "يقلل من ظهور الهالات السوداء والانتفاخات تحت العين بفضل الكافيين والشاي الأخضر.",
			Price:       145,
			Category:    "عناية بالبشرة",
			Image:       "https://images.unsplash.com/photo-1556228720-195a672e8a03?q=80&w=800",
			CreatedAt:   now,
			Rating:      4.6,
			Reviews:     []Review{},
		},
	}
}

// DefaultHero is the compiled-in hero banner.
func DefaultHero() HeroSettings {
	return HeroSettings{
		WelcomeText:    "عالم صبوحة الوردي",
		Title:          "إشراقة وردية دائمة",
		Subtitle:       "Sabouha Signature Collection",
		Description:    "اكتشفي سر الجمال الطبيعي مع مجموعتنا المختارة من أرقى منتجات العناية، المصممة خصيصاً لتناسب رقة بشرتكِ وتبرز أنوثتكِ.",
		Image:          "https://images.unsplash.com/photo-1596462502278-27bfad45f062?q=80&w=2000",
		Layout:         HeroLayoutBackground,
		TextAlignment:  AlignRight,
		OverlayOpacity: 0.5,
	}
}

// DefaultAppearance is the compiled-in site appearance.
func DefaultAppearance() AppearanceSettings {
	return AppearanceSettings{
		SiteBackground:    "#fdf2f4",
		FeaturedSectionBg: "rgba(255, 255, 255, 0.45)",
		ShopPageBg:        "rgba(255, 255, 255, 0.5)",
		GlassOpacity:      0.45,
		EnableAnimatedBg:  true,
		SiteName:          "بوتيك صبوحة",
	}
}

// DefaultContact is the compiled-in contact record.
func DefaultContact() ContactSettings {
	return ContactSettings{
		Address:   "فلسطين، قلقيلية - شارع نابلس الرئيسي",
		Phone:     "+970 599 766 630",
		Facebook:  "https://www.facebook.com/sabouha.boutique",
		Instagram: "https://www.instagram.com/sabouha_boutique/",
		Email:     "sabouha.boutique@gmail.com",
	}
}

// DefaultPromo is the compiled-in promotional banner.
func DefaultPromo() PromoSettings {
	return PromoSettings{
		Enabled:     true,
		Title:       "سر الجمال القادم",
		Subtitle:    "اكتشاف جديد قريباً",
		Description: "ترقبي منتجاً فريداً من نوعه.",
		Badge:       "قريباً",
		PromoImage:  "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?q=80&w=1000",
	}
}
