package domain

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "الكل"

// Categories is the fixed set shown in the storefront, sentinel first.
var Categories = []string{
	CategoryAll,
	"عناية بالبشرة",
	"مكياج",
	"عطور",
	"عناية بالشعر",
	"أدوات تجميل",
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Review is a customer review attached to a product. Reviews are
// append-only and kept most-recent-first.
type Review struct {
	ID      string  `json:"id"`
	User    string  `json:"user"`
	Comment string  `json:"comment,omitempty"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
}

// Product is a catalog entry. CreatedAt is epoch milliseconds.
// OriginalPrice is present only for discounted items: a discount exists
// iff OriginalPrice > Price.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	CreatedAt     int64    `json:"createdAt"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsFeatured    bool     `json:"isFeatured,omitempty"`
	Rating        float64  `json:"rating"`
	Reviews       []Review `json:"reviews"`
	Colors        []string `json:"colors,omitempty"`
}

// CartItem is a product plus the quantity of it sitting in a cart.
type CartItem struct {
	Product
	CartQuantity int `json:"cartQuantity"`
}

// FindProduct looks a product up by ID.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
