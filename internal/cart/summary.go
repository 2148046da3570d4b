package cart

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Summarize renders the cart as human-readable order lines, one per entry
// in cart iteration order, plus the grand total. An empty cart yields no
// lines and a zero total.
func Summarize(items Items) ([]string, float64) {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("* %s (الكمية: %d, السعر: %s ₪)",
			item.Name, item.CartQuantity, formatPrice(item.Price)))
	}
	return lines, Total(items)
}

// OrderMessage builds the checkout confirmation text handed to the
// external messaging channel.
func OrderMessage(items Items) string {
	lines, total := Summarize(items)
	return "مرحباً بوتيك صبوحة، أريد تأكيد طلبي:\n\n" +
		strings.Join(lines, "\n") +
		"\n\n*الإجمالي:* " + formatPrice(total) + " ₪"
}

// WhatsAppURL builds the wa.me hand-off link for the given phone number
// and message. Everything but digits is stripped from the number.
func WhatsAppURL(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(message)
}

// formatPrice renders whole prices without a decimal tail (180, not 180.00).
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
