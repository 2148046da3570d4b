package shop

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/example/sabouha-storefront/internal/cart"
)

var ErrEmptyCart = errors.New("shop: cart is empty")

// Order is the checkout hand-off record: the deterministic human-readable
// summary plus the link the shopper follows to confirm over WhatsApp.
type Order struct {
	SessionID   string    `json:"session_id"`
	Lines       []string  `json:"lines"`
	Total       float64   `json:"total"`
	Message     string    `json:"message"`
	WhatsAppURL string    `json:"whatsapp_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Checkout summarizes the session's cart and hands the order to the
// messaging channel. The publish is best-effort: a failure is logged and
// the shopper still gets the summary and link.
func (s *Shop) Checkout(ctx context.Context, sess *Session) (Order, error) {
	items := sess.Cart()
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	lines, total := cart.Summarize(items)
	message := cart.OrderMessage(items)
	order := Order{
		SessionID:   sess.ID,
		Lines:       lines,
		Total:       total,
		Message:     message,
		WhatsAppURL: cart.WhatsAppURL(s.Contact().Phone, message),
		CreatedAt:   time.Now(),
	}

	if s.orders != nil {
		if err := s.orders.Publish(ctx, sess.ID, order); err != nil {
			zap.S().Errorf("publish order for session %s failed: %v", sess.ID, err)
		}
	}
	return order, nil
}
