package shop

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/sabouha-storefront/internal/cart"
	"github.com/example/sabouha-storefront/internal/store"
)

// Session is one shopper's cart and wishlist. The cart survives restarts
// through its local-store snapshot; the wishlist lives only in memory for
// the session.
type Session struct {
	ID string

	mu       sync.Mutex
	shop     *Shop
	items    cart.Items
	wishlist cart.Wishlist
}

// NewSessionID mints a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Session returns the session for id, creating it (and restoring its cart
// snapshot) on first touch. A corrupt snapshot degrades to an empty cart.
func (s *Shop) Session(id string) *Session {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &Session{ID: id, shop: s, items: s.restoreCart(id)}
	s.sessions[id] = sess
	return sess
}

func (s *Shop) restoreCart(sessionID string) cart.Items {
	value, ok, err := s.kv.Get(store.CartKey(sessionID))
	if err != nil {
		zap.S().Warnf("restore cart for session %s failed: %v", sessionID, err)
		return nil
	}
	if !ok {
		return nil
	}
	var items cart.Items
	if err := json.UnmarshalFromString(value, &items); err != nil {
		zap.S().Warnf("corrupt cart snapshot for session %s, starting empty: %v", sessionID, err)
		return nil
	}
	return items
}

// Cart returns a copy of the session's cart.
func (sess *Session) Cart() cart.Items {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return append(cart.Items(nil), sess.items...)
}

// Wishlist returns a copy of the session's wishlist.
func (sess *Session) Wishlist() cart.Wishlist {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return append(cart.Wishlist(nil), sess.wishlist...)
}

// AddToCart puts qty units of the product into the cart.
func (sess *Session) AddToCart(productID string, qty int) (cart.Items, error) {
	p, ok := sess.shop.Product(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	sess.mu.Lock()
	sess.items = cart.Add(sess.items, p, qty)
	next := sess.items
	sess.mu.Unlock()
	sess.persist(next)
	return next, nil
}

// SetQuantity sets an entry's quantity, clamped to at least 1.
func (sess *Session) SetQuantity(productID string, qty int) cart.Items {
	sess.mu.Lock()
	sess.items = cart.SetQuantity(sess.items, productID, qty)
	next := sess.items
	sess.mu.Unlock()
	sess.persist(next)
	return next
}

// RemoveFromCart drops an entry; absent IDs are a no-op.
func (sess *Session) RemoveFromCart(productID string) cart.Items {
	sess.mu.Lock()
	sess.items = cart.Remove(sess.items, productID)
	next := sess.items
	sess.mu.Unlock()
	sess.persist(next)
	return next
}

// ToggleWishlist flips the product's wishlist membership. The wishlist is
// not persisted; only the cart is.
func (sess *Session) ToggleWishlist(productID string) (cart.Wishlist, error) {
	p, ok := sess.shop.Product(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	sess.mu.Lock()
	sess.wishlist = cart.Toggle(sess.wishlist, p)
	next := sess.wishlist
	sess.mu.Unlock()
	return next, nil
}

// persist publishes the cart snapshot for the fire-and-forget write.
func (sess *Session) persist(items cart.Items) {
	snapshot, err := json.MarshalToString(items)
	if err != nil {
		zap.S().Errorf("encode cart snapshot for session %s failed: %v", sess.ID, err)
		return
	}
	sess.shop.bus.Publish(topicCart, store.CartKey(sess.ID), snapshot)
}
