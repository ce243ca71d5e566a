package cart

import (
	"sync"

	"github.com/xenking/pricecart/internal/domain/item"
)

// Locked guards a Cart with a mutex so it can be shared between goroutines.
// The zero value wraps an empty cart without an ID.
type Locked struct {
	mu   sync.Mutex
	cart *Cart
}

// NewLocked creates a Locked wrapping a new empty cart.
func NewLocked() *Locked {
	return &Locked{cart: New()}
}

// Add appends it to the cart.
func (l *Locked) Add(it item.Priced) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.get().Add(it)
}

// Len returns the number of items in the cart.
func (l *Locked) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get().Len()
}

// Subtotal returns the cart subtotal. See Cart.Subtotal.
func (l *Locked) Subtotal() item.Price {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get().Subtotal()
}

// Render returns the cart listing. See Cart.Render.
func (l *Locked) Render() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get().Render()
}

// Snapshot returns an independent copy of the current cart.
func (l *Locked) Snapshot() *Cart {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get().clone()
}

// get returns the wrapped cart, creating it on first use. l.mu must be held.
func (l *Locked) get() *Cart {
	if l.cart == nil {
		l.cart = &Cart{}
	}
	return l.cart
}
