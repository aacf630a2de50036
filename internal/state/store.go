package state

import (
	"sync"

	"elampillai/storefront/internal/domain"
)

// Store is the explicitly constructed state container. Consumers read through
// Snapshot, mutate through Dispatch, and observe changes through Subscribe.
// Dispatches are serialized; each one either fully applies or (for a nil
// action) is rejected before any mutation.
type Store struct {
	mu      sync.RWMutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

func New(initial State) *Store {
	return &Store{
		state: initial,
		subs:  make(map[int]func(State)),
	}
}

// Snapshot returns a copy of the current state. Slices are cloned so the
// caller cannot reach into the container's backing arrays.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Dispatch applies the action and notifies subscribers with the resulting
// state. Subscribers run synchronously, outside the lock; invocation order is
// not guaranteed.
func (s *Store) Dispatch(action Action) error {
	if action == nil {
		return ErrInvalidAction
	}

	s.mu.Lock()
	s.state = reduce(s.state, action)
	next := cloneState(s.state)
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return nil
}

// Subscribe registers a change listener and returns its unsubscribe function.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func cloneState(s State) State {
	out := s
	out.Products = cloneProducts(s.Products)
	out.Cart = cloneCart(s.Cart)
	out.Orders = cloneOrders(s.Orders)
	out.Wishlist = cloneProducts(s.Wishlist)
	out.RecentlyViewed = cloneProducts(s.RecentlyViewed)
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	return out
}

func cloneProducts(in []domain.Product) []domain.Product {
	if in == nil {
		return nil
	}
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}

func cloneCart(in []domain.CartItem) []domain.CartItem {
	if in == nil {
		return nil
	}
	out := make([]domain.CartItem, len(in))
	copy(out, in)
	return out
}

func cloneOrders(in []domain.Order) []domain.Order {
	if in == nil {
		return nil
	}
	out := make([]domain.Order, len(in))
	copy(out, in)
	return out
}
