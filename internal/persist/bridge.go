package persist

import (
	"context"
	"log"

	"elampillai/storefront/internal/domain"
	"elampillai/storefront/internal/state"
)

// Bridge mirrors one session's persisted slices to a SliceStore and loads
// them back at session start. Mirror writes are fire-and-forget: a failed
// write is logged, never surfaced, and the next change retries naturally.
type Bridge struct {
	kv        SliceStore
	sessionID string
}

func NewBridge(kv SliceStore, sessionID string) *Bridge {
	return &Bridge{kv: kv, sessionID: sessionID}
}

// Attach subscribes to the store and mirrors the persisted slices on every
// change. It returns the unsubscribe function.
func (b *Bridge) Attach(ctx context.Context, st *state.Store) func() {
	return st.Subscribe(func(s state.State) {
		b.mirror(ctx, s)
	})
}

func (b *Bridge) mirror(ctx context.Context, s state.State) {
	b.write(ctx, SliceCart, s.Cart)
	b.write(ctx, SliceWishlist, s.Wishlist)
	b.write(ctx, SliceOrders, s.Orders)

	if s.User == nil {
		if err := b.kv.Delete(ctx, b.sessionID, SliceUser); err != nil {
			log.Printf("[persist] WARN: failed to delete slice %s session=%s: %v", SliceUser, b.sessionID, err)
		}
		return
	}
	b.write(ctx, SliceUser, s.User)
}

func (b *Bridge) write(ctx context.Context, slice Slice, value any) {
	payload, err := Encode(value)
	if err != nil {
		log.Printf("[persist] WARN: failed to encode slice %s session=%s: %v", slice, b.sessionID, err)
		return
	}
	if err := b.kv.Set(ctx, b.sessionID, slice, payload); err != nil {
		log.Printf("[persist] WARN: failed to write slice %s session=%s: %v", slice, b.sessionID, err)
	}
}

// Load reads every persisted slice and replays it into the store through the
// bulk-load actions. Absent or malformed slices are skipped; startup never
// fails because of bad stored data.
func (b *Bridge) Load(ctx context.Context, st *state.Store) error {
	var cart []domain.CartItem
	if b.read(ctx, SliceCart, &cart) && len(cart) > 0 {
		if action, err := state.LoadCart(cart); err == nil {
			if err := st.Dispatch(action); err != nil {
				return err
			}
		}
	}

	var wishlist []domain.Product
	if b.read(ctx, SliceWishlist, &wishlist) && len(wishlist) > 0 {
		if action, err := state.LoadWishlist(wishlist); err == nil {
			if err := st.Dispatch(action); err != nil {
				return err
			}
		}
	}

	var orders []domain.Order
	if b.read(ctx, SliceOrders, &orders) && len(orders) > 0 {
		if action, err := state.LoadOrders(orders); err == nil {
			if err := st.Dispatch(action); err != nil {
				return err
			}
		}
	}

	var user domain.User
	if b.read(ctx, SliceUser, &user) {
		if action, err := state.SetUser(user); err == nil {
			if err := st.Dispatch(action); err != nil {
				return err
			}
		}
	}

	return nil
}

// read reports whether the slice was present and decodable.
func (b *Bridge) read(ctx context.Context, slice Slice, dest any) bool {
	payload, err := b.kv.Get(ctx, b.sessionID, slice)
	if err != nil {
		return false
	}
	return Decode(payload, dest) == nil
}
