package state

import (
	"testing"
	"time"

	"elampillai/storefront/internal/domain"
)

func product(id string, price int64) domain.Product {
	return domain.Product{ID: id, Name: "Saree " + id, Price: price + 500, OfferPrice: price}
}

func mustDispatch(t *testing.T, st *Store, action Action, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("build action: %v", err)
	}
	if err := st.Dispatch(action); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
}

func TestAddToCartMergesByProductID(t *testing.T) {
	st := New(State{})
	p := product("p1", 1000)

	action, err := AddToCart(p, 2)
	mustDispatch(t, st, action, err)
	action, err = AddToCart(p, 3)
	mustDispatch(t, st, action, err)

	cart := st.Snapshot().Cart
	if len(cart) != 1 {
		t.Fatalf("expected single cart line, got %d", len(cart))
	}
	if cart[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart[0].Quantity)
	}
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	if _, err := AddToCart(product("p1", 1000), 0); err == nil {
		t.Fatalf("expected zero quantity to be rejected")
	}
	if _, err := AddToCart(product("p1", 1000), -2); err == nil {
		t.Fatalf("expected negative quantity to be rejected")
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	st := New(State{})
	action, err := AddToCart(product("p1", 1000), 2)
	mustDispatch(t, st, action, err)

	action, err = UpdateCartQuantity("p1", 0)
	mustDispatch(t, st, action, err)

	if got := len(st.Snapshot().Cart); got != 0 {
		t.Fatalf("expected empty cart after quantity 0, got %d lines", got)
	}
}

func TestToggleWishlistIsAnInvolution(t *testing.T) {
	st := New(State{})
	p := product("p1", 1000)

	action, err := ToggleWishlist(p)
	mustDispatch(t, st, action, err)
	if got := len(st.Snapshot().Wishlist); got != 1 {
		t.Fatalf("expected wishlist of 1 after first toggle, got %d", got)
	}

	action, err = ToggleWishlist(p)
	mustDispatch(t, st, action, err)
	if got := len(st.Snapshot().Wishlist); got != 0 {
		t.Fatalf("expected empty wishlist after second toggle, got %d", got)
	}
}

func TestRecentlyViewedCapsAndDeduplicates(t *testing.T) {
	st := New(State{})

	for i := 0; i < 14; i++ {
		action, err := AddRecentlyViewed(product(string(rune('a'+i)), 100))
		mustDispatch(t, st, action, err)
	}

	viewed := st.Snapshot().RecentlyViewed
	if len(viewed) != recentlyViewedMax {
		t.Fatalf("expected recently viewed capped at %d, got %d", recentlyViewedMax, len(viewed))
	}
	if viewed[0].ID != "n" {
		t.Fatalf("expected most recent product first, got %q", viewed[0].ID)
	}

	// Re-viewing an already listed product moves it to the front without
	// growing the list.
	action, err := AddRecentlyViewed(product("h", 100))
	mustDispatch(t, st, action, err)

	viewed = st.Snapshot().RecentlyViewed
	if len(viewed) != recentlyViewedMax {
		t.Fatalf("expected cap to hold after re-view, got %d", len(viewed))
	}
	if viewed[0].ID != "h" {
		t.Fatalf("expected re-viewed product first, got %q", viewed[0].ID)
	}
	seen := make(map[string]bool)
	for _, p := range viewed {
		if seen[p.ID] {
			t.Fatalf("duplicate product %q in recently viewed", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestAddOrderPrepends(t *testing.T) {
	st := New(State{})

	first := domain.Order{ID: "ELM-1", Status: domain.StatusPlaced}
	second := domain.Order{ID: "ELM-2", Status: domain.StatusPlaced}

	action, err := AddOrder(first)
	mustDispatch(t, st, action, err)
	action, err = AddOrder(second)
	mustDispatch(t, st, action, err)

	orders := st.Snapshot().Orders
	if len(orders) != 2 || orders[0].ID != "ELM-2" {
		t.Fatalf("expected newest order first, got %+v", orders)
	}
}

func TestUpdateOrderStatusInvalidTransitionIsNoOp(t *testing.T) {
	st := New(State{})
	action, err := AddOrder(domain.Order{ID: "ELM-1", Status: domain.StatusPlaced})
	mustDispatch(t, st, action, err)

	// PLACED cannot jump straight to DELIVERED.
	action, err = UpdateOrderStatus("ELM-1", domain.StatusDelivered, time.Now())
	mustDispatch(t, st, action, err)

	if got := st.Snapshot().Orders[0].Status; got != domain.StatusPlaced {
		t.Fatalf("expected status unchanged, got %s", got)
	}
}

func TestLoadCartMergesDuplicatesAndDropsInvalid(t *testing.T) {
	st := New(State{})

	action, err := LoadCart([]domain.CartItem{
		{Product: product("p1", 100), Quantity: 2},
		{Product: product("p2", 200), Quantity: 0},
		{Product: product("p1", 100), Quantity: 3},
		{Product: domain.Product{}, Quantity: 4},
	})
	mustDispatch(t, st, action, err)

	cart := st.Snapshot().Cart
	if len(cart) != 1 {
		t.Fatalf("expected single merged line, got %d", len(cart))
	}
	if cart[0].Product.ID != "p1" || cart[0].Quantity != 5 {
		t.Fatalf("expected p1 x5, got %s x%d", cart[0].Product.ID, cart[0].Quantity)
	}
}

func TestLoadWishlistDeduplicates(t *testing.T) {
	st := New(State{})

	action, err := LoadWishlist([]domain.Product{
		product("p1", 100),
		product("p2", 200),
		product("p1", 100),
	})
	mustDispatch(t, st, action, err)

	wishlist := st.Snapshot().Wishlist
	if len(wishlist) != 2 {
		t.Fatalf("expected 2 wishlist entries, got %d", len(wishlist))
	}
}

func TestClearUserLeavesOtherSlicesAlone(t *testing.T) {
	st := New(State{})
	action, err := AddToCart(product("p1", 100), 1)
	mustDispatch(t, st, action, err)
	action, err = SetUser(domain.User{ID: "user-1", Email: "a@b.c"})
	mustDispatch(t, st, action, err)

	if err := st.Dispatch(ClearUser()); err != nil {
		t.Fatalf("dispatch clear user: %v", err)
	}

	snap := st.Snapshot()
	if snap.User != nil {
		t.Fatalf("expected user cleared")
	}
	if len(snap.Cart) != 1 {
		t.Fatalf("expected cart untouched, got %d lines", len(snap.Cart))
	}
}
