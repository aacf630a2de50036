// Package state implements the storefront state container: a closed action
// vocabulary, a pure reducer, and a Store that serializes dispatches and
// notifies subscribers of changes.
package state

import "elampillai/storefront/internal/domain"

// recentlyViewedMax caps the recently-viewed list, most-recent-first.
const recentlyViewedMax = 10

// State is one session's worth of storefront state. Slices are owned by the
// container; callers receive copies through Store.Snapshot.
type State struct {
	Products       []domain.Product
	Cart           []domain.CartItem
	Orders         []domain.Order
	User           *domain.User
	Wishlist       []domain.Product
	RecentlyViewed []domain.Product
	SearchQuery    string
}

// reduce computes the next state from the current state and an action. It is
// pure: the input state is never mutated, and applying the same inputs always
// yields the same output. Unrecognized actions return the state unchanged; the
// no-op keeps the reducer total under a growing vocabulary.
func reduce(s State, action Action) State {
	switch a := action.(type) {
	case setProducts:
		s.Products = a.products

	case addToCart:
		cart := make([]domain.CartItem, len(s.Cart))
		copy(cart, s.Cart)
		merged := false
		for i := range cart {
			if cart[i].Product.ID == a.product.ID {
				cart[i].Quantity += a.quantity
				merged = true
				break
			}
		}
		if !merged {
			cart = append(cart, domain.CartItem{Product: a.product, Quantity: a.quantity})
		}
		s.Cart = cart

	case removeFromCart:
		s.Cart = withoutCartItem(s.Cart, a.productID)

	case updateCartQuantity:
		if a.quantity <= 0 {
			s.Cart = withoutCartItem(s.Cart, a.productID)
			break
		}
		cart := make([]domain.CartItem, len(s.Cart))
		copy(cart, s.Cart)
		for i := range cart {
			if cart[i].Product.ID == a.productID {
				cart[i].Quantity = a.quantity
			}
		}
		s.Cart = cart

	case clearCart:
		s.Cart = nil

	case addOrder:
		orders := make([]domain.Order, 0, len(s.Orders)+1)
		orders = append(orders, a.order)
		orders = append(orders, s.Orders...)
		s.Orders = orders

	case updateOrderStatus:
		orders := make([]domain.Order, len(s.Orders))
		copy(orders, s.Orders)
		for i := range orders {
			if orders[i].ID != a.orderID {
				continue
			}
			if updated, err := domain.Transition(orders[i], a.next, a.at); err == nil {
				orders[i] = updated
			}
		}
		s.Orders = orders

	case setUser:
		user := a.user
		s.User = &user

	case clearUser:
		s.User = nil

	case toggleWishlist:
		for _, p := range s.Wishlist {
			if p.ID == a.product.ID {
				s.Wishlist = withoutProduct(s.Wishlist, a.product.ID)
				return s
			}
		}
		wishlist := make([]domain.Product, 0, len(s.Wishlist)+1)
		wishlist = append(wishlist, s.Wishlist...)
		wishlist = append(wishlist, a.product)
		s.Wishlist = wishlist

	case removeFromWishlist:
		s.Wishlist = withoutProduct(s.Wishlist, a.productID)

	case clearWishlist:
		s.Wishlist = nil

	case addRecentlyViewed:
		viewed := make([]domain.Product, 0, recentlyViewedMax)
		viewed = append(viewed, a.product)
		for _, p := range s.RecentlyViewed {
			if p.ID == a.product.ID {
				continue
			}
			viewed = append(viewed, p)
			if len(viewed) == recentlyViewedMax {
				break
			}
		}
		s.RecentlyViewed = viewed

	case setSearchQuery:
		s.SearchQuery = a.query

	case loadCart:
		s.Cart = a.items

	case loadWishlist:
		s.Wishlist = a.products

	case loadOrders:
		s.Orders = a.orders
	}

	return s
}

func withoutCartItem(cart []domain.CartItem, productID string) []domain.CartItem {
	kept := make([]domain.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID == productID {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func withoutProduct(products []domain.Product, productID string) []domain.Product {
	kept := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID == productID {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
