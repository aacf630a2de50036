package state

import (
	"errors"
	"fmt"
	"time"

	"elampillai/storefront/internal/domain"
)

// ErrInvalidAction is returned by action constructors when the payload is
// malformed. Validation happens here, at the boundary, so the reducer itself
// stays total: every constructed Action is safe to apply.
var ErrInvalidAction = errors.New("invalid action")

// Action is one member of the closed action vocabulary. Only this package can
// construct actions, which is what makes constructor-level validation airtight.
type Action interface {
	actionName() string
}

type setProducts struct{ products []domain.Product }
type addToCart struct {
	product  domain.Product
	quantity int
}
type removeFromCart struct{ productID string }
type updateCartQuantity struct {
	productID string
	quantity  int
}
type clearCart struct{}
type addOrder struct{ order domain.Order }
type updateOrderStatus struct {
	orderID string
	next    domain.OrderStatus
	at      time.Time
}
type setUser struct{ user domain.User }
type clearUser struct{}
type toggleWishlist struct{ product domain.Product }
type removeFromWishlist struct{ productID string }
type clearWishlist struct{}
type addRecentlyViewed struct{ product domain.Product }
type setSearchQuery struct{ query string }

// Bulk-load actions replace a slice wholesale. Persistence replay uses these
// instead of re-dispatching per-item add/toggle actions, so stored data never
// routes through merge or toggle logic on startup.
type loadCart struct{ items []domain.CartItem }
type loadWishlist struct{ products []domain.Product }
type loadOrders struct{ orders []domain.Order }

func (setProducts) actionName() string        { return "set_products" }
func (addToCart) actionName() string          { return "add_to_cart" }
func (removeFromCart) actionName() string     { return "remove_from_cart" }
func (updateCartQuantity) actionName() string { return "update_cart_quantity" }
func (clearCart) actionName() string          { return "clear_cart" }
func (addOrder) actionName() string           { return "add_order" }
func (updateOrderStatus) actionName() string  { return "update_order_status" }
func (setUser) actionName() string            { return "set_user" }
func (clearUser) actionName() string          { return "clear_user" }
func (toggleWishlist) actionName() string     { return "toggle_wishlist" }
func (removeFromWishlist) actionName() string { return "remove_from_wishlist" }
func (clearWishlist) actionName() string      { return "clear_wishlist" }
func (addRecentlyViewed) actionName() string  { return "add_recently_viewed" }
func (setSearchQuery) actionName() string     { return "set_search_query" }
func (loadCart) actionName() string           { return "load_cart" }
func (loadWishlist) actionName() string       { return "load_wishlist" }
func (loadOrders) actionName() string         { return "load_orders" }

func SetProducts(products []domain.Product) (Action, error) {
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: product without id", ErrInvalidAction)
		}
	}
	return setProducts{products: products}, nil
}

func AddToCart(product domain.Product, quantity int) (Action, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("%w: product without id", ErrInvalidAction)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidAction, quantity)
	}
	return addToCart{product: product, quantity: quantity}, nil
}

func RemoveFromCart(productID string) (Action, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id required", ErrInvalidAction)
	}
	return removeFromCart{productID: productID}, nil
}

// UpdateCartQuantity accepts any quantity; zero or negative means removal,
// matching the update-is-remove contract of the cart.
func UpdateCartQuantity(productID string, quantity int) (Action, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id required", ErrInvalidAction)
	}
	return updateCartQuantity{productID: productID, quantity: quantity}, nil
}

func ClearCart() Action {
	return clearCart{}
}

func AddOrder(order domain.Order) (Action, error) {
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order without id", ErrInvalidAction)
	}
	if !order.Status.Valid() {
		return nil, fmt.Errorf("%w: order status %q", ErrInvalidAction, order.Status)
	}
	return addOrder{order: order}, nil
}

func UpdateOrderStatus(orderID string, next domain.OrderStatus, at time.Time) (Action, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id required", ErrInvalidAction)
	}
	if !next.Valid() {
		return nil, fmt.Errorf("%w: order status %q", ErrInvalidAction, next)
	}
	return updateOrderStatus{orderID: orderID, next: next, at: at}, nil
}

func SetUser(user domain.User) (Action, error) {
	if user.ID == "" || user.Email == "" {
		return nil, fmt.Errorf("%w: user id and email required", ErrInvalidAction)
	}
	return setUser{user: user}, nil
}

func ClearUser() Action {
	return clearUser{}
}

func ToggleWishlist(product domain.Product) (Action, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("%w: product without id", ErrInvalidAction)
	}
	return toggleWishlist{product: product}, nil
}

func RemoveFromWishlist(productID string) (Action, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id required", ErrInvalidAction)
	}
	return removeFromWishlist{productID: productID}, nil
}

func ClearWishlist() Action {
	return clearWishlist{}
}

func AddRecentlyViewed(product domain.Product) (Action, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("%w: product without id", ErrInvalidAction)
	}
	return addRecentlyViewed{product: product}, nil
}

func SetSearchQuery(query string) Action {
	return setSearchQuery{query: query}
}

// LoadCart merges duplicate IDs by summing quantities and drops non-positive
// entries, so even corrupted stored data re-enters the store upholding the
// one-entry-per-product invariant.
func LoadCart(items []domain.CartItem) (Action, error) {
	merged := make([]domain.CartItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if item.Product.ID == "" || item.Quantity < 1 {
			continue
		}
		if at, ok := index[item.Product.ID]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.Product.ID] = len(merged)
		merged = append(merged, item)
	}
	return loadCart{items: merged}, nil
}

// LoadWishlist deduplicates by product ID, keeping first occurrence.
func LoadWishlist(products []domain.Product) (Action, error) {
	seen := make(map[string]struct{}, len(products))
	deduped := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		deduped = append(deduped, p)
	}
	return loadWishlist{products: deduped}, nil
}

func LoadOrders(orders []domain.Order) (Action, error) {
	kept := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID == "" {
			continue
		}
		kept = append(kept, o)
	}
	return loadOrders{orders: kept}, nil
}
