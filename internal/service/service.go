// Package service is the use-case layer: it binds the state container to
// persistence, notices, simulated auth, and checkout, one Session per
// storefront visitor.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"elampillai/storefront/internal/catalog"
	"elampillai/storefront/internal/domain"
	"elampillai/storefront/internal/persist"
	"elampillai/storefront/internal/state"
	"elampillai/storefront/internal/view"
	"elampillai/storefront/internal/xid"
)

var (
	ErrUnknownProduct   = errors.New("unknown product")
	ErrUnknownOrder     = errors.New("unknown order")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("checkout already in progress")
	ErrInvalidAddress   = errors.New("invalid delivery address")
	ErrInvalidPayment   = errors.New("invalid payment method")
	ErrAdminRequired    = errors.New("admin access required")
)

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

type userContextKey struct{}

// WithUser attaches the authenticated caller to the context. Admin-gated
// operations read it back through userFromContext.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func userFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(domain.User)
	return user, ok
}

// Options tunes the simulated behavior and the cart policy.
type Options struct {
	LoginDelay   time.Duration
	PaymentDelay time.Duration
	NoticeTTL    time.Duration
	// ClampToStock caps cart quantities at the product's stock instead of
	// accepting any positive quantity.
	ClampToStock bool
}

// Manager owns the per-visitor sessions and the shared collaborators.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	kv    persist.SliceStore
	auth  *AuthManager
	clock Clock
	opts  Options
}

func NewManager(kv persist.SliceStore, auth *AuthManager, clock Clock, opts Options) *Manager {
	if clock == nil {
		clock = SystemClock()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		kv:       kv,
		auth:     auth,
		clock:    clock,
		opts:     opts,
	}
}

// Auth exposes the token verifier for the transport layer.
func (m *Manager) Auth() *AuthManager {
	return m.auth
}

// Session returns the live session for id, creating it on first use. A new
// session seeds the catalog, replays any persisted slices, and starts
// mirroring changes back to the slice store.
func (m *Manager) Session(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("session id required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s, nil
	}

	st := state.New(state.State{})
	seed, err := state.SetProducts(catalog.Products())
	if err != nil {
		return nil, err
	}
	if err := st.Dispatch(seed); err != nil {
		return nil, err
	}

	bridge := persist.NewBridge(m.kv, id)
	if err := bridge.Load(ctx, st); err != nil {
		log.Printf("[service] WARN: session %s: load persisted state: %v", id, err)
	}
	detach := bridge.Attach(context.Background(), st)

	s := &Session{
		id:      id,
		store:   st,
		notices: newNoticeBoard(m.clock, m.opts.NoticeTTL),
		auth:    m.auth,
		clock:   m.clock,
		opts:    m.opts,
		detach:  detach,
	}
	m.sessions[id] = s
	return s, nil
}

// Close detaches every session from the persistence layer.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.detach()
		delete(m.sessions, id)
	}
}

// Session is one visitor's dispatchers over their own state container.
type Session struct {
	id      string
	store   *state.Store
	notices *noticeBoard
	auth    *AuthManager
	clock   Clock
	opts    Options

	checkoutBusy atomic.Bool
	detach       func()
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Snapshot() state.State {
	return s.store.Snapshot()
}

func (s *Session) Notices() []domain.Notice {
	return s.notices.Active()
}

func (s *Session) product(id string) (domain.Product, bool) {
	for _, p := range s.store.Snapshot().Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Session) AddToCart(productID string, quantity int) error {
	product, ok := s.product(productID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	if s.opts.ClampToStock && quantity > product.Stock {
		quantity = product.Stock
	}
	action, err := state.AddToCart(product, quantity)
	if err != nil {
		return err
	}
	if err := s.store.Dispatch(action); err != nil {
		return err
	}
	s.notices.Post(fmt.Sprintf("%s added to cart", product.Name), domain.NoticeSuccess)
	return nil
}

func (s *Session) UpdateQuantity(productID string, quantity int) error {
	action, err := state.UpdateCartQuantity(productID, quantity)
	if err != nil {
		return err
	}
	return s.store.Dispatch(action)
}

func (s *Session) RemoveFromCart(productID string) error {
	action, err := state.RemoveFromCart(productID)
	if err != nil {
		return err
	}
	return s.store.Dispatch(action)
}

func (s *Session) ClearCart() error {
	return s.store.Dispatch(state.ClearCart())
}

func (s *Session) ToggleWishlist(productID string) error {
	product, ok := s.product(productID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}

	present := false
	for _, p := range s.store.Snapshot().Wishlist {
		if p.ID == productID {
			present = true
			break
		}
	}

	action, err := state.ToggleWishlist(product)
	if err != nil {
		return err
	}
	if err := s.store.Dispatch(action); err != nil {
		return err
	}

	if present {
		s.notices.Post(fmt.Sprintf("%s removed from wishlist", product.Name), domain.NoticeSuccess)
	} else {
		s.notices.Post(fmt.Sprintf("%s added to wishlist", product.Name), domain.NoticeSuccess)
	}
	return nil
}

func (s *Session) RemoveFromWishlist(productID string) error {
	action, err := state.RemoveFromWishlist(productID)
	if err != nil {
		return err
	}
	return s.store.Dispatch(action)
}

func (s *Session) ClearWishlist() error {
	return s.store.Dispatch(state.ClearWishlist())
}

func (s *Session) ViewProduct(productID string) (domain.Product, error) {
	product, ok := s.product(productID)
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	action, err := state.AddRecentlyViewed(product)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.store.Dispatch(action); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (s *Session) SetSearchQuery(query string) error {
	return s.store.Dispatch(state.SetSearchQuery(query))
}

// Login resolves credentials after the simulated sign-in delay, stores the
// user in session state, and issues a session token.
func (s *Session) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	if err := s.clock.Sleep(ctx, s.opts.LoginDelay); err != nil {
		return domain.AuthResponse{}, err
	}

	user, err := s.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		s.notices.Post("Invalid email or password", domain.NoticeError)
		return domain.AuthResponse{}, err
	}

	return s.establish(user, fmt.Sprintf("Welcome back, %s!", user.Name))
}

// Register creates a local account after the simulated delay, then signs the
// new user in.
func (s *Session) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	if err := s.clock.Sleep(ctx, s.opts.LoginDelay); err != nil {
		return domain.AuthResponse{}, err
	}

	user, err := s.auth.Register(req)
	if err != nil {
		s.notices.Post("Registration failed", domain.NoticeError)
		return domain.AuthResponse{}, err
	}

	return s.establish(user, fmt.Sprintf("Welcome, %s!", user.Name))
}

func (s *Session) establish(user domain.User, greeting string) (domain.AuthResponse, error) {
	action, err := state.SetUser(user)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if err := s.store.Dispatch(action); err != nil {
		return domain.AuthResponse{}, err
	}

	token, expiresAt, err := s.auth.Issue(user)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	s.notices.Post(greeting, domain.NoticeSuccess)
	return domain.AuthResponse{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt.Format(time.RFC3339),
	}, nil
}

func (s *Session) Logout() error {
	if err := s.store.Dispatch(state.ClearUser()); err != nil {
		return err
	}
	s.notices.Post("Signed out", domain.NoticeSuccess)
	return nil
}

// ApplyCoupon validates the code against the current cart and returns the
// discounted totals. The discount is recomputed at checkout, not stored.
func (s *Session) ApplyCoupon(code string) (view.Totals, error) {
	cart := s.store.Snapshot().Cart
	subtotal := view.CartTotals(cart, 0).Subtotal
	discount, err := view.CouponDiscount(code, subtotal)
	if err != nil {
		s.notices.Post("Invalid coupon code", domain.NoticeError)
		return view.Totals{}, err
	}
	s.notices.Post("Coupon applied", domain.NoticeSuccess)
	return view.CartTotals(cart, discount), nil
}

// Checkout validates the request, simulates the payment delay, snapshots the
// cart into an order, and clears the cart. Only one checkout per session may
// be in flight at a time.
func (s *Session) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.Order, error) {
	if !s.checkoutBusy.CompareAndSwap(false, true) {
		return domain.Order{}, ErrCheckoutInFlight
	}
	defer s.checkoutBusy.Store(false)

	snap := s.store.Snapshot()
	if len(snap.Cart) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if err := validateAddress(req.Address); err != nil {
		s.notices.Post(err.Error(), domain.NoticeError)
		return domain.Order{}, err
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return domain.Order{}, fmt.Errorf("%w: %q", ErrInvalidPayment, req.PaymentMethod)
	}

	var discount int64
	if strings.TrimSpace(req.CouponCode) != "" {
		subtotal := view.CartTotals(snap.Cart, 0).Subtotal
		var err error
		discount, err = view.CouponDiscount(req.CouponCode, subtotal)
		if err != nil {
			s.notices.Post("Invalid coupon code", domain.NoticeError)
			return domain.Order{}, err
		}
	}

	if err := s.clock.Sleep(ctx, s.opts.PaymentDelay); err != nil {
		return domain.Order{}, err
	}

	totals := view.CartTotals(snap.Cart, discount)
	now := s.clock.Now()
	paymentStatus := domain.PaymentStatusPaid
	if req.PaymentMethod == domain.PaymentCOD {
		paymentStatus = domain.PaymentStatusPending
	}

	order := domain.Order{
		ID:               xid.New("ELM"),
		Items:            snap.Cart,
		Subtotal:         totals.Subtotal,
		Shipping:         totals.Shipping,
		Discount:         totals.Discount,
		Total:            totals.Total,
		Address:          req.Address,
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    paymentStatus,
		PaymentReference: strings.TrimSpace(req.PaymentReference),
		Status:           domain.StatusPlaced,
		StatusHistory:    []domain.StatusChange{{State: domain.StatusPlaced, Timestamp: now}},
		CreatedAt:        now,
	}

	action, err := state.AddOrder(order)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.store.Dispatch(action); err != nil {
		return domain.Order{}, err
	}
	if err := s.store.Dispatch(state.ClearCart()); err != nil {
		return domain.Order{}, err
	}

	s.notices.Post(fmt.Sprintf("Order %s placed!", order.ID), domain.NoticeSuccess)
	return order, nil
}

// AdvanceOrder moves an order one step along its lifecycle. Admin only.
func (s *Session) AdvanceOrder(ctx context.Context, orderID string, next domain.OrderStatus) (domain.Order, error) {
	actor, ok := userFromContext(ctx)
	if !ok || !actor.IsAdmin {
		return domain.Order{}, ErrAdminRequired
	}

	var current *domain.Order
	for _, o := range s.store.Snapshot().Orders {
		if o.ID == orderID {
			order := o
			current = &order
			break
		}
	}
	if current == nil {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrUnknownOrder, orderID)
	}

	at := s.clock.Now()
	updated, err := domain.Transition(*current, next, at)
	if err != nil {
		return domain.Order{}, err
	}

	action, err := state.UpdateOrderStatus(orderID, next, at)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.store.Dispatch(action); err != nil {
		return domain.Order{}, err
	}
	return updated, nil
}

// CancelOrder cancels a non-terminal order. Admin only.
func (s *Session) CancelOrder(ctx context.Context, orderID string) (domain.Order, error) {
	return s.AdvanceOrder(ctx, orderID, domain.StatusCancelled)
}

func validateAddress(a domain.Address) error {
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.AddressLine) == "" ||
		strings.TrimSpace(a.City) == "" || strings.TrimSpace(a.State) == "" {
		return fmt.Errorf("%w: name, address, city and state are required", ErrInvalidAddress)
	}
	if !phonePattern.MatchString(a.Phone) {
		return fmt.Errorf("%w: phone must be 10 digits", ErrInvalidAddress)
	}
	if !pincodePattern.MatchString(a.Pincode) {
		return fmt.Errorf("%w: pincode must be 6 digits", ErrInvalidAddress)
	}
	return nil
}

func validPaymentMethod(method string) bool {
	switch method {
	case domain.PaymentCOD, domain.PaymentUPI, domain.PaymentCard, domain.PaymentNetBanking:
		return true
	default:
		return false
	}
}
