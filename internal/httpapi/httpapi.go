// Package httpapi exposes the storefront sessions over HTTP. Visitors are
// identified by an X-Session-ID header; admin operations additionally carry a
// bearer session token.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"elampillai/storefront/internal/catalog"
	"elampillai/storefront/internal/domain"
	"elampillai/storefront/internal/persist"
	"elampillai/storefront/internal/service"
	"elampillai/storefront/internal/share"
	"elampillai/storefront/internal/state"
	"elampillai/storefront/internal/view"
)

const sessionHeader = "X-Session-ID"

type API struct {
	manager       *service.Manager
	allowedOrigin string
	whatsAppLink  string
}

func New(manager *service.Manager, allowedOrigin, whatsAppLink string) *API {
	return &API{
		manager:       manager,
		allowedOrigin: allowedOrigin,
		whatsAppLink:  whatsAppLink,
	}
}

func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealth)

	mux.HandleFunc("/api/v1/auth/login", a.handleLogin)
	mux.HandleFunc("/api/v1/auth/register", a.handleRegister)
	mux.HandleFunc("/api/v1/auth/logout", a.handleLogout)

	mux.HandleFunc("/api/v1/catalog", a.handleCatalog)
	mux.HandleFunc("/api/v1/catalog/", a.handleCatalogItem)
	mux.HandleFunc("/api/v1/cart", a.handleCart)
	mux.HandleFunc("/api/v1/cart/items/", a.handleCartItem)
	mux.HandleFunc("/api/v1/cart/coupon", a.handleCoupon)
	mux.HandleFunc("/api/v1/wishlist", a.handleWishlist)
	mux.HandleFunc("/api/v1/wishlist/", a.handleWishlistItem)
	mux.HandleFunc("/api/v1/checkout", a.handleCheckout)
	mux.HandleFunc("/api/v1/orders", a.handleOrders)
	mux.HandleFunc("/api/v1/orders/", a.handleOrderActions)
	mux.HandleFunc("/api/v1/recently-viewed", a.handleRecentlyViewed)
	mux.HandleFunc("/api/v1/search", a.handleSearch)
	mux.HandleFunc("/api/v1/notices", a.handleNotices)
	mux.HandleFunc("/api/v1/share/whatsapp", a.handleShareWhatsApp)

	return a.withMiddleware(mux)
}

func (a *API) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Access-Control-Allow-Origin", a.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+sessionHeader)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
		w.Header().Set("Vary", "Origin")

		if r.Method == http.MethodPost || r.Method == http.MethodPatch {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		startedAt := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(startedAt))
	})
}

// session resolves the caller's session from the X-Session-ID header. A
// missing header is a client error; the response is written here.
func (a *API) session(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	id := strings.TrimSpace(r.Header.Get(sessionHeader))
	if id == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing "+sessionHeader+" header"))
		return nil, false
	}
	s, err := a.manager.Session(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return s, true
}

// requireAdmin verifies the bearer token and attaches the admin user to the
// request context for the service layer's own check.
func (a *API) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorization := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
			writeError(w, http.StatusUnauthorized, errors.New("missing bearer token"))
			return
		}
		token := strings.TrimSpace(authorization[len("Bearer "):])
		user, err := a.manager.Auth().ParseToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		if !user.IsAdmin {
			writeError(w, http.StatusForbidden, service.ErrAdminRequired)
			return
		}
		next(w, r.WithContext(service.WithUser(r.Context(), user)))
	}
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	var req domain.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := s.Login(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	var req domain.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := s.Register(r.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrAccountExists) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}
	if err := s.Logout(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (a *API) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	q := r.URL.Query()
	filter := view.Filter{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		PriceRange: q.Get("price_range"),
		Color:      q.Get("color"),
		SortBy:     view.SortKey(q.Get("sort")),
	}

	products := view.FilterProducts(catalog.Products(), filter)
	writeJSON(w, http.StatusOK, map[string]any{
		"products":   products,
		"categories": catalog.Categories,
	})
}

func (a *API) handleCatalogItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/api/v1/catalog/")
	product, err := s.ViewProduct(productID)
	if err != nil {
		writeError(w, serviceStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product":          product,
		"discount_percent": view.DiscountPercent(product),
		"deal":             view.HasDealBadge(product),
	})
}

func (a *API) handleCart(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.writeCart(w, s, 0)
	case http.MethodPost:
		var req struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if err := s.AddToCart(req.ProductID, req.Quantity); err != nil {
			writeError(w, serviceStatus(err), err)
			return
		}
		a.writeCart(w, s, 0)
	case http.MethodDelete:
		if err := s.ClearCart(); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		a.writeCart(w, s, 0)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleCartItem(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, r)
	if !ok {
		return
	}
	productID := strings.TrimPrefix(r.URL.Path, "/api/v1/cart/items/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, errors.New("product id required"))
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.UpdateQuantity(productID, req.Quantity); err != nil {
			writeError(w, serviceStatus(err), err)
			return
		}
		a.writeCart(w, s, 0)
	case http.MethodDelete:
		if err := s.RemoveFromCart(productID); err != nil {
			writeError(w, serviceStatus(err), err)
			return
		}
		a.writeCart(w, s, 0)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleCoupon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	totals, err := s.ApplyCoupon(req.Code)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  s.Snapshot().Cart,
		"totals": totals,
	})
}

func (a *API) writeCart(w http.ResponseWriter, s *service.Session, discount int64) {
	cart := s.Snapshot().Cart
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  cart,
		"totals": view.CartTotals(cart, discount),
	})
}

func (a *API) handleWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"products": s.Snapshot().Wishlist})
	case http.MethodPost:
		var req struct {
			ProductID string `json:"product_id"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.ToggleWishlist(req.ProductID); err != nil {
			writeError(w, serviceStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": s.Snapshot().Wishlist})
	case http.MethodDelete:
		if err := s.ClearWishlist(); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": s.Snapshot().Wishlist})
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleWishlistItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}
	productID := strings.TrimPrefix(r.URL.Path, "/api/v1/wishlist/")
	if err := s.RemoveFromWishlist(productID); err != nil {
		writeError(w, serviceStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": s.Snapshot().Wishlist})
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	var req domain.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order, err := s.Checkout(r.Context(), req)
	if err != nil {
		writeError(w, serviceStatus(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.CheckoutResponse{Order: order})
}

func (a *API) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": s.Snapshot().Orders})
}

func (a *API) handleOrderActions(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/orders/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "status" {
		writeError(w, http.StatusBadRequest, errors.New("invalid order action path"))
		return
	}
	if r.Method != http.MethodPatch {
		writeMethodNotAllowed(w)
		return
	}
	a.requireAdmin(func(w http.ResponseWriter, r *http.Request) {
		s, ok := a.session(w, r)
		if !ok {
			return
		}

		var req struct {
			Status domain.OrderStatus `json:"status"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		var (
			order domain.Order
			err   error
		)
		if req.Status == domain.StatusCancelled {
			order, err = s.CancelOrder(r.Context(), parts[0])
		} else {
			order, err = s.AdvanceOrder(r.Context(), parts[0], req.Status)
		}
		if err != nil {
			writeError(w, serviceStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"order": order})
	})(w, r)
}

func (a *API) handleRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": s.Snapshot().RecentlyViewed})
}

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	s, ok := a.session(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		snap := s.Snapshot()
		products := view.FilterProducts(snap.Products, view.Filter{Query: snap.SearchQuery})
		writeJSON(w, http.StatusOK, map[string]any{
			"query":    snap.SearchQuery,
			"products": products,
		})
	case http.MethodPost:
		var req struct {
			Query string `json:"query"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.SetSearchQuery(req.Query); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"query": req.Query})
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleNotices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notices": s.Notices()})
}

func (a *API) handleShareWhatsApp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	s, ok := a.session(w, r)
	if !ok {
		return
	}
	message := share.CartMessage(s.Snapshot().Cart)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"link":    share.DeepLink(a.whatsAppLink, message),
	})
}

// serviceStatus maps service and domain errors to HTTP statuses.
func serviceStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownProduct),
		errors.Is(err, service.ErrUnknownOrder),
		errors.Is(err, persist.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, view.ErrInvalidCoupon),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, state.ErrInvalidAction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrCheckoutInFlight):
		return http.StatusConflict
	case errors.Is(err, service.ErrAdminRequired):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if status >= 500 {
		log.Printf("internal error (status %d): %v", status, err)
		msg = "internal server error"
	}
	writeJSON(w, status, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
