package domain

import "time"

// Product is a catalog record. Products are loaded once from the catalog
// source and never mutated by the store; state slices hold copies but always
// treat them as read-only.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Fabric      string   `json:"fabric"`
	Color       string   `json:"color"`
	Pattern     string   `json:"pattern"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	OfferPrice  int64    `json:"offer_price"`
	Stock       int      `json:"stock"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images,omitempty"`
	IsNew       bool     `json:"is_new,omitempty"`
	IsHot       bool     `json:"is_hot,omitempty"`
	IsOffer     bool     `json:"is_offer,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Tags        []string `json:"tags,omitempty"`
}

// CartItem pairs a product with a purchase quantity. The cart holds at most
// one CartItem per product ID; adding an already-present product merges by
// incrementing the quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the offer price of the line, quantity included.
func (c CartItem) LineTotal() int64 {
	return c.Product.OfferPrice * int64(c.Quantity)
}

// Address is the structured delivery address captured at checkout.
// Landmark and Email are optional; everything else is required.
type Address struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	AddressLine string `json:"address_line"`
	Landmark    string `json:"landmark,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

// Order is an immutable snapshot created at checkout completion. Only the
// status (and its history) may change afterwards, through Transition.
type Order struct {
	ID               string         `json:"id"`
	Items            []CartItem     `json:"items"`
	Subtotal         int64          `json:"subtotal"`
	Shipping         int64          `json:"shipping"`
	Discount         int64          `json:"discount"`
	Total            int64          `json:"total"`
	Address          Address        `json:"address"`
	PaymentMethod    string         `json:"payment_method"`
	PaymentStatus    string         `json:"payment_status"`
	PaymentReference string         `json:"payment_reference,omitempty"`
	Status           OrderStatus    `json:"status"`
	StatusHistory    []StatusChange `json:"status_history"`
	CreatedAt        time.Time      `json:"created_at"`
}

// StatusChange is one entry of an order's status history.
type StatusChange struct {
	State     OrderStatus `json:"state"`
	Timestamp time.Time   `json:"timestamp"`
}

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"is_admin"`
}

// Notice is a transient user-facing message. Kind affects presentation only.
type Notice struct {
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

const (
	PaymentCOD        = "cod"
	PaymentUPI        = "upi"
	PaymentCard       = "card"
	PaymentNetBanking = "netbanking"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

type CheckoutRequest struct {
	Address          Address `json:"address"`
	PaymentMethod    string  `json:"payment_method"`
	CouponCode       string  `json:"coupon_code,omitempty"`
	PaymentReference string  `json:"payment_reference,omitempty"`
}

type CheckoutResponse struct {
	Order Order `json:"order"`
}
