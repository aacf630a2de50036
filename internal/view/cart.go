// Package view holds the derived view model: pure computations over store
// state, recomputed on read and never stored.
package view

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"elampillai/storefront/internal/domain"
)

const (
	// FreeShippingThreshold is the subtotal at and above which shipping is free.
	FreeShippingThreshold int64 = 1000
	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee int64 = 50
)

// couponCode is the single supported promotion; a placeholder for a real
// promotions engine.
const (
	couponCode        = "FIRST10"
	couponPercentRate = 0.10
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// Totals is the computed price breakdown for a cart.
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	Savings   int64 `json:"savings"`
	Shipping  int64 `json:"shipping"`
	Discount  int64 `json:"discount"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"item_count"`
}

// CartTotals computes the full price breakdown. discount is any already
// validated coupon discount; it is subtracted from the final total.
func CartTotals(cart []domain.CartItem, discount int64) Totals {
	t := Totals{Discount: discount}
	for _, item := range cart {
		t.Subtotal += item.LineTotal()
		t.Savings += (item.Product.Price - item.Product.OfferPrice) * int64(item.Quantity)
		t.ItemCount += item.Quantity
	}
	if t.Subtotal < FreeShippingThreshold {
		t.Shipping = FlatShippingFee
	}
	t.Total = t.Subtotal + t.Shipping - discount
	return t
}

// CouponDiscount maps a coupon code to its discount on the given subtotal.
// Unknown codes return ErrInvalidCoupon. Matching is case-insensitive.
func CouponDiscount(code string, subtotal int64) (int64, error) {
	if !strings.EqualFold(strings.TrimSpace(code), couponCode) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoupon, code)
	}
	return int64(math.Round(float64(subtotal) * couponPercentRate)), nil
}

// DiscountPercent is the rounded percentage off between list and offer price.
// Products without a meaningful list price report zero.
func DiscountPercent(p domain.Product) int {
	if p.Price <= 0 || p.OfferPrice >= p.Price {
		return 0
	}
	return int(math.Round(float64(p.Price-p.OfferPrice) / float64(p.Price) * 100))
}

// dealBadgeThreshold is the discount percentage above which a product earns
// the "deal" badge.
const dealBadgeThreshold = 15

func HasDealBadge(p domain.Product) bool {
	return DiscountPercent(p) > dealBadgeThreshold
}
