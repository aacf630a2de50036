// Package share builds WhatsApp enquiry messages and deep links for the
// storefront's chat-to-order flow.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"elampillai/storefront/internal/domain"
)

const browseMessage = "Hi! I'm browsing your saree collection and would like to know more about your products."

// CartMessage renders the cart as a WhatsApp order enquiry. An empty cart
// falls back to a generic browsing message.
func CartMessage(cart []domain.CartItem) string {
	if len(cart) == 0 {
		return browseMessage
	}

	lines := make([]string, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, fmt.Sprintf("• %s (Qty: %d) - ₹%d", item.Product.Name, item.Quantity, item.LineTotal()))
	}

	return "Hi! I'm interested in ordering:\n\n" + strings.Join(lines, "\n") + "\n\nPlease confirm availability."
}

// ProductInquiry renders a single-product enquiry message.
func ProductInquiry(product domain.Product) string {
	return fmt.Sprintf("Hi! I'm interested in %s (₹%d). Is it available?", product.Name, product.OfferPrice)
}

// DeepLink joins a wa.me style base URL with a pre-filled message.
func DeepLink(baseURL, message string) string {
	return baseURL + "?text=" + url.QueryEscape(message)
}
