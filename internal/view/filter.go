package view

import (
	"sort"
	"strings"

	"elampillai/storefront/internal/domain"
)

// SortKey selects the ordering of a filtered product list.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// Price brackets on the offer price, matching the storefront filter options.
const (
	PriceUnder500 = "under500"
	Price500To1K  = "500-1000"
	Price1KTo2K   = "1000-2000"
	PriceAbove2K  = "above2000"
)

// Filter is the product-list filter configuration. Zero values mean "no
// constraint"; an unset SortBy falls back to popularity.
type Filter struct {
	Query      string
	Category   string
	PriceRange string
	Color      string
	SortBy     SortKey
}

// FilterProducts returns the products matching the filter, sorted by the
// configured key. Sorting is stable: ties preserve catalog order. The input
// slice is not modified.
func FilterProducts(products []domain.Product, f Filter) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(p, f) {
			result = append(result, p)
		}
	}
	sortProducts(result, f.SortBy)
	return result
}

// MatchesQuery reports whether the free-text query matches the product on any
// of name, category, color, fabric, or description, case-insensitively. An
// empty query matches everything.
func MatchesQuery(p domain.Product, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range []string{p.Name, p.Category, p.Color, p.Fabric, p.Description} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesFilter(p domain.Product, f Filter) bool {
	if !MatchesQuery(p, f.Query) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Color != "" && p.Color != f.Color {
		return false
	}
	switch f.PriceRange {
	case PriceUnder500:
		return p.OfferPrice < 500
	case Price500To1K:
		return p.OfferPrice >= 500 && p.OfferPrice <= 1000
	case Price1KTo2K:
		return p.OfferPrice >= 1000 && p.OfferPrice <= 2000
	case PriceAbove2K:
		return p.OfferPrice > 2000
	}
	return true
}

func sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].OfferPrice < products[j].OfferPrice
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].OfferPrice > products[j].OfferPrice
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// Popular: hot counts double, new counts once, ties keep catalog order.
		sort.SliceStable(products, func(i, j int) bool {
			return popularScore(products[i]) > popularScore(products[j])
		})
	}
}

func popularScore(p domain.Product) int {
	score := 0
	if p.IsHot {
		score += 2
	}
	if p.IsNew {
		score++
	}
	return score
}
