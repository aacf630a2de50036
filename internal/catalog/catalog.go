// Package catalog holds the static product fixtures that seed every
// storefront session. The catalog is read-only input; there is no update
// mechanism.
package catalog

import "elampillai/storefront/internal/domain"

var Categories = []string{
	"Silk Sarees",
	"Cotton Sarees",
	"Designer Sarees",
	"Wedding Collection",
	"Daily Wear",
}

// Products returns a fresh copy of the seeded catalog so callers can never
// mutate the fixtures through a shared slice.
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

var products = []domain.Product{
	{
		ID:          "prod-kanchi-01",
		Name:        "Kanchipuram Pure Silk Saree",
		Category:    "Silk Sarees",
		Subcategory: "Kanchipuram",
		Fabric:      "Pure Silk",
		Color:       "Maroon",
		Pattern:     "Zari Border",
		Description: "Handwoven Kanchipuram silk with traditional temple border and rich gold zari work.",
		Price:       8999,
		OfferPrice:  6999,
		Stock:       12,
		Thumbnail:   "/images/kanchi-01.jpg",
		Images:      []string{"/images/kanchi-01.jpg", "/images/kanchi-01-b.jpg"},
		IsHot:       true,
		Rating:      4.8,
		Reviews:     214,
		Tags:        []string{"wedding", "silk", "zari"},
	},
	{
		ID:          "prod-banarasi-01",
		Name:        "Banarasi Brocade Saree",
		Category:    "Silk Sarees",
		Subcategory: "Banarasi",
		Fabric:      "Silk Brocade",
		Color:       "Royal Blue",
		Pattern:     "Floral Brocade",
		Description: "Classic Banarasi weave with intricate floral brocade in antique gold.",
		Price:       7499,
		OfferPrice:  5999,
		Stock:       8,
		Thumbnail:   "/images/banarasi-01.jpg",
		IsNew:       true,
		IsHot:       true,
		Rating:      4.7,
		Reviews:     168,
		Tags:        []string{"wedding", "banarasi"},
	},
	{
		ID:          "prod-cotton-01",
		Name:        "Elampillai Soft Cotton Saree",
		Category:    "Cotton Sarees",
		Subcategory: "Handloom",
		Fabric:      "Cotton",
		Color:       "Red",
		Pattern:     "Checked",
		Description: "Lightweight handloom cotton saree woven in Elampillai, ideal for daily wear.",
		Price:       1499,
		OfferPrice:  999,
		Stock:       40,
		Thumbnail:   "/images/cotton-01.jpg",
		Rating:      4.4,
		Reviews:     523,
		Tags:        []string{"daily", "cotton"},
	},
	{
		ID:          "prod-cotton-02",
		Name:        "Chettinad Cotton Saree",
		Category:    "Cotton Sarees",
		Subcategory: "Chettinad",
		Fabric:      "Cotton",
		Color:       "Mustard",
		Pattern:     "Striped",
		Description: "Bold Chettinad stripes in earthy mustard with a contrast pallu.",
		Price:       1299,
		OfferPrice:  899,
		Stock:       35,
		Thumbnail:   "/images/cotton-02.jpg",
		IsNew:       true,
		Rating:      4.3,
		Reviews:     301,
		Tags:        []string{"daily", "cotton", "handloom"},
	},
	{
		ID:          "prod-chiffon-01",
		Name:        "Floral Chiffon Saree",
		Category:    "Designer Sarees",
		Subcategory: "Chiffon",
		Fabric:      "Chiffon",
		Color:       "Pink",
		Pattern:     "Floral Print",
		Description: "Feather-light chiffon with a pastel floral print and sequined border.",
		Price:       2499,
		OfferPrice:  1799,
		Stock:       22,
		Thumbnail:   "/images/chiffon-01.jpg",
		IsOffer:     true,
		Rating:      4.2,
		Reviews:     97,
		Tags:        []string{"party", "chiffon"},
	},
	{
		ID:          "prod-georgette-01",
		Name:        "Embroidered Georgette Saree",
		Category:    "Designer Sarees",
		Subcategory: "Georgette",
		Fabric:      "Georgette",
		Color:       "Teal",
		Pattern:     "Embroidered",
		Description: "Flowing georgette with thread embroidery and stone highlights.",
		Price:       3299,
		OfferPrice:  2499,
		Stock:       18,
		Thumbnail:   "/images/georgette-01.jpg",
		IsOffer:     true,
		Rating:      4.5,
		Reviews:     142,
		Tags:        []string{"party", "georgette"},
	},
	{
		ID:          "prod-wedding-01",
		Name:        "Bridal Silk Saree with Stone Work",
		Category:    "Wedding Collection",
		Subcategory: "Bridal",
		Fabric:      "Pure Silk",
		Color:       "Crimson",
		Pattern:     "Stone Work",
		Description: "Grand bridal silk with heavy stone work, matching blouse piece included.",
		Price:       15999,
		OfferPrice:  12999,
		Stock:       5,
		Thumbnail:   "/images/wedding-01.jpg",
		IsHot:       true,
		Rating:      4.9,
		Reviews:     86,
		Tags:        []string{"bridal", "wedding", "silk"},
	},
	{
		ID:          "prod-wedding-02",
		Name:        "Muhurtham Pattu Saree",
		Category:    "Wedding Collection",
		Subcategory: "Pattu",
		Fabric:      "Pure Silk",
		Color:       "Green",
		Pattern:     "Temple Border",
		Description: "Auspicious green pattu saree with wide temple border for muhurtham ceremonies.",
		Price:       11499,
		OfferPrice:  9499,
		Stock:       7,
		Thumbnail:   "/images/wedding-02.jpg",
		IsNew:       true,
		Rating:      4.6,
		Reviews:     54,
		Tags:        []string{"wedding", "pattu"},
	},
	{
		ID:          "prod-daily-01",
		Name:        "Printed Mysore Silk Saree",
		Category:    "Daily Wear",
		Subcategory: "Mysore Silk",
		Fabric:      "Semi Silk",
		Color:       "Lavender",
		Pattern:     "Printed",
		Description: "Soft semi-silk with delicate prints, easy drape for office and daily wear.",
		Price:       1999,
		OfferPrice:  1499,
		Stock:       30,
		Thumbnail:   "/images/daily-01.jpg",
		Rating:      4.1,
		Reviews:     228,
		Tags:        []string{"daily", "office"},
	},
	{
		ID:          "prod-daily-02",
		Name:        "Linen Blend Saree",
		Category:    "Daily Wear",
		Subcategory: "Linen",
		Fabric:      "Linen",
		Color:       "Off White",
		Pattern:     "Plain",
		Description: "Breathable linen blend with a slim silver border, understated and elegant.",
		Price:       1799,
		OfferPrice:  1299,
		Stock:       26,
		Thumbnail:   "/images/daily-02.jpg",
		IsNew:       true,
		Rating:      4.0,
		Reviews:     119,
		Tags:        []string{"daily", "linen"},
	},
	{
		ID:          "prod-silk-03",
		Name:        "Soft Silk Saree with Contrast Pallu",
		Category:    "Silk Sarees",
		Subcategory: "Soft Silk",
		Fabric:      "Soft Silk",
		Color:       "Peacock Blue",
		Pattern:     "Contrast Pallu",
		Description: "Lustrous soft silk in peacock blue with a contrasting magenta pallu.",
		Price:       4999,
		OfferPrice:  3999,
		Stock:       15,
		Thumbnail:   "/images/silk-03.jpg",
		IsOffer:     true,
		Rating:      4.5,
		Reviews:     176,
		Tags:        []string{"festive", "silk"},
	},
	{
		ID:          "prod-designer-02",
		Name:        "Ruffle Border Party Saree",
		Category:    "Designer Sarees",
		Subcategory: "Ruffle",
		Fabric:      "Lycra",
		Color:       "Black",
		Pattern:     "Ruffle Border",
		Description: "Contemporary ruffle-border saree in jet black, pre-stitched drape option.",
		Price:       2899,
		OfferPrice:  2199,
		Stock:       20,
		Thumbnail:   "/images/designer-02.jpg",
		IsHot:       true,
		IsNew:       true,
		Rating:      4.3,
		Reviews:     63,
		Tags:        []string{"party", "modern"},
	},
}
