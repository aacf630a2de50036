package catalog

import "testing"

func TestProductFixturesAreWellFormed(t *testing.T) {
	categories := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		categories[c] = true
	}

	seen := make(map[string]bool)
	for _, p := range Products() {
		if p.ID == "" {
			t.Fatalf("product without id: %+v", p)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true

		if !categories[p.Category] {
			t.Fatalf("product %q has unknown category %q", p.ID, p.Category)
		}
		if p.OfferPrice <= 0 || p.OfferPrice > p.Price {
			t.Fatalf("product %q has inconsistent pricing: price=%d offer=%d", p.ID, p.Price, p.OfferPrice)
		}
		if p.Stock < 0 {
			t.Fatalf("product %q has negative stock", p.ID)
		}
	}
}

func TestProductsReturnsACopy(t *testing.T) {
	first := Products()
	first[0].Name = "tampered"

	if Products()[0].Name == "tampered" {
		t.Fatalf("mutating the returned slice leaked into the fixtures")
	}
}
