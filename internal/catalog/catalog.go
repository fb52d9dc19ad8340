// Package catalog filters fetched products in memory.
package catalog

import (
	"math"
	"slices"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
)

// Filter narrows a product list. Zero values disable a criterion.
type Filter struct {
	Categories []string
	MaxPrice   float64
	MinRating  float64
}

// Apply keeps the input order. A product without a rating never passes a
// positive MinRating.
func (f Filter) Apply(products []api.Product) []api.Product {
	out := make([]api.Product, 0, len(products))
	for _, p := range products {
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.CategoryName()) {
			continue
		}
		if f.MaxPrice > 0 && p.Price.Float() > f.MaxPrice {
			continue
		}
		if f.MinRating > 0 {
			rating, ok := p.RatingValue()
			if !ok || rating < f.MinRating {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Categories lists distinct non-empty category names in first-seen order.
func Categories(products []api.Product) []string {
	var out []string
	for _, p := range products {
		name := p.CategoryName()
		if name != "" && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// MaxPrice is the highest price in products rounded up, or 0 when empty.
func MaxPrice(products []api.Product) float64 {
	highest := 0.0
	for _, p := range products {
		highest = math.Max(highest, p.Price.Float())
	}
	return math.Ceil(highest)
}

// CartSummary totals a cart.
type CartSummary struct {
	Items    int
	Subtotal float64
}

func CartTotal(items []api.CartItem) CartSummary {
	var s CartSummary
	for _, it := range items {
		if it.Quantity > 0 {
			s.Items += it.Quantity
		}
		s.Subtotal += it.LineTotal()
	}
	return s
}
