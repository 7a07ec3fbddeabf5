package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

// Search applies the free-text query and filter to products without
// reordering anything it does not have to: ties keep catalog order.
// A category outside known is rejected rather than matching nothing.
func Search(products []domain.Product, query string, f domain.Filter, known map[string]struct{}) ([]domain.Product, error) {
	if f.Category != "" {
		if _, ok := known[f.Category]; !ok {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidFilter, f.Category)
		}
	}
	sortBy, err := domain.ParseSortBy(string(f.SortBy))
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if f.Category != "" && !p.HasCategory(f.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch sortBy {
	case domain.SortPriceLow:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmpFloat(a.Price, b.Price) })
	case domain.SortPriceHigh:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmpFloat(b.Price, a.Price) })
	case domain.SortRating:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmpFloat(b.RatingOrZero(), a.RatingOrZero()) })
	}
	return out, nil
}

func matchesQuery(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, c := range p.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Categories returns the set of category names present in products.
func Categories(products []domain.Product) map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range products {
		for _, c := range p.Categories {
			set[c] = struct{}{}
		}
	}
	return set
}
