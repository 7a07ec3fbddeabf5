package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrInvalidFilter = errors.New("invalid filter")
)

type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	Rating      *float64 `json:"rating,omitempty"`
	Merchant    string   `json:"merchant,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Description string   `json:"description,omitempty"`
}

// TitleKey is the case-folded form titles are matched on. Every repository
// compares keys, so exact-name lookups agree across backends for non-ASCII
// titles too.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// RatingOrZero treats a missing rating as 0 for ordering.
func (p Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func (p Product) HasCategory(c string) bool {
	for _, pc := range p.Categories {
		if pc == c {
			return true
		}
	}
	return false
}

type SortBy string

const (
	SortNone      SortBy = ""
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortRating    SortBy = "rating"
)

func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortNone, SortPriceLow, SortPriceHigh, SortRating:
		return SortBy(s), nil
	}
	return SortNone, fmt.Errorf("%w: unknown sort %q", ErrInvalidFilter, s)
}

// Filter narrows a product listing. All set fields apply conjunctively;
// price bounds are inclusive.
type Filter struct {
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	SortBy   SortBy   `json:"sort_by,omitempty"`
}
