package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

func ptr(v float64) *float64 { return &v }

func fixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Garri", Price: 2500, Categories: []string{"food"}, Rating: ptr(4.3)},
		{ID: 2, Title: "Ankara Tote", Price: 4500, Categories: []string{"fashion"}, Description: "bag", Rating: ptr(4.5)},
		{ID: 3, Title: "Yellow Garri", Price: 3200, Categories: []string{"food"}},
		{ID: 4, Title: "Ijebu Garri", Price: 2500, Categories: []string{"food"}, Rating: ptr(4.6)},
		{ID: 5, Title: "Zobo", Price: 1800, Categories: []string{"beverages"}, Description: "hibiscus drink with GARRI flavour"},
	}
}

func ids(ps []domain.Product) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	products := fixture()
	known := Categories(products)

	t.Run("query matches title, description, category case-insensitively", func(t *testing.T) {
		got, err := Search(products, "garri", domain.Filter{}, known)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3, 4, 5}, ids(got))

		got, err = Search(products, "FASH", domain.Filter{}, known)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, ids(got))
	})

	t.Run("price-low is ascending and stable on ties", func(t *testing.T) {
		got, err := Search(products, "garri", domain.Filter{SortBy: domain.SortPriceLow}, known)
		require.NoError(t, err)
		assert.Equal(t, []int64{5, 1, 4, 3}, ids(got))
	})

	t.Run("price-high is descending and stable on ties", func(t *testing.T) {
		got, err := Search(products, "", domain.Filter{SortBy: domain.SortPriceHigh}, known)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 1, 4, 5}, ids(got))
	})

	t.Run("rating treats missing as zero", func(t *testing.T) {
		got, err := Search(products, "", domain.Filter{SortBy: domain.SortRating}, known)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 2, 1, 3, 5}, ids(got))
	})

	t.Run("filters are conjunctive with inclusive bounds", func(t *testing.T) {
		got, err := Search(products, "garri", domain.Filter{Category: "food", MinPrice: ptr(2500), MaxPrice: ptr(3200)}, known)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3, 4}, ids(got))

		got, err = Search(products, "garri", domain.Filter{MaxPrice: ptr(2499)}, known)
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, ids(got))
	})

	t.Run("unknown category -> invalid filter", func(t *testing.T) {
		_, err := Search(products, "garri", domain.Filter{Category: "electronics"}, known)
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})

	t.Run("unknown sort -> invalid filter", func(t *testing.T) {
		_, err := Search(products, "", domain.Filter{SortBy: "newest"}, known)
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})

	t.Run("no match -> empty, not error", func(t *testing.T) {
		got, err := Search(products, "plantain", domain.Filter{}, known)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
