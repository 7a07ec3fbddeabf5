package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
)

func TestSelect(t *testing.T) {
	ents := entities("Garri", "product", "Mama Nkechi Foods", "store", "Palm Oil", "product")

	t.Run("several matches -> first in order", func(t *testing.T) {
		e, ok := Select(ents, domain.LabelProduct)
		assert.True(t, ok)
		assert.Equal(t, "Garri", e.Text)
	})

	t.Run("single match", func(t *testing.T) {
		e, ok := Select(ents, domain.LabelStore)
		assert.True(t, ok)
		assert.Equal(t, "Mama Nkechi Foods", e.Text)
	})

	t.Run("no match -> none", func(t *testing.T) {
		_, ok := Select(ents, "quantity")
		assert.False(t, ok)
	})

	t.Run("label is case-sensitive", func(t *testing.T) {
		_, ok := Select(entities("Garri", "Product"), domain.LabelProduct)
		assert.False(t, ok)
	})

	t.Run("empty input -> none", func(t *testing.T) {
		_, ok := Select(nil, domain.LabelProduct)
		assert.False(t, ok)
	})
}
