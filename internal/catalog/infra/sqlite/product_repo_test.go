package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
	"github.com/dwikikusuma/naija-assistant/internal/catalog/infra/memory"
	"github.com/dwikikusuma/naija-assistant/pkg/sqlite"
)

func newTestRepo(t *testing.T) *ProductRepo {
	t.Helper()
	db, err := sqlite.Open(sqlite.Config{Path: filepath.Join(t.TempDir(), "catalog.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProductRepo(db)
}

func TestProductRepo_SeedOnlyWhenEmpty(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.Seed(ctx, memory.SeedProducts())
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	n, err = repo.Seed(ctx, memory.SeedProducts())
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 15)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, []string{"accessories", "fashion"}, all[0].Categories)
	require.NotNil(t, all[0].Rating)
	assert.Equal(t, 4.5, *all[0].Rating)
	assert.Nil(t, all[13].Rating, "Yellow Garri has no rating")
}

func TestProductRepo_GetByTitleIgnoresCase(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	_, err := repo.Seed(ctx, memory.SeedProducts())
	require.NoError(t, err)

	p, err := repo.GetByTitle(ctx, "GARRI")
	require.NoError(t, err)
	assert.Equal(t, int64(13), p.ID)

	_, err = repo.GetByTitle(ctx, "garr")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Get(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_GetByTitleFoldsNonASCII(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Product{Title: "Àkàrà Mix", Price: 1200, Categories: []string{"food"}})
	require.NoError(t, err)

	for _, name := range []string{"àkàrà mix", "ÀKÀRÀ MIX", "  Àkàrà Mix "} {
		p, err := repo.GetByTitle(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, created.ID, p.ID)
		assert.Equal(t, "Àkàrà Mix", p.Title)
	}
}

func TestProductRepo_CreateRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Product{
		ID:          77,
		Title:       "Plantain Chips",
		Price:       700,
		Categories:  []string{"food", "snacks"},
		Merchant:    "Crunchy Naija",
		Description: "Salted",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID, "caller ids are ignored on create")
	assert.Equal(t, []string{"food", "snacks"}, created.Categories)
	assert.Nil(t, created.Rating)
	assert.Equal(t, "Crunchy Naija", created.Merchant)
}
