package sqlite

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	"github.com/dwikikusuma/naija-assistant/pkg/sqlite"
)

func newTestRepo(t *testing.T) *CartRepo {
	t.Helper()
	db, err := sqlite.Open(sqlite.Config{Path: filepath.Join(t.TempDir(), "cart.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCartRepo(db)
}

func item(id int64, qty int32) domain.CartItem {
	return domain.CartItem{ProductID: id, Title: "Garri", Price: 2500, Quantity: qty, Image: "/g.jpg", Merchant: "Mama Nkechi Foods"}
}

func TestCartRepo_AddMergesByProduct(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddItem(ctx, "u1", item(13, 1))
	require.NoError(t, err)
	items, err := repo.AddItem(ctx, "u1", item(13, 2))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, item(13, 3), items[0])
}

func TestCartRepo_AddRejectsQuantityOverflow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddItem(ctx, "u1", item(13, math.MaxInt32))
	require.NoError(t, err)

	_, err = repo.AddItem(ctx, "u1", item(13, 1))
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	items, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(math.MaxInt32), items[0].Quantity)
}

func TestCartRepo_SetItemQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("zero removes", func(t *testing.T) {
		repo := newTestRepo(t)
		_, err := repo.AddItem(ctx, "u1", item(13, 3))
		require.NoError(t, err)

		items, err := repo.SetItemQuantity(ctx, "u1", 13, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("positive sets", func(t *testing.T) {
		repo := newTestRepo(t)
		_, err := repo.AddItem(ctx, "u1", item(13, 3))
		require.NoError(t, err)

		items, err := repo.SetItemQuantity(ctx, "u1", 13, 5)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int32(5), items[0].Quantity)
	})

	t.Run("absent -> not found", func(t *testing.T) {
		repo := newTestRepo(t)
		_, err := repo.SetItemQuantity(ctx, "u1", 13, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCartRepo_RemoveAndClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddItem(ctx, "u1", item(13, 1))
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, "u1", item(14, 1))
	require.NoError(t, err)

	items, err := repo.RemoveItem(ctx, "u1", 99)
	require.NoError(t, err)
	assert.Len(t, items, 2, "removing an absent product is a no-op")

	items, err = repo.RemoveItem(ctx, "u1", 13)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(14), items[0].ProductID)

	require.NoError(t, repo.Clear(ctx, "u1"))
	items, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRepo_ConcurrentAddItemIncrement(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const N = 50
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := repo.AddItem(gctx, "u1", item(13, 1))
			return err
		})
	}
	require.NoError(t, g.Wait())

	items, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(N), items[0].Quantity)
}
