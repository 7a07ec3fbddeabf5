package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/infra/nlu/rules"
	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
	"github.com/dwikikusuma/naija-assistant/pkg/config"
	"github.com/dwikikusuma/naija-assistant/pkg/logger"
)

func TestNewStore_Backends(t *testing.T) {
	sqlitePath := filepath.Join(t.TempDir(), "store.db")

	for _, backend := range []string{config.BackendMemory, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.Default()
			cfg.StoreBackend = backend
			cfg.SQLitePath = sqlitePath

			store, closeFn, err := NewStore(ctx, cfg, logger.Discard())
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeFn()) }()

			p, err := store.FindProductByExactName(ctx, "Garri")
			require.NoError(t, err)

			items, err := store.AddToCart(ctx, "u1", cartdomain.CartItem{ProductID: p.ID, Title: p.Title, Price: p.Price, Quantity: 1})
			require.NoError(t, err)
			assert.Len(t, items, 1)
		})
	}
}

func TestNewServices_SQLiteSeedsOnce(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.StoreBackend = config.BackendSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "store.db")

	for range 2 {
		svcs, err := NewServices(ctx, cfg, logger.Discard())
		require.NoError(t, err)
		products, err := svcs.Catalog.ListProducts(ctx, catalogdomain.Filter{})
		require.NoError(t, err)
		assert.Len(t, products, 15)
		require.NoError(t, svcs.Close())
	}
}

func TestNewServices_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.StoreBackend = "postgres"
	_, err := NewServices(context.Background(), cfg, logger.Discard())
	assert.Error(t, err)
}

func TestNewClassifier(t *testing.T) {
	ctx := context.Background()

	c, err := NewClassifier(ctx, config.NLUConfig{Provider: config.NLURules}, logger.Discard())
	require.NoError(t, err)
	assert.IsType(t, rules.Classifier{}, c)

	_, err = NewClassifier(ctx, config.NLUConfig{Provider: config.NLULLM}, logger.Discard())
	assert.Error(t, err, "llm provider needs a model")

	_, err = NewClassifier(ctx, config.NLUConfig{Provider: "spacy"}, logger.Discard())
	assert.Error(t, err)
}
