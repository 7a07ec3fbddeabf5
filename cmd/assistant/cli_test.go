package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
	catalogapp "github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
	"github.com/dwikikusuma/naija-assistant/pkg/config"
)

// memoryEnv forces an in-process memory store and the rules classifier so
// tests never depend on the caller's environment.
func memoryEnv(ctx context.Context, cfg config.Config, log *slog.Logger) (*env, error) {
	cfg.StoreAddr = ""
	cfg.StoreBackend = config.BackendMemory
	cfg.NLU.Provider = config.NLURules
	return newEnv(ctx, cfg, log)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(memoryEnv)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAskCmd(t *testing.T) {
	out, err := run(t, "", "ask", "find", "garri")
	require.NoError(t, err)
	assert.Contains(t, out, "I found Garri from Mama Nkechi Foods for ₦2,500.00.")
}

func TestAskCmd_JSON(t *testing.T) {
	out, err := run(t, "", "ask", "--json", "hello")
	require.NoError(t, err)

	var res domain.Response
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "greeting", res.Intent)
}

func TestAskCmd_RequiresMessage(t *testing.T) {
	_, err := run(t, "", "ask")
	assert.Error(t, err)
}

func TestChatCmd_KeepsCartAcrossLines(t *testing.T) {
	in := "add Garri from Mama Nkechi Foods\nshow my cart\nexit\nhello\n"
	out, err := run(t, in, "chat", "--user", "ada")
	require.NoError(t, err)

	assert.Contains(t, out, "Chatting as ada.")
	assert.Contains(t, out, "Added Garri")
	assert.Contains(t, out, "[navigate /cart]")
	assert.NotContains(t, out, "Hello!", "input after exit is ignored")
}

func TestChatCmd_FreshSessionUser(t *testing.T) {
	out, err := run(t, "show my cart\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "Chatting as cli-")
	assert.Contains(t, out, "Your cart is empty.")
}

func TestSearchCmd(t *testing.T) {
	t.Run("query with sort", func(t *testing.T) {
		out, err := run(t, "", "search", "garri", "--sort", "price-high", "--json")
		require.NoError(t, err)

		var products []catalogdomain.Product
		require.NoError(t, json.Unmarshal([]byte(out), &products))
		require.Len(t, products, 3)
		assert.Equal(t, int64(14), products[0].ID)
	})

	t.Run("price bounds", func(t *testing.T) {
		out, err := run(t, "", "search", "--category", "food", "--max-price", "2000")
		require.NoError(t, err)
		assert.Contains(t, out, "Organic Hibiscus Tea (50g)")
		assert.NotContains(t, out, "Garri")
	})

	t.Run("no match", func(t *testing.T) {
		out, err := run(t, "", "search", "laptop")
		require.NoError(t, err)
		assert.Contains(t, out, "No products found.")
	})

	t.Run("unknown category -> error", func(t *testing.T) {
		_, err := run(t, "", "search", "--category", "vehicles")
		assert.ErrorIs(t, err, catalogdomain.ErrInvalidFilter)
	})
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "", "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	assert.Equal(t, "accessories", lines[0])
	assert.Contains(t, lines, "groceries")
}

func TestAddProductCmd(t *testing.T) {
	t.Run("valid -> listed", func(t *testing.T) {
		out, err := run(t, "", "add-product", "Plantain Chips", "--price", "700", "--category", "food", "--category", "snacks")
		require.NoError(t, err)
		assert.Contains(t, out, "Listed product 16: Plantain Chips")
	})

	t.Run("duplicate title -> error", func(t *testing.T) {
		_, err := run(t, "", "add-product", "Garri", "--price", "100", "--category", "food")
		assert.ErrorIs(t, err, catalogapp.ErrInvalidInput)
	})

	t.Run("missing category -> error", func(t *testing.T) {
		_, err := run(t, "", "add-product", "Zobo Drink", "--price", "500")
		assert.Error(t, err)
	})
}
