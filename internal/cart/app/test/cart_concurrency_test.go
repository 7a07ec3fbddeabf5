package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/naija-assistant/internal/cart/app"
	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	"github.com/dwikikusuma/naija-assistant/internal/cart/infra/memory"
	cartsqlite "github.com/dwikikusuma/naija-assistant/internal/cart/infra/sqlite"
	"github.com/dwikikusuma/naija-assistant/pkg/logger"
	"github.com/dwikikusuma/naija-assistant/pkg/sqlite"
)

func newTestServices(t *testing.T) map[string]*app.Service {
	t.Helper()

	db, err := sqlite.Open(sqlite.Config{Path: filepath.Join(t.TempDir(), "cart.db")})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return map[string]*app.Service{
		"memory": app.NewService(memory.NewCartRepo(), app.WithLogger(logger.Discard())),
		"sqlite": app.NewService(cartsqlite.NewCartRepo(db), app.WithLogger(logger.Discard())),
	}
}

func TestCart_ConcurrentAddItemIncrement(t *testing.T) {
	for name, svc := range newTestServices(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			userID := uuid.NewString()
			item := domain.CartItem{ProductID: 13, Title: "Garri", Price: 2500, Quantity: 1}

			const N = 100
			g, gctx := errgroup.WithContext(ctx)
			for i := 0; i < N; i++ {
				g.Go(func() error {
					_, err := svc.AddItem(gctx, userID, item)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				t.Fatalf("concurrent AddItem failed: %v", err)
			}

			items, err := svc.GetCart(ctx, userID)
			if err != nil {
				t.Fatalf("GetCart failed: %v", err)
			}
			if len(items) != 1 {
				t.Fatalf("expected exactly 1 cart line, got %d: %+v", len(items), items)
			}
			if items[0].Quantity != N {
				t.Fatalf("expected quantity=%d, got=%d", N, items[0].Quantity)
			}
		})
	}
}

func TestCart_ConcurrentUsersAreIsolated(t *testing.T) {
	for name, svc := range newTestServices(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			users := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

			const perUser = 20
			g, gctx := errgroup.WithContext(ctx)
			for _, u := range users {
				for i := 0; i < perUser; i++ {
					g.Go(func() error {
						_, err := svc.AddItem(gctx, u, domain.CartItem{ProductID: int64(i%2 + 1), Quantity: 1})
						return err
					})
				}
			}
			if err := g.Wait(); err != nil {
				t.Fatalf("concurrent AddItem failed: %v", err)
			}

			for _, u := range users {
				items, err := svc.GetCart(ctx, u)
				if err != nil {
					t.Fatalf("GetCart failed: %v", err)
				}
				if len(items) != 2 {
					t.Fatalf("user %s: expected 2 lines, got %d", u, len(items))
				}
				var total int32
				for _, it := range items {
					total += it.Quantity
				}
				if total != perUser {
					t.Fatalf("user %s: expected total quantity %d, got %d", u, perUser, total)
				}
			}
		})
	}
}
