// Package bootstrap builds the services, store and classifier the binaries
// share from a config.Config.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	assistantapp "github.com/dwikikusuma/naija-assistant/internal/assistant/app"
	"github.com/dwikikusuma/naija-assistant/internal/assistant/infra/adapter"
	"github.com/dwikikusuma/naija-assistant/internal/assistant/infra/nlu/llm"
	"github.com/dwikikusuma/naija-assistant/internal/assistant/infra/nlu/rules"
	cartapp "github.com/dwikikusuma/naija-assistant/internal/cart/app"
	cartkafka "github.com/dwikikusuma/naija-assistant/internal/cart/infra/kafka"
	cartmemory "github.com/dwikikusuma/naija-assistant/internal/cart/infra/memory"
	cartsqlite "github.com/dwikikusuma/naija-assistant/internal/cart/infra/sqlite"
	catalogapp "github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
	catalogmemory "github.com/dwikikusuma/naija-assistant/internal/catalog/infra/memory"
	catalogsqlite "github.com/dwikikusuma/naija-assistant/internal/catalog/infra/sqlite"
	"github.com/dwikikusuma/naija-assistant/pkg/config"
	"github.com/dwikikusuma/naija-assistant/pkg/sqlite"
)

// Store is what the gateway and CLI need from the catalog and cart,
// in-process or remote.
type Store interface {
	assistantapp.Gateway
	GetProduct(ctx context.Context, id int64) (catalogdomain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, p catalogdomain.Product) (catalogdomain.Product, error)
}

type Services struct {
	Catalog *catalogapp.Service
	Cart    *cartapp.Service

	closers []func() error
}

// NewServices wires the catalog and cart on the configured backend. The
// catalog is seeded when empty. Cart events go to Kafka when brokers are
// configured.
func NewServices(ctx context.Context, cfg config.Config, log *slog.Logger) (*Services, error) {
	s := &Services{}

	var (
		productRepo catalogapp.ProductRepo
		cartRepo    cartapp.CartRepo
	)
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		productRepo = catalogmemory.NewProductRepo(catalogmemory.SeedProducts()...)
		cartRepo = cartmemory.NewCartRepo()

	case config.BackendSQLite:
		db, err := sqlite.Open(sqlite.Config{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		repo := catalogsqlite.NewProductRepo(db)
		n, err := repo.Seed(ctx, catalogmemory.SeedProducts())
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		if n > 0 {
			log.Info("catalog seeded", slog.Int("products", n), slog.String("path", cfg.SQLitePath))
		}
		productRepo = repo
		cartRepo = cartsqlite.NewCartRepo(db)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	opts := []cartapp.Option{cartapp.WithLogger(log)}
	if len(cfg.Kafka.Brokers) > 0 {
		pub := cartkafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.CartTopic)
		s.closers = append(s.closers, pub.Close)
		opts = append(opts, cartapp.WithPublisher(pub))
		log.Info("cart events enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.CartTopic))
	}

	s.Catalog = catalogapp.NewService(productRepo)
	s.Cart = cartapp.NewService(cartRepo, opts...)
	return s, nil
}

// Close releases resources in reverse order of acquisition.
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// NewStore dials the store process when cfg.StoreAddr is set and otherwise
// runs the services in-process. The returned func releases the store.
func NewStore(ctx context.Context, cfg config.Config, log *slog.Logger) (Store, func() error, error) {
	if cfg.StoreAddr != "" {
		conn, err := adapter.DialStore(cfg.StoreAddr)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using remote store", slog.String("addr", cfg.StoreAddr))
		return adapter.NewRemote(conn), conn.Close, nil
	}

	svcs, err := NewServices(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return adapter.NewLocal(svcs.Catalog, svcs.Cart), svcs.Close, nil
}

func NewClassifier(ctx context.Context, cfg config.NLUConfig, log *slog.Logger) (assistantapp.Classifier, error) {
	switch cfg.Provider {
	case config.NLURules, "":
		return rules.New(), nil
	case config.NLULLM:
		return llm.NewArkClassifier(ctx, llm.Config{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
		}, log)
	}
	return nil, fmt.Errorf("unknown nlu provider %q", cfg.Provider)
}
