package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	assistantapp "github.com/dwikikusuma/naija-assistant/internal/assistant/app"
	"github.com/dwikikusuma/naija-assistant/internal/bootstrap"
	"github.com/dwikikusuma/naija-assistant/pkg/config"
	"github.com/dwikikusuma/naija-assistant/pkg/logger"
)

// env is what every subcommand runs against.
type env struct {
	cfg       config.Config
	store     bootstrap.Store
	assistant *assistantapp.Service
	close     func() error
}

type envFactory func(ctx context.Context, cfg config.Config, log *slog.Logger) (*env, error)

func newEnv(ctx context.Context, cfg config.Config, log *slog.Logger) (*env, error) {
	store, closeStore, err := bootstrap.NewStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	nlu, err := bootstrap.NewClassifier(ctx, cfg.NLU, log)
	if err != nil {
		_ = closeStore()
		return nil, err
	}
	return &env{
		cfg:       cfg,
		store:     store,
		assistant: assistantapp.NewService(nlu, store, log),
		close:     closeStore,
	}, nil
}

type rootFlags struct {
	storeAddr string
	backend   string
	nlu       string
	verbose   bool
}

func newRootCmd(factory envFactory) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:          "assistant",
		Short:        "Talk to the shopping assistant from the terminal",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.storeAddr, "store-addr", "", "gRPC address of a running store (default: in-process store)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "in-process store backend: memory or sqlite")
	root.PersistentFlags().StringVar(&flags.nlu, "nlu", "", "nlu provider: rules or llm")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log to stderr")

	// setup loads config, applies flag overrides and builds the env.
	setup := func(cmd *cobra.Command) (*env, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if flags.storeAddr != "" {
			cfg.StoreAddr = flags.storeAddr
		}
		if flags.backend != "" {
			cfg.StoreBackend = flags.backend
		}
		if flags.nlu != "" {
			cfg.NLU.Provider = flags.nlu
		}

		log := logger.Discard()
		if flags.verbose {
			log = logger.New(logger.Options{Service: "assistant-cli", Env: cfg.AppEnv, Level: "debug", Format: "text", Writer: os.Stderr})
		}
		return factory(cmd.Context(), cfg, log)
	}

	root.AddCommand(
		newAskCmd(setup),
		newChatCmd(setup),
		newSearchCmd(setup),
		newCategoriesCmd(setup),
		newAddProductCmd(setup),
	)
	return root
}
