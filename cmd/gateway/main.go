package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	assistantapp "github.com/dwikikusuma/naija-assistant/internal/assistant/app"
	"github.com/dwikikusuma/naija-assistant/internal/bootstrap"
	"github.com/dwikikusuma/naija-assistant/internal/gateway/httpapi"
	"github.com/dwikikusuma/naija-assistant/pkg/config"
	"github.com/dwikikusuma/naija-assistant/pkg/logger"
	"github.com/dwikikusuma/naija-assistant/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, closeStore, err := bootstrap.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error("store init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("store close failed", slog.Any("err", err))
		}
	}()

	nlu, err := bootstrap.NewClassifier(ctx, cfg.NLU, log)
	if err != nil {
		log.Error("nlu init failed", slog.Any("err", err))
		os.Exit(1)
	}

	h := httpapi.New(httpapi.Options{
		Assistant:     assistantapp.NewService(nlu, store, log),
		Store:         store,
		Logger:        log,
		DefaultUserID: cfg.DefaultUserID,
		ShippingFee:   cfg.ShippingFee,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr), slog.String("nlu", cfg.NLU.Provider))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http server error", slog.Any("err", err))
	}
	log.Info("bye")
}
