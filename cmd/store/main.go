package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	cartv1 "github.com/dwikikusuma/naija-assistant/api/cartv1"
	catalogv1 "github.com/dwikikusuma/naija-assistant/api/catalogv1"
	"github.com/dwikikusuma/naija-assistant/internal/bootstrap"
	cartgrpc "github.com/dwikikusuma/naija-assistant/internal/cart/grpc"
	cataloggrpc "github.com/dwikikusuma/naija-assistant/internal/catalog/grpc"
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
	log := logger.New(logger.Options{Service: "store", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	svcs, err := bootstrap.NewServices(ctx, cfg, log)
	if err != nil {
		log.Error("store init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer func() {
		if err := svcs.Close(); err != nil {
			log.Error("store close failed", slog.Any("err", err))
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(grpcServer, cataloggrpc.NewServer(svcs.Catalog))
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(svcs.Cart))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("grpc starting", slog.String("addr", addr), slog.String("backend", cfg.StoreBackend))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		stopGracefully(grpcServer, log)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("grpc serve error", slog.Any("err", err))
	}
	log.Info("bye")
}

func stopGracefully(s *grpc.Server, log *slog.Logger) {
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopCtx.Done():
		log.Warn("graceful stop timeout, forcing stop")
		s.Stop()
	case <-stopped:
	}
}
