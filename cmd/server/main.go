package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/cache"
	"github.com/oggyb/muzz-dating/internal/config"
	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/handler"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/seed"
	"github.com/oggyb/muzz-dating/internal/server"
	"github.com/oggyb/muzz-dating/internal/service/account"
	"github.com/oggyb/muzz-dating/internal/service/conversation"
	"github.com/oggyb/muzz-dating/internal/service/discovery"
	"github.com/oggyb/muzz-dating/internal/service/matching"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}
	defer db.Close(database)

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	appCtx := app.New(cfg, database, redisCache, log)

	issuer := auth.NewIssuer(cfg)
	accounts := account.NewService(appCtx, issuer)
	engine := matching.NewEngine(appCtx)
	filter := discovery.NewFilter(appCtx, engine)
	gate := conversation.NewGate(appCtx)

	if cfg.App.Seed {
		if err := seed.SeedTestData(context.Background(), appCtx); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	grpcServer := server.NewGRPCServer(log, issuer,
		account.NewRegistrar(accounts),
		matching.NewRegistrar(engine),
		discovery.NewRegistrar(filter),
		conversation.NewRegistrar(gate),
	)

	router := handler.Setup(appCtx, issuer, handler.Services{
		Account:   account.NewGRPCServer(accounts),
		Match:     matching.NewGRPCServer(engine),
		Discovery: discovery.NewGRPCServer(filter),
		Chat:      conversation.NewGRPCServer(gate),
	})
	httpServer := server.NewHTTPServer(cfg, router)

	errCh := make(chan error, 2)
	go func() {
		log.Info("starting gRPC server", "addr", cfg.GRPC.Host+":"+cfg.GRPC.Port)
		errCh <- server.StartGRPCServer(cfg, grpcServer)
	}()
	go func() {
		log.Info("starting HTTP server", "addr", httpServer.Addr)
		errCh <- server.StartHTTPServer(httpServer)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", "err", err)
		}
	}

	if err := server.ShutdownHTTPServer(httpServer, shutdownTimeout); err != nil {
		log.Error("http shutdown", "err", err)
	}
	grpcServer.GracefulStop()
	log.Info("bye")
}
