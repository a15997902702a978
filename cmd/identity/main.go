// Command identity runs the credential and token lifecycle service: it
// registers accounts, exchanges credentials for bearer tokens, and serves
// the token-gated API.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/identity/internal/auth/password"
	"github.com/skillsenselab/identity/internal/auth/token"
	"github.com/skillsenselab/identity/internal/config"
	"github.com/skillsenselab/identity/internal/logger"
	"github.com/skillsenselab/identity/internal/observability"
	"github.com/skillsenselab/identity/internal/server"
	"github.com/skillsenselab/identity/internal/server/endpoint"
	"github.com/skillsenselab/identity/internal/server/middleware"
	"github.com/skillsenselab/identity/internal/service"
	"github.com/skillsenselab/identity/internal/store"
	"github.com/skillsenselab/identity/internal/version"
)

const serviceName = "identity"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		logger.NewDefault(serviceName).Fatal("failed to load configuration", logger.ErrorFields("load_config", err))
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, serviceName)
	log.Info("starting", logger.Fields(
		"version", version.Version,
		"environment", cfg.Environment,
	))

	if err := run(cfg, log); err != nil {
		log.Fatal("service exited", logger.ErrorFields("run", err))
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.Init(ctx, cfg.Observability,
		cfg.Name, version.Version, cfg.Environment, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", logger.ErrorFields("tracer_shutdown", err))
		}
	}()

	users, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	tokens, err := token.NewService(cfg.Auth)
	if err != nil {
		return err
	}
	hasher := password.NewBcryptHasher()

	authSvc := service.NewAuthService(users, hasher, tokens, log)
	userSvc := service.NewUserService(users, log)
	handler := server.NewHandler(authSvc, userSvc, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	if cfg.Observability.Enabled {
		srv.GinEngine().Use(middleware.Tracing())
	}

	var pinger endpoint.Pinger
	if gs, ok := users.(*store.GormStore); ok {
		pinger = gs
	}
	srv.RegisterRoutes(cfg.Name, handler, tokens.Verify, pinger)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("listening", logger.Fields("addr", srv.Addr()))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// openStore opens the persistent store, or falls back to the in-memory
// store when persistence is disabled.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (store.UserStore, func(), error) {
	if !cfg.Store.Enabled {
		log.Warn("persistent store disabled, using in-memory store")
		return store.NewMemoryStore(), func() {}, nil
	}

	gs, err := store.Open(ctx, cfg.Store, log)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := gs.Close(); err != nil {
			log.Warn("store close failed", logger.ErrorFields("store_close", err))
		}
	}
	return gs, closer, nil
}
