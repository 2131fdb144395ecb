package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/eternalApril/respkit/internal/config"
	"github.com/eternalApril/respkit/internal/logger"
	"github.com/eternalApril/respkit/internal/server"
	"github.com/eternalApril/respkit/internal/store"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	log.Info("respkit starting",
		zap.String("port", cfg.Server.Port),
		zap.Uint("shards", cfg.Storage.Shards),
	)

	db, err := store.NewShardedStore(cfg.Storage.Shards)
	if err != nil {
		log.Error("cant initialize storage", zap.Error(err))
		return
	}

	engine := server.NewEngine(db, log)

	var auth server.Authenticator
	if cfg.Server.RequirePass != "" {
		auth = server.NewPasswordAuthenticator(cfg.Server.RequirePass)
	}

	address := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	srv := server.New(address, engine, auth, log)

	if err := srv.Listen(); err != nil {
		log.Error("listener error", zap.Error(err))
		return
	}
	log.Info("listening on", zap.String("address", srv.Addr()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		log.Error("serve error", zap.Error(err))
	}

	log.Info("respkit stopped")
}
