// Command authsrv runs the credential-issuance daemon: it loads settings,
// connects to the key-value store, and serves the HTTP surface until
// interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"authsrv"
	"authsrv/identity"
	"authsrv/internal/httpapi"
	"authsrv/internal/settings"
)

func main() {
	configPath := flag.String("config", settings.DefaultPath, "path to the settings file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("authsrv exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := settings.Load(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = rdb.Close() }()

	serviceCfg := authsrv.DefaultConfig()
	serviceCfg.Token.TTL = time.Duration(cfg.Token.TTLSeconds) * time.Second

	resolver := identity.NewGraphResolver(cfg.External.Endpoint, cfg.External.IdentityPrefix, nil)

	svc, err := authsrv.New().
		WithConfig(serviceCfg).
		WithRedis(rdb).
		WithResolver(resolver).
		Build()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	latency, err := svc.Ping(pingCtx)
	cancel()
	if err != nil {
		return err
	}
	logger.Info("store reachable", "addr", cfg.Redis.Addr, "latency", latency)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	httpapi.NewServer(svc, logger).Routes(engine)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
