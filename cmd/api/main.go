package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/molpadia/molpashow/internal/app"
	"github.com/molpadia/molpashow/internal/config"
	"github.com/molpadia/molpashow/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	flag.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "web server address")
	flag.StringVar(&cfg.Server.CertFile, "cert", cfg.Server.CertFile, "path of TLS certificate file")
	flag.StringVar(&cfg.Server.KeyFile, "key", cfg.Server.KeyFile, "path of TLS private key file")
	flag.StringVar(&cfg.Store.Backend, "store", cfg.Store.Backend, "video store backend: memory, file, sqlite, redis, dynamodb or s3")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	ctx := context.Background()
	store, err := persistence.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	videos := persistence.NewVideoRepository(store, cfg.Store.Key, logger)
	c := app.NewController(videos, logger, app.WithCreatedBy(cfg.CreatedBy))

	r := mux.NewRouter()
	c.SetupRoutes(r)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Server.Addr,
		WriteTimeout: cfg.Server.WriteTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr), zap.String("store", cfg.Store.Backend))
		var err error
		if cfg.Server.CertFile != "" && cfg.Server.KeyFile != "" {
			err = srv.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	logger, err := buildLogger(zap.NewProductionConfig())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}

// Build a JSON logger stamping entries with an ISO-8601 "timestamp" field.
func buildLogger(zcfg zap.Config) (*zap.Logger, error) {
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
