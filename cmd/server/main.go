package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/example/sabouha-storefront/internal/api"
	"github.com/example/sabouha-storefront/internal/auth"
	"github.com/example/sabouha-storefront/internal/config"
	"github.com/example/sabouha-storefront/internal/messaging"
	"github.com/example/sabouha-storefront/internal/shop"
	"github.com/example/sabouha-storefront/internal/store"
)

func initLogger(cfg config.LoggerConfig) {
	var core zapcore.Core
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if cfg.Mode == "development" {
		level = zapcore.DebugLevel
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stdout),
		level,
	)
	if cfg.FileEnable {
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    100,
				MaxBackups: 3,
				MaxAge:     28,
			}),
			level,
		)
		core = zapcore.NewTee(consoleCore, fileCore)
	} else {
		core = consoleCore
	}

	zap.ReplaceGlobals(zap.New(core, zap.AddCaller()))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	initLogger(cfg.Logger)
	defer func() { _ = zap.S().Sync() }()

	db, err := store.ConnectPostgres(cfg.Postgres.DSN())
	if err != nil {
		zap.S().Fatalf("connect postgres: %v", err)
	}
	defer db.Close()

	gateway := store.NewPostgresGateway(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := gateway.EnsureSchema(ctx); err != nil {
		cancel()
		zap.S().Fatalf("ensure schema: %v", err)
	}
	cancel()

	kv, err := store.OpenBolt(cfg.Bolt.Path)
	if err != nil {
		zap.S().Fatalf("open local store: %v", err)
	}
	defer kv.Close()

	var orders messaging.Publisher
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		producer := messaging.NewProducer(brokers, cfg.Kafka.Topic)
		defer producer.Close()
		orders = producer
		zap.S().Infow("order publishing enabled", "topic", cfg.Kafka.Topic)
	} else {
		zap.S().Info("no kafka brokers configured, order publishing disabled")
	}

	s := shop.New(gateway, kv, orders)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	s.Load(loadCtx)
	loadCancel()

	tokens := auth.NewTokenService(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiry)
	handlers := api.NewHandlers(s, tokens, cfg.Admin.PasswordHash)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      api.NewRouter(handlers),
		ReadTimeout:  cfg.HTTPServer.TimeoutRead,
		WriteTimeout: cfg.HTTPServer.TimeoutWrite,
		IdleTimeout:  cfg.HTTPServer.TimeoutIdle,
	}

	go func() {
		zap.S().Infow("starting storefront server", "port", cfg.HTTPServer.Port, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorf("server shutdown: %v", err)
	}

	// Drain pending persistence writes before the stores close.
	s.Flush()
	zap.S().Info("server stopped")
}
