package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodapp/internal/config"
	"foodapp/internal/diagnostics"
	"foodapp/internal/infrastructure/logger"
	"foodapp/internal/menu"
	"foodapp/internal/order"
	"foodapp/internal/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("reading .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), connectTimeout)
	docStore, err := openStore(connectCtx, cfg)
	cancelConnect()
	if err != nil {
		zapLogger.Fatal("opening document store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	zapLogger.Info("document store ready", zap.String("driver", cfg.Store.Driver), zap.String("database", docStore.Name()))

	publisher, err := newPublisher(cfg.Kafka, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating order event publisher", zap.Error(err))
	}

	router := server.NewRouter(cfg.Server, server.Controllers{
		Diagnostics: diagnostics.NewModule(docStore, *cfg, zapLogger),
		Menu:        menu.NewModule(docStore, cfg.Menu, zapLogger),
		Orders:      order.NewModule(docStore, publisher, zapLogger),
	}, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		zapLogger.Error("closing order event publisher", zap.Error(err))
	}
	if err := docStore.Close(ctx); err != nil {
		zapLogger.Error("closing document store", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
