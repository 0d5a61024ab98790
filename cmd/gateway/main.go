package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/payment-gateway/gateway/internal/acquiring"
	"github.com/benx421/payment-gateway/gateway/internal/config"
	"github.com/benx421/payment-gateway/gateway/internal/handlers"
	"github.com/benx421/payment-gateway/gateway/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payment gateway",
		"port", cfg.Server.Port,
		"acquiring_bank_url", cfg.AcquiringBank.URL,
		"log_level", cfg.Logger.Level,
	)

	// The payment store lives for the whole process; records are not
	// persisted beyond it.
	payments := repository.NewPaymentRepository()
	bank := acquiring.NewClient(&cfg.AcquiringBank, logger)

	router := handlers.NewRouter(payments, bank, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
