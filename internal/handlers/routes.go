package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/benx421/payment-gateway/gateway/internal/acquiring"
	"github.com/benx421/payment-gateway/gateway/internal/api"
	"github.com/benx421/payment-gateway/gateway/internal/middleware"
	"github.com/benx421/payment-gateway/gateway/internal/repository"
	"github.com/benx421/payment-gateway/gateway/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// idempotencyTTL bounds how long a cached POST response is replayed.
const idempotencyTTL = 24 * time.Hour

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	payments repository.PaymentRepository,
	bank acquiring.Authorizer,
	logger *slog.Logger,
) http.Handler {
	paymentService := service.NewPaymentService(payments, bank, logger)
	handler := NewHandler(paymentService, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	mux.HandleFunc("POST /api/v1/payments", handler.CreatePayment)
	mux.HandleFunc("GET /api/v1/payments/{paymentId}", handler.GetPayment)
	mux.HandleFunc("GET /health", handler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	var finalHandler http.Handler = mux

	idempotencyRepo := repository.NewIdempotencyRepository(idempotencyTTL)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	finalHandler = middleware.RequestMetrics("gateway")(finalHandler)

	return finalHandler
}
