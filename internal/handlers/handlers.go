// Package handlers implements HTTP handlers for the payment gateway API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/benx421/payment-gateway/gateway/internal/models"
	"github.com/benx421/payment-gateway/gateway/internal/service"
	"github.com/benx421/payment-gateway/gateway/internal/validation"
)

// Handler serves the payment endpoints
type Handler struct {
	paymentService service.Payments
	logger         *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(paymentService service.Payments, logger *slog.Logger) *Handler {
	return &Handler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// paymentResponse is the public shape of a payment record. The authorization
// code is deliberately absent.
type paymentResponse struct {
	ID                 string                 `json:"id"`
	Status             models.PaymentStatus   `json:"status"`
	CardNumberLastFour string                 `json:"card_number_last_four"`
	Currency           string                 `json:"currency"`
	ValidationErrors   []validation.Violation `json:"validation_errors,omitempty"`
	ExpiryMonth        int                    `json:"expiry_month"`
	ExpiryYear         int                    `json:"expiry_year"`
	Amount             int64                  `json:"amount"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newPaymentResponse(payment *models.Payment) paymentResponse {
	return paymentResponse{
		ID:                 formatPaymentID(payment.ID),
		Status:             payment.Status,
		CardNumberLastFour: payment.CardNumberLastFour,
		Currency:           payment.Currency,
		ExpiryMonth:        payment.ExpiryMonth,
		ExpiryYear:         payment.ExpiryYear,
		Amount:             payment.Amount,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
