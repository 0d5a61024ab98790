// Package service implements the payment submission and retrieval flow.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/payment-gateway/gateway/internal/acquiring"
	"github.com/benx421/payment-gateway/gateway/internal/models"
	"github.com/benx421/payment-gateway/gateway/internal/repository"
	"github.com/benx421/payment-gateway/gateway/internal/validation"
	"github.com/google/uuid"
)

// Payments handles payment submission and retrieval operations
type Payments interface {
	Submit(ctx context.Context, req *models.PostPaymentRequest) (*models.Payment, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

// PaymentService orchestrates validation, the acquiring bank call, status
// resolution, and persistence for each submission.
type PaymentService struct {
	payments repository.PaymentRepository
	bank     acquiring.Authorizer
	logger   *slog.Logger
	now      func() time.Time
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	payments repository.PaymentRepository,
	bank acquiring.Authorizer,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		payments: payments,
		bank:     bank,
		logger:   logger,
		now:      time.Now,
	}
}

var _ Payments = (*PaymentService)(nil)

// Submit runs a payment request through the full pipeline. Every attempt is
// persisted under a fresh identifier regardless of outcome, so each record is
// auditable afterward. The returned error, when non-nil, is a *ServiceError
// describing either a validation rejection or a gateway fault; bank declines
// and bank errors are normal outcomes carried in the record's status.
func (s *PaymentService) Submit(ctx context.Context, req *models.PostPaymentRequest) (*models.Payment, error) {
	payment := &models.Payment{
		ID:                 uuid.New(),
		CardNumberLastFour: lastFour(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
		CreatedAt:          s.now(),
	}

	if violations := validation.Validate(req, s.now()); len(violations) > 0 {
		payment.Status = models.PaymentStatusRejected
		s.persist(ctx, payment)

		s.logger.Info("payment rejected",
			"payment_id", payment.ID,
			"violations", len(violations),
		)
		return payment, &ServiceError{
			Code:       ErrCodeValidationFailed,
			Message:    "payment request failed validation",
			Violations: violations,
		}
	}

	bankReq := &acquiring.PaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate(),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}

	result, fault := s.callBank(ctx, bankReq)
	if fault != nil {
		payment.Status = models.PaymentStatusGatewayError
		s.persist(ctx, payment)

		s.logger.Error("gateway fault during payment submission",
			"payment_id", payment.ID,
			"error", fault,
		)
		return payment, &ServiceError{
			Code:    ErrCodeGatewayError,
			Message: "internal error",
			Err:     fault,
		}
	}

	payment.Status = ResolveStatus(true, result)
	if payment.Status == models.PaymentStatusAuthorized {
		payment.AuthorizationCode = result.AuthorizationCode
	}
	s.persist(ctx, payment)

	s.logger.Info("payment processed",
		"payment_id", payment.ID,
		"status", payment.Status,
	)
	return payment, nil
}

// Get retrieves a stored payment by its identifier.
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodePaymentNotFound,
				Message: "payment not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to look up payment",
			Err:     err,
		}
	}

	return payment, nil
}

// callBank invokes the acquiring client, converting a panic or a missing
// result into an error so the submission always reaches its single persist
// point. The client contract is to report failures inside the result, so
// anything else is a fault in the gateway's own process.
func (s *PaymentService) callBank(ctx context.Context, req *acquiring.PaymentRequest) (result *acquiring.PaymentResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("acquiring bank call panicked: %v", r)
		}
	}()

	result = s.bank.Authorize(ctx, req)
	if result == nil {
		return nil, fmt.Errorf("acquiring bank client returned no result")
	}
	return result, nil
}

func (s *PaymentService) persist(ctx context.Context, payment *models.Payment) {
	if err := s.payments.Add(ctx, payment); err != nil {
		s.logger.Error("failed to persist payment record",
			"payment_id", payment.ID,
			"error", err,
		)
	}
}

func lastFour(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
