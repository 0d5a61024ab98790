// Package repository provides storage for payment records.
package repository

import (
	"context"
	"sync"

	"github.com/benx421/payment-gateway/gateway/internal/models"
	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment record storage
type PaymentRepository interface {
	Add(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

// paymentRepository is the in-memory implementation. It owns the records for
// the process lifetime; records are copied on the way in and out so callers
// cannot mutate stored state. Safe for concurrent use.
type paymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]models.Payment
}

// NewPaymentRepository creates an empty in-memory payment store.
func NewPaymentRepository() PaymentRepository {
	return &paymentRepository{
		payments: make(map[uuid.UUID]models.Payment),
	}
}

// Add inserts a payment keyed by its identifier. Identifiers are generated by
// the orchestrator and assumed unique.
func (r *paymentRepository) Add(_ context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[payment.ID] = *payment
	return nil
}

// FindByID returns the payment with the given identifier, or models.ErrNotFound.
func (r *paymentRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	return &payment, nil
}
