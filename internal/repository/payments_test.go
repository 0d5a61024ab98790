package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/benx421/payment-gateway/gateway/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_AddAndFind(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	payment := &models.Payment{
		ID:                 uuid.New(),
		CardNumberLastFour: "0001",
		Currency:           "GBP",
		Amount:             100,
		ExpiryMonth:        11,
		ExpiryYear:         2030,
		Status:             models.PaymentStatusAuthorized,
		AuthorizationCode:  "code",
	}

	require.NoError(t, repo.Add(ctx, payment))

	found, err := repo.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment, found)
}

func TestPaymentRepository_FindByID_NotFound(t *testing.T) {
	repo := NewPaymentRepository()

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPaymentRepository_StoredRecordIsIsolated(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	payment := &models.Payment{ID: uuid.New(), Status: models.PaymentStatusDeclined}
	require.NoError(t, repo.Add(ctx, payment))

	// Mutating the caller's copy must not affect the stored record.
	payment.Status = models.PaymentStatusAuthorized

	found, err := repo.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusDeclined, found.Status)
}

func TestPaymentRepository_ConcurrentAccess(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	const workers = 50

	ids := make([]uuid.UUID, workers)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Add(ctx, &models.Payment{ID: ids[i], Status: models.PaymentStatusAuthorized})
			_, _ = repo.FindByID(ctx, ids[(i+1)%workers])
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, found.ID)
	}
}
