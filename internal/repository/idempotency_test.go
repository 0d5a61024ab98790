package repository

import (
	"context"
	"testing"
	"time"

	"github.com/benx421/payment-gateway/gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_StoreAndGet(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour)
	ctx := context.Background()

	idemKey := &models.IdempotencyKey{
		Key:            "key-1",
		RequestPath:    "/api/v1/payments",
		ResponseStatus: 200,
		ResponseBody:   `{"id":"pay_x"}`,
		CreatedAt:      time.Now(),
	}

	require.NoError(t, repo.Store(ctx, idemKey))

	cached, err := repo.Get(ctx, "key-1", "/api/v1/payments")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 200, cached.ResponseStatus)
	assert.Equal(t, `{"id":"pay_x"}`, cached.ResponseBody)
}

func TestIdempotencyRepository_Get_Miss(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour)

	cached, err := repo.Get(context.Background(), "unknown", "/api/v1/payments")

	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestIdempotencyRepository_KeyIsScopedToPath(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
		Key:         "key-1",
		RequestPath: "/api/v1/payments",
	}))

	cached, err := repo.Get(ctx, "key-1", "/api/v1/other")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestIdempotencyRepository_ExpiredEntryIsDropped(t *testing.T) {
	repo := NewIdempotencyRepository(-time.Second) // everything is already expired
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
		Key:         "key-1",
		RequestPath: "/api/v1/payments",
	}))

	cached, err := repo.Get(ctx, "key-1", "/api/v1/payments")
	require.NoError(t, err)
	assert.Nil(t, cached)
}
