package repository

import (
	"context"
	"sync"
	"time"

	"github.com/benx421/payment-gateway/gateway/internal/models"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

type idempotencyEntry struct {
	key  models.IdempotencyKey
	seen time.Time
}

// idempotencyRepository is the in-memory implementation. Entries expire after
// the configured TTL so the map does not grow without bound.
type idempotencyRepository struct {
	mu      sync.Mutex
	entries map[string]idempotencyEntry
	ttl     time.Duration
}

// NewIdempotencyRepository creates an in-memory idempotency store whose
// entries expire after ttl.
func NewIdempotencyRepository(ttl time.Duration) IdempotencyRepository {
	return &idempotencyRepository{
		entries: make(map[string]idempotencyEntry),
		ttl:     ttl,
	}
}

func cacheKey(key, requestPath string) string {
	return requestPath + "\x00" + key
}

// Get returns the cached response for the key and path, or nil when absent
// or expired.
func (r *idempotencyRepository) Get(_ context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[cacheKey(key, requestPath)]
	if !ok {
		return nil, nil
	}

	if time.Since(entry.seen) > r.ttl {
		delete(r.entries, cacheKey(key, requestPath))
		return nil, nil
	}

	cached := entry.key
	return &cached, nil
}

// Store records the response to replay for subsequent requests with the same key.
func (r *idempotencyRepository) Store(_ context.Context, idemKey *models.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[cacheKey(idemKey.Key, idemKey.RequestPath)] = idempotencyEntry{
		key:  *idemKey,
		seen: time.Now(),
	}
	return nil
}
