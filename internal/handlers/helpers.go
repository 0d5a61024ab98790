package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/benx421/payment-gateway/gateway/internal/service"
	"github.com/google/uuid"
)

// PrefixPayment is the ID prefix used in API responses
const PrefixPayment = "pay_"

func formatPaymentID(id uuid.UUID) string {
	return PrefixPayment + id.String()
}

func parsePaymentID(id string) (uuid.UUID, error) {
	if !strings.HasPrefix(id, PrefixPayment) {
		return uuid.Nil, fmt.Errorf("invalid payment ID format: missing %s prefix", PrefixPayment)
	}

	parsed, err := uuid.Parse(strings.TrimPrefix(id, PrefixPayment))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid payment ID format: %w", err)
	}

	return parsed, nil
}

func decodeJSONBody(r *http.Request, dst any) error {
	defer func() {
		_ = r.Body.Close() //nolint:errcheck // nothing useful to do on close failure
	}()

	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}
