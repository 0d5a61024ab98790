package service

import (
	"fmt"

	"github.com/benx421/payment-gateway/gateway/internal/validation"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err        error
	Message    string
	Code       string
	Violations []validation.Violation
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeValidationFailed = "validation_failed"
	ErrCodePaymentNotFound  = "payment_not_found"
	ErrCodeGatewayError     = "gateway_error"
	ErrCodeInternalError    = "internal_error"
)
