package service

import (
	"github.com/benx421/payment-gateway/gateway/internal/acquiring"
	"github.com/benx421/payment-gateway/gateway/internal/models"
)

// ResolveStatus maps a validation outcome and bank result to the terminal
// payment status.
//
// A bank result carrying an error message means "the bank could not process
// this" and is kept distinct from a plain decline; that includes the client's
// own pre-flight rejection ("Invalid payment request"). Faults inside the
// gateway itself are not resolved here — the orchestrator maps those to
// GatewayError directly.
func ResolveStatus(validationPassed bool, result *acquiring.PaymentResult) models.PaymentStatus {
	if !validationPassed {
		return models.PaymentStatusRejected
	}

	switch {
	case result.Authorized:
		return models.PaymentStatusAuthorized
	case result.ErrorMessage != "":
		return models.PaymentStatusBankError
	default:
		return models.PaymentStatusDeclined
	}
}
