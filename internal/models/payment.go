// Package models defines the domain types shared across the gateway.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the terminal outcome of a payment submission.
// A payment reaches exactly one of these states and never transitions again.
type PaymentStatus string

const (
	// PaymentStatusRejected means the request failed input validation and
	// never reached the acquiring bank.
	PaymentStatusRejected PaymentStatus = "Rejected"

	// PaymentStatusAuthorized means the acquiring bank authorized the payment.
	PaymentStatusAuthorized PaymentStatus = "Authorized"

	// PaymentStatusDeclined means the acquiring bank declined the payment
	// without reporting an error.
	PaymentStatusDeclined PaymentStatus = "Declined"

	// PaymentStatusBankError means the acquiring bank was reached but
	// returned an error or could not process the request.
	PaymentStatusBankError PaymentStatus = "BankError"

	// PaymentStatusGatewayError means the gateway itself failed unexpectedly
	// after validation passed.
	PaymentStatusGatewayError PaymentStatus = "GatewayError"
)

// Payment is the persisted record of a single submission attempt. The full
// card number is never stored, only its last four digits. AuthorizationCode
// is internal and must not appear in API responses.
type Payment struct {
	CreatedAt          time.Time
	CardNumberLastFour string
	Currency           string
	Status             PaymentStatus
	AuthorizationCode  string
	Amount             int64
	ExpiryMonth        int
	ExpiryYear         int
	ID                 uuid.UUID
}

// PostPaymentRequest is the inbound, untrusted payment submission.
//
// Callers may supply either expiry_month and expiry_year, or a combined
// expiry_date in MM/YYYY form; the combined form is split into month and year
// on decode when the individual fields are absent.
type PostPaymentRequest struct {
	CardNumber  string `json:"card_number"`
	Currency    string `json:"currency"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Amount      int64  `json:"amount"`
	CVV         int    `json:"cvv"`
}

// ExpiryDate returns the combined expiry in MM/YYYY form.
func (r *PostPaymentRequest) ExpiryDate() string {
	return FormatExpiry(r.ExpiryMonth, r.ExpiryYear)
}

// UnmarshalJSON decodes the request, honoring the expiry_date alias.
func (r *PostPaymentRequest) UnmarshalJSON(data []byte) error {
	type alias PostPaymentRequest
	aux := struct {
		*alias
		ExpiryDate string `json:"expiry_date"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.ExpiryDate != "" && r.ExpiryMonth == 0 && r.ExpiryYear == 0 {
		month, year, err := ParseExpiry(aux.ExpiryDate)
		if err != nil {
			return err
		}
		r.ExpiryMonth = month
		r.ExpiryYear = year
	}

	return nil
}

// FormatExpiry renders a month/year pair as MM/YYYY.
func FormatExpiry(month, year int) string {
	return fmt.Sprintf("%02d/%04d", month, year)
}

// ParseExpiry splits an MM/YYYY expiry string back into month and year.
func ParseExpiry(expiry string) (month, year int, err error) {
	if _, err := fmt.Sscanf(expiry, "%2d/%4d", &month, &year); err != nil {
		return 0, 0, fmt.Errorf("invalid expiry date %q: expected MM/YYYY", expiry)
	}
	if len(expiry) != 7 || expiry[2] != '/' {
		return 0, 0, fmt.Errorf("invalid expiry date %q: expected MM/YYYY", expiry)
	}
	return month, year, nil
}
