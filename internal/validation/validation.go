// Package validation implements field-level validation of payment requests.
package validation

import (
	"fmt"
	"time"

	"github.com/benx421/payment-gateway/gateway/internal/models"
)

// Violation describes a single failed validation rule on a named field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Card numbers are digit strings between 14 and 19 characters.
const (
	minCardNumberLength = 14
	maxCardNumberLength = 19
)

// CVV is a 3- or 4-digit number.
const (
	minCVV = 100
	maxCVV = 9999
)

// supportedCurrencies is the fixed allow-list of ISO 4217 codes the gateway
// accepts.
var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
}

// Validate checks every rule against the request and returns all violations
// found, in a stable field order. It never stops at the first failure so the
// caller receives the complete set. An empty result means the request is
// valid.
func Validate(req *models.PostPaymentRequest, now time.Time) []Violation {
	var violations []Violation

	if err := ValidateCardNumber(req.CardNumber); err != nil {
		violations = append(violations, Violation{Field: "card_number", Message: err.Error()})
	}

	if err := ValidateExpiryMonth(req.ExpiryMonth); err != nil {
		violations = append(violations, Violation{Field: "expiry_month", Message: err.Error()})
	} else if err := ValidateExpiry(req.ExpiryMonth, req.ExpiryYear, now); err != nil {
		violations = append(violations, Violation{Field: "expiry_year", Message: err.Error()})
	}

	if err := ValidateCurrency(req.Currency); err != nil {
		violations = append(violations, Violation{Field: "currency", Message: err.Error()})
	}

	if err := ValidateAmount(req.Amount); err != nil {
		violations = append(violations, Violation{Field: "amount", Message: err.Error()})
	}

	if err := ValidateCVV(req.CVV); err != nil {
		violations = append(violations, Violation{Field: "cvv", Message: err.Error()})
	}

	return violations
}

// ValidateCardNumber checks that a card number is 14-19 digits.
func ValidateCardNumber(cardNumber string) error {
	if cardNumber == "" {
		return fmt.Errorf("card number is required")
	}

	for _, r := range cardNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("card number must only contain numeric characters")
		}
	}

	if len(cardNumber) < minCardNumberLength || len(cardNumber) > maxCardNumberLength {
		return fmt.Errorf("card number must be between %d and %d digits", minCardNumberLength, maxCardNumberLength)
	}

	return nil
}

// ValidateExpiryMonth checks that a month is within the calendar range.
func ValidateExpiryMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("expiry month must be between 1 and 12")
	}

	return nil
}

// ValidateExpiry checks that the expiry month/year combination has not
// passed. A card is valid through the last day of its expiry month, so the
// card only expires once that day is behind the reference time.
func ValidateExpiry(month, year int, now time.Time) error {
	// First day of the month after expiry, i.e. the instant the card expires.
	expiresAt := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	if !expiresAt.After(now.UTC()) {
		return fmt.Errorf("card expiry date must be in the future")
	}

	return nil
}

// ValidateCurrency checks the currency against the supported allow-list.
func ValidateCurrency(currency string) error {
	if currency == "" {
		return fmt.Errorf("currency is required")
	}

	if !supportedCurrencies[currency] {
		return fmt.Errorf("currency must be one of the following: USD, EUR, GBP")
	}

	return nil
}

// ValidateAmount checks that the amount, in minor currency units, is positive.
func ValidateAmount(amount int64) error {
	if amount < 1 {
		return fmt.Errorf("amount must be a positive integer")
	}

	return nil
}

// ValidateCVV checks that the CVV is a 3- or 4-digit number.
func ValidateCVV(cvv int) error {
	if cvv < minCVV || cvv > maxCVV {
		return fmt.Errorf("cvv must be 3 or 4 digits")
	}

	return nil
}
