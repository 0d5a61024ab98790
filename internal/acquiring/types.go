// Package acquiring implements the client for the acquiring bank boundary.
package acquiring

// PaymentRequest is the wire contract for the bank's payment endpoint.
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        int    `json:"cvv"`
}

// PaymentResult is the bank's answer to a payment request. Exactly one of
// three outcomes holds: authorized, declined (not authorized, no error), or
// bank error (not authorized, ErrorMessage set).
type PaymentResult struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
	ErrorMessage      string `json:"error_message"`
}

// Error messages reported when the bank call cannot produce a real answer.
const (
	ErrMsgInvalidRequest = "Invalid payment request"
	ErrMsgServerError    = "AcquiringBank server error"
	ErrMsgJSONError      = "JSON error"
	ErrMsgUnexpected     = "An unexpected error occurred"
)
