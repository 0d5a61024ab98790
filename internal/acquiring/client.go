package acquiring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/benx421/payment-gateway/gateway/internal/config"
	"github.com/benx421/payment-gateway/gateway/internal/models"
	"github.com/benx421/payment-gateway/gateway/internal/validation"
)

// Authorizer submits payment requests to the acquiring bank.
//
// Implementations never let a transport or protocol failure escape: every
// failure mode is converted into a PaymentResult with Authorized=false and
// an explanatory ErrorMessage.
type Authorizer interface {
	Authorize(ctx context.Context, req *PaymentRequest) *PaymentResult
}

var expiryDateFormat = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

// Client is the HTTP implementation of Authorizer.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	url        string
}

// NewClient creates a bank client for the configured endpoint.
func NewClient(cfg *config.AcquiringBankConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		url:        cfg.URL,
	}
}

var _ Authorizer = (*Client)(nil)

// Authorize performs a single payment call against the bank. No retries are
// attempted: retrying an authorization automatically risks double-charging,
// so reconciliation is left to a higher level.
func (c *Client) Authorize(ctx context.Context, req *PaymentRequest) *PaymentResult {
	// The bank boundary does not trust its caller; re-check the request
	// before spending a network round trip on it.
	if err := validateRequest(req); err != nil {
		c.logger.Warn("rejecting invalid bank request", "error", err)
		return &PaymentResult{Authorized: false, ErrorMessage: ErrMsgInvalidRequest}
	}

	body, err := json.Marshal(req)
	if err != nil {
		c.logger.Error("failed to encode bank request", "error", err)
		return &PaymentResult{Authorized: false, ErrorMessage: ErrMsgUnexpected}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to build bank request", "error", err)
		return &PaymentResult{Authorized: false, ErrorMessage: ErrMsgUnexpected}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("acquiring bank unreachable", "error", err, "elapsed", time.Since(start))
		return &PaymentResult{Authorized: false, ErrorMessage: ErrMsgServerError}
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck // nothing useful to do on close failure
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("acquiring bank returned non-success status", "status", resp.StatusCode)
		return &PaymentResult{Authorized: false, ErrorMessage: ErrMsgServerError}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read bank response", "error", err)
		return &PaymentResult{Authorized: false, ErrorMessage: ErrMsgServerError}
	}

	var result PaymentResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		c.logger.Error("failed to decode bank response", "error", err)
		return &PaymentResult{Authorized: false, ErrorMessage: ErrMsgJSONError}
	}

	c.logger.Debug("acquiring bank responded",
		"authorized", result.Authorized,
		"elapsed", time.Since(start),
	)

	return &result
}

// validateRequest applies the same field rules as the inbound validator plus
// the wire format check on the combined expiry date.
func validateRequest(req *PaymentRequest) error {
	if err := validation.ValidateCardNumber(req.CardNumber); err != nil {
		return err
	}

	if !expiryDateFormat.MatchString(req.ExpiryDate) {
		return fmt.Errorf("expiry date must be in the format MM/YYYY")
	}

	month, year, err := models.ParseExpiry(req.ExpiryDate)
	if err != nil {
		return err
	}
	if err := validation.ValidateExpiry(month, year, time.Now()); err != nil {
		return err
	}

	if err := validation.ValidateCurrency(req.Currency); err != nil {
		return err
	}

	if err := validation.ValidateAmount(req.Amount); err != nil {
		return err
	}

	return validation.ValidateCVV(req.CVV)
}
