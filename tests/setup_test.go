//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/benx421/payment-gateway/gateway/internal/acquiring"
	"github.com/benx421/payment-gateway/gateway/internal/config"
	"github.com/benx421/payment-gateway/gateway/internal/handlers"
	"github.com/benx421/payment-gateway/gateway/internal/repository"
	"github.com/stretchr/testify/require"
)

// StubBank is a scriptable acquiring bank endpoint.
type StubBank struct {
	mu         sync.Mutex
	statusCode int
	body       string
	calls      int
}

// Respond scripts the next responses from the bank.
func (b *StubBank) Respond(statusCode int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statusCode = statusCode
	b.body = body
}

// Calls reports how many payment requests reached the bank.
func (b *StubBank) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func (b *StubBank) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		statusCode, body := b.statusCode, b.body
		b.calls++
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	})
}

// TestServer wraps the gateway under test together with its stub bank.
type TestServer struct {
	Server *httptest.Server
	Bank   *StubBank
	t      *testing.T
}

// SetupTest starts a gateway wired to a fresh store and a stub bank.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	bank := &StubBank{statusCode: http.StatusOK, body: `{"authorized":false}`}
	bankServer := httptest.NewServer(bank.handler())
	t.Cleanup(bankServer.Close)

	t.Setenv("ACQUIRING_BANK_URL", bankServer.URL)

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	payments := repository.NewPaymentRepository()
	bankClient := acquiring.NewClient(&cfg.AcquiringBank, logger)

	router := handlers.NewRouter(payments, bankClient, logger)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		Bank:   bank,
		t:      t,
	}
}

// PostPayment submits a payment and decodes the response body.
func (ts *TestServer) PostPayment(body string, headers map[string]string) (*http.Response, map[string]any) {
	ts.t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/payments", bytes.NewReader([]byte(body)))
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)

	return resp, decodeBody(ts.t, resp)
}

// GetPayment retrieves a payment by its API identifier.
func (ts *TestServer) GetPayment(id string) (*http.Response, map[string]any) {
	return ts.GetJSON("/api/v1/payments/" + id)
}

// GetJSON performs a GET against the gateway and decodes the JSON response.
func (ts *TestServer) GetJSON(path string) (*http.Response, map[string]any) {
	ts.t.Helper()

	resp, err := http.Get(ts.Server.URL + path)
	require.NoError(ts.t, err)

	return resp, decodeBody(ts.t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
