package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, repo Repository, gateway Gateway) *Handler {
	t.Helper()
	service, err := NewService(repo, gateway, "usd")
	require.NoError(t, err)
	return NewHandler(service)
}

func authedRequest(method, path, body, email string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(context.WithValue(req.Context(), httputil.EmailKey, email))
}

func TestCreateIntentHandler(t *testing.T) {
	// Arrange
	handler := newTestHandler(t, newMockRepository(), &mockGateway{secret: "pi_123_secret_456"})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price": 25.5}`))
	rec := httptest.NewRecorder()

	// Act
	handler.CreateIntent(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreateIntentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pi_123_secret_456", resp.ClientSecret)
}

func TestCreateIntentHandler_InvalidPrice(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero price", `{"price": 0}`},
		{"negative price", `{"price": -5}`},
		{"missing price", `{}`},
		{"not json", `price=5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t, newMockRepository(), &mockGateway{})

			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.CreateIntent(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSettleHandler(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.deletedCount = 1
	handler := newTestHandler(t, repo, &mockGateway{})

	body := `{
		"email": "user@example.com",
		"price": 25.5,
		"transactionId": "pi_123",
		"cartIds": ["0b9fbf25-671c-43c7-8cf1-8f4f3a4a0a2e"]
	}`
	rec := httptest.NewRecorder()

	// Act
	handler.Settle(rec, authedRequest(http.MethodPost, "/payments", body, "user@example.com"))

	// Assert
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SettleResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.PaymentResult.Acknowledged)
	assert.Equal(t, int64(1), resp.DeleteResult.DeletedCount)
}

func TestSettleHandler_EmailMismatch(t *testing.T) {
	// Arrange — body claims another user's checkout
	repo := newMockRepository()
	handler := newTestHandler(t, repo, &mockGateway{})

	body := `{
		"email": "victim@example.com",
		"price": 25.5,
		"transactionId": "pi_123",
		"cartIds": ["0b9fbf25-671c-43c7-8cf1-8f4f3a4a0a2e"]
	}`
	rec := httptest.NewRecorder()

	// Act
	handler.Settle(rec, authedRequest(http.MethodPost, "/payments", body, "attacker@example.com"))

	// Assert — nothing was written
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, repo.settled)
}

func TestSettleHandler_InvalidCartIDs(t *testing.T) {
	tests := []struct {
		name    string
		cartIDs string
	}{
		{"empty list", `[]`},
		{"not a uuid", `["42"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t, newMockRepository(), &mockGateway{})

			body := `{
				"email": "user@example.com",
				"price": 25.5,
				"transactionId": "pi_123",
				"cartIds": ` + tt.cartIDs + `
			}`
			rec := httptest.NewRecorder()

			handler.Settle(rec, authedRequest(http.MethodPost, "/payments", body, "user@example.com"))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
