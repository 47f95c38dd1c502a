package webhookclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sdupi-network/sdupi-token-core/consumer"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *consumer.OperationEvent {
	return &consumer.OperationEvent{
		ID:        "a4c2e3d8-0000-4000-8000-000000000001",
		Kind:      "TRANSFER",
		Caller:    "0x1111111111111111111111111111111111111111",
		Type:      "token.v1.EventTransfer",
		Data:      json.RawMessage(`{"amount":"1000000000000000000"}`),
		Timestamp: 1700000000,
	}
}

func testConfig(url string) *config.WebhookConfig {
	return &config.WebhookConfig{
		URL:           url,
		Timeout:       5 * time.Second,
		MaxRetryTimes: 3,
		RetryInterval: 10 * time.Millisecond, // short interval for testing
	}
}

func TestPush_RetriesTransientFailures(t *testing.T) {
	metrics.Init(9999)

	requestCount := 0
	var lastBody consumer.OperationEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		if requestCount <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err := json.NewDecoder(r.Body).Decode(&lastBody)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	err := client.Push(context.Background(), testEvent())

	require.NoError(t, err)
	assert.Equal(t, 3, requestCount, "should have made 3 requests (2 failures + 1 success)")
	assert.Equal(t, *testEvent(), lastBody)
}

func TestPush_ExceedsMaxRetries(t *testing.T) {
	metrics.Init(9999)

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	err := client.Push(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deliver operation event")
	assert.Equal(t, 3, requestCount, "should have made 3 requests before giving up")
}

func TestPush_DoesNotRetryRejections(t *testing.T) {
	metrics.Init(9999)

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	err := client.Push(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, 1, requestCount, "4xx responses must not be retried")
}

func TestNewClient_WithNilConfig(t *testing.T) {
	assert.Nil(t, NewClient(nil))
}
