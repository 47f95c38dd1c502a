package webhookclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/consumer"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
)

// Client delivers operation events to a configured webhook endpoint as
// JSON POST requests, retrying transient failures with backoff.
type Client struct {
	httpClient *http.Client
	cfg        *config.WebhookConfig
}

var _ consumer.EventSink = (*Client)(nil)

// NewClient returns nil when no webhook is configured; callers treat a
// nil client as the sink being absent.
func NewClient(cfg *config.WebhookConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) Start() error {
	return nil
}

func (c *Client) Stop() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) Push(ctx context.Context, ev *consumer.OperationEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal operation event: %w", err)
	}

	deliver := func() (struct{}, error) {
		return struct{}{}, c.send(ctx, body)
	}

	if _, err := clientCallWithRetry(ctx, deliver, c.cfg); err != nil {
		return fmt.Errorf("failed to deliver operation event %s: %w", ev.ID, err)
	}
	return nil
}

// transientDeliveryError marks responses worth retrying, as opposed to
// 4xx rejections the endpoint will never accept.
type transientDeliveryError struct {
	statusCode int
}

func (e *transientDeliveryError) Error() string {
	return fmt.Sprintf("webhook endpoint returned status %d", e.statusCode)
}

func (c *Client) send(ctx context.Context, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	stopTimer := metrics.StartClientRequestDurationTimer(c.cfg.URL, http.MethodPost, "/")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		stopTimer(0)
		return &transientDeliveryError{statusCode: 0}
	}
	defer func() {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close() //nolint:errcheck
	}()
	stopTimer(resp.StatusCode)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &transientDeliveryError{statusCode: resp.StatusCode}
	default:
		return fmt.Errorf("webhook endpoint rejected event with status %d", resp.StatusCode)
	}
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.WebhookConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var transient *transientDeliveryError
			return errors.As(err, &transient)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Err(err).
				Uint("attempt", n+1).
				Msg("Retrying webhook delivery")
		}),
	)
	return result, err
}
