package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/user/captcha-relay/internal/adapter/metrics"
	"github.com/user/captcha-relay/internal/domain"
)

// Client implements domain.ChallengeVerifier against a reCAPTCHA-compatible
// siteverify endpoint. One POST per Verify call, no retries, bounded by the
// configured timeout.
type Client struct {
	verifyURL  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.RelayMetrics
}

// NewClient creates a verifier for the given siteverify endpoint.
func NewClient(verifyURL string, timeout time.Duration, logger *slog.Logger, m *metrics.RelayMetrics) *Client {
	return &Client{
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// Verify sends the secret and challenge token upstream and decodes the
// verdict. Transport errors, non-2xx statuses, and undecodable bodies are
// all returned as errors; the caller decides how much detail to surface.
func (c *Client) Verify(ctx context.Context, secretKey, token string) (domain.UpstreamResult, error) {
	form := url.Values{}
	form.Set("secret", secretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.UpstreamResult{}, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countOutcome("transport_error")
		return domain.UpstreamResult{}, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.countOutcome("bad_status")
		return domain.UpstreamResult{}, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var result domain.UpstreamResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.countOutcome("bad_body")
		return domain.UpstreamResult{}, fmt.Errorf("decode upstream response: %w", err)
	}

	c.countOutcome("ok")
	c.logger.Debug("upstream verdict", "success", result.Success, "score", result.Score, "action", result.Action)
	return result, nil
}

func (c *Client) countOutcome(outcome string) {
	if c.metrics != nil {
		c.metrics.UpstreamResponses.WithLabelValues(outcome).Inc()
	}
}
