// Package api implements the remote blog API adapters behind the core ports.
// One Client owns the HTTP transport: it prefixes the configured base origin,
// carries the session credential in a cookie jar, and classifies every
// response into a CallResult so callers branch on data rather than on errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/metrics"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	base   string
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a Client for the API at baseURL. The cookie jar keeps the
// session credential attached to every subsequent request automatically.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("api: create cookie jar: %w", err)
	}

	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Jar: jar, Timeout: timeout},
		logger: logger,
	}, nil
}

// do issues one request and classifies the response. The JSON content type is
// set only when a body is present. No retries, ever; the user re-triggers.
func (c *Client) do(ctx context.Context, endpoint, method, path string, body, out any) domain.CallResult {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return c.finish(endpoint, transportFailure(fmt.Errorf("encode request: %w", err)))
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return c.finish(endpoint, transportFailure(err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.finish(endpoint, transportFailure(err))
	}
	defer resp.Body.Close()

	res := classify(resp.StatusCode)
	if res.OK() && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			res = domain.CallResult{
				Outcome: domain.OutcomeTransport,
				Status:  resp.StatusCode,
				Err:     fmt.Errorf("decode response: %w", err),
			}
		}
	}
	return c.finish(endpoint, res)
}

func (c *Client) finish(endpoint string, res domain.CallResult) domain.CallResult {
	metrics.RemoteCallsTotal.WithLabelValues(endpoint, string(res.Outcome)).Inc()
	if res.Err != nil {
		c.logger.Debug().Str("endpoint", endpoint).Err(res.Err).Msg("remote call failed")
	}
	return res
}

func transportFailure(err error) domain.CallResult {
	return domain.CallResult{Outcome: domain.OutcomeTransport, Err: err}
}

// classify maps an HTTP status to an outcome. 401 gets its own class because
// it is the normal signed-out answer on introspection, not a failure.
func classify(status int) domain.CallResult {
	res := domain.CallResult{Status: status}
	switch {
	case status >= 200 && status < 300:
		res.Outcome = domain.OutcomeOK
	case status == http.StatusUnauthorized:
		res.Outcome = domain.OutcomeDenied
	case status >= 400 && status < 500:
		res.Outcome = domain.OutcomeRejected
	default:
		res.Outcome = domain.OutcomeUnavailable
	}
	return res
}
