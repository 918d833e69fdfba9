// Package sheets fetches published tabular resources (registry and
// per-league data sheets) over HTTP and hands back parsed tables.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/puckboard/league-engine/internal/platform/logging"
	"github.com/puckboard/league-engine/internal/platform/resilience"
	"github.com/puckboard/league-engine/internal/platform/sheet"
)

const maxResponseBytes = 4 << 20

// ErrFetch marks any failure to obtain a resource: unreachable host,
// non-success status, or a truncated read. Parse failures do not exist;
// the parser is total.
var ErrFetch = crerr.New("sheet fetch failed")

var errTransient = crerr.New("sheet transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	Timeout        time.Duration
	MaxRetries     int
	Delimiter      rune
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches and parses delimited sheets. Identical concurrent
// fetches are collapsed per URL, and a circuit breaker shields the
// upstream host when it is failing hard.
type Client struct {
	httpClient     *http.Client
	maxRetries     int
	delimiter      rune
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	delimiter := cfg.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		maxRetries:     retries,
		delimiter:      delimiter,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchTable downloads the resource at url and parses it. The returned
// error is always marked with ErrFetch; the text itself cannot fail to
// parse.
func (c *Client) FetchTable(ctx context.Context, url string) (sheet.Table, error) {
	raw, err := c.FetchText(ctx, url)
	if err != nil {
		return nil, err
	}
	return sheet.Parse(raw, c.delimiter), nil
}

// FetchText downloads the raw text of a resource.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", crerr.Mark(fmt.Errorf("resource url is empty"), ErrFetch)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sheet circuit breaker rejected request", "state", c.breaker.State())
			return "", crerr.Mark(err, ErrFetch)
		}
	}

	out, err, _ := c.flight.Do(url, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, url)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return "", crerr.Mark(err, ErrFetch)
	}

	raw, ok := out.(string)
	if !ok {
		return "", crerr.Mark(fmt.Errorf("unexpected payload type %T", out), ErrFetch)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/csv, text/plain")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return string(raw), nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: resource status=%d", errTransient, resp.StatusCode)
			default:
				return "", fmt.Errorf("resource status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("resource request failed")
	}
	c.logger.WarnContext(ctx, "sheet request failed", "url", url, "error", lastErr)
	return "", lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
