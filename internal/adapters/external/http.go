// Package external provides adapters for the upstream HTTP APIs the tools call
// and for the key/value stores that back conversation sessions.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// DefaultTimeout bounds every upstream request
const DefaultTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(client HTTPClient, timeout time.Duration) HTTPClient {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs one GET request and decodes the body into target.
// Every failure comes back as one of the upstream error kinds.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, upstream, endpoint string, query url.Values, target interface{}) error {
	reqURL := endpoint
	if encoded := query.Encode(); encoded != "" {
		separator := "?"
		if strings.Contains(endpoint, "?") {
			separator = "&"
		}
		reqURL = endpoint + separator + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.NewServiceUnavailableError(fmt.Sprintf("failed to build %s request", upstream), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return classifyTransportError(upstream, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close upstream response body",
				ports.F("upstream", upstream),
				ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return errors.NewUpstreamHTTPError(resp.StatusCode, fmt.Sprintf("%s returned status %d", upstream, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(upstream, err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewMalformedResponseError(fmt.Sprintf("failed to decode %s response", upstream), err)
	}

	return nil
}

func classifyTransportError(upstream string, err error) error {
	if isTimeout(err) {
		return errors.NewTimeoutError(fmt.Sprintf("%s did not respond in time", upstream), err)
	}
	return errors.NewServiceUnavailableError(fmt.Sprintf("%s is unreachable", upstream), err)
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
