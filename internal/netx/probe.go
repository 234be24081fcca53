// Package netx reports whether the device currently has network reachability.
// The result is a plain boolean oracle: no caching, no partial states.
package netx

import (
	"context"
	"net/http"
	"time"
)

// Checker answers the single question the repository layer asks before
// choosing the remote or the local path.
type Checker interface {
	IsConnected(ctx context.Context) bool
}

// HTTPChecker probes a URL with a HEAD request. Any HTTP response, whatever
// its status, counts as online; only transport-level failures count as
// offline.
type HTTPChecker struct {
	client   *http.Client
	probeURL string
}

// NewHTTPChecker returns a checker probing probeURL with the given per-probe
// timeout.
func NewHTTPChecker(probeURL string, timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		client:   &http.Client{Timeout: timeout},
		probeURL: probeURL,
	}
}

func (c *HTTPChecker) IsConnected(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.probeURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()

	return true
}
