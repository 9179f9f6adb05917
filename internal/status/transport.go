package status

import (
	"net/http"
	"time"

	"github.com/kedare/metro/internal/logger"
)

type loggingTransport struct {
	base http.RoundTripper
}

func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Log.Debugf("HTTP %s %s failed after %s: %v", req.Method, req.URL.String(), elapsed, err)

		return nil, err
	}

	logger.Log.Debugf("HTTP %s %s -> %d (%s)", req.Method, req.URL.String(), resp.StatusCode, elapsed)

	return resp, nil
}

// withLogging returns a shallow copy of client whose transport logs each round trip.
func withLogging(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{}
	}

	wrapped := *client
	wrapped.Transport = loggingTransport{base: client.Transport}

	return &wrapped
}
