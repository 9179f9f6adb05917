package status

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kedare/metro/internal/logger"
	"github.com/kedare/metro/internal/version"
)

// DefaultURL is the feed queried by the CLI.
const DefaultURL = "https://metro-status.herokuapp.com/"

const jsonContentType = "application/json"

// Client retrieves the status feed with a single GET request.
type Client struct {
	client    *http.Client
	url       string
	userAgent string
}

// Option customizes the behaviour of a Client during construction.
type Option func(*Client)

// WithBaseURL overrides the feed URL, primarily for testing.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if strings.TrimSpace(url) != "" {
			c.url = url
		}
	}
}

// NewClient builds a Client. A nil httpClient falls back to a plain client
// without timeout; every request is logged at debug level.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		client:    withLogging(httpClient),
		url:       DefaultURL,
		userAgent: version.UserAgent(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// URL returns the feed address the client queries.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs the GET request and returns the raw JSON body.
// Responses that are not 200 or not JSON are discarded unread.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create status request: %w", err)
	}

	req.Header.Set("Accept", jsonContentType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metro status: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := validateResponse(resp); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read metro status: %w", err)
	}

	logger.Log.Tracef("Received %d bytes from %s", len(body), c.url)

	return body, nil
}

// Report fetches and decodes the feed.
func (c *Client) Report(ctx context.Context) (*Report, error) {
	body, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return Parse(body)
}

func validateResponse(resp *http.Response) error {
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, jsonContentType) {
		return &ContentTypeError{ContentType: contentType}
	}

	return nil
}
