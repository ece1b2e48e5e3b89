// Package fetch is the HTTP plumbing shared by both feed commands: one GET
// per upstream payload, a hard client timeout, and an optional proxy override
// from the command line. There is no caching and no retry; every run fetches
// from scratch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	appLog "udonevent/internal/log"
)

// Client wraps an http.Client configured for feed fetching.
type Client struct {
	http *http.Client
}

// New builds a Client. proxyURL, when non-empty, routes every request through
// that proxy; otherwise the environment proxy settings apply.
func New(proxyURL string, timeout time.Duration) (*Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        16,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("fetch: parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(u)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout, Transport: transport}}, nil
}

// Fetch performs a GET against rawURL and returns the raw body. A non-2xx
// status is an error.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	appLog.Debug("fetch start", "url", RedactURL(rawURL))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: %s: %s", RedactURL(rawURL), resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	appLog.Debug("fetch done", "url", RedactURL(rawURL), "bytes", len(body))
	return body, nil
}

// RedactURL strips the path and query from a URL so feed URLs carrying
// embedded tokens can be logged safely.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "...(redacted)"
	}
	return u.Scheme + "://" + u.Host + "/...(redacted)"
}
