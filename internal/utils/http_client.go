package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "proxy-desk-bot"

// HTTPClient wraps resty.Client for outbound calls to the provider API.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customises a client built by NewHTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the prefix prepended to every relative request path.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds the whole request including reading the body.
// Zero leaves the client without a timeout.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) HTTPClientOption {
	return func(c *resty.Client) {
		if ua != "" {
			c.SetHeader("User-Agent", ua)
		}
	}
}

// NewHTTPClient returns an independent client that accepts JSON, never
// retries on its own and identifies itself as the bot.
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://api.example.com"))
//	resp, err := client.R().Get("/status")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent)

	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
