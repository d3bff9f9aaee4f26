package transport

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the client configuration. Build it with DefaultConfig and
// the With methods:
//
//	cfg := transport.DefaultConfig().
//	    WithBaseURL("https://api.example.com").
//	    WithTimeout(10 * time.Second).
//	    WithHeader("X-Tenant", "t-1")
type Config struct {
	// BaseURL is the API gateway root, including the scheme.
	BaseURL string

	// Token is sent as a bearer token when set.
	Token string

	// Timeout bounds each request, including reading the body.
	// Default: 30s
	Timeout time.Duration

	// Headers are added to every request.
	Headers map[string]string

	// Logger receives one debug line per request. Default: discards output.
	Logger logrus.FieldLogger

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client

	// LenientEnums accepts enum values the models do not declare in
	// responses, so that newer servers do not break older clients.
	LenientEnums bool
}

// DefaultConfig returns a Config with a 30s timeout and a silent logger.
func DefaultConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		Headers: make(map[string]string),
		Logger:  discardLogger(),
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithBaseURL sets the API gateway root.
func (c *Config) WithBaseURL(u string) *Config {
	c.BaseURL = u
	return c
}

// WithToken sets the bearer token.
func (c *Config) WithToken(token string) *Config {
	c.Token = token
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// WithHeader adds a header sent with every request.
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithLogger sets the request logger.
func (c *Config) WithLogger(l logrus.FieldLogger) *Config {
	c.Logger = l
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Config) WithHTTPClient(hc *http.Client) *Config {
	c.HTTPClient = hc
	return c
}

// WithLenientEnums accepts undeclared enum values in responses.
func (c *Config) WithLenientEnums() *Config {
	c.LenientEnums = true
	return c
}

// Validate reports configuration errors.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL cannot be empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL must have a scheme and host", ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", ErrInvalidConfig)
	}
	return nil
}
