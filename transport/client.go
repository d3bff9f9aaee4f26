package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/models"
)

// CorrelatorHeader carries a per-request id through CAMARA gateways.
const CorrelatorHeader = "x-correlator"

// Client sends JSON requests to one API gateway. It is safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
	base string
	log  logrus.FieldLogger
}

// NewClient validates cfg and returns a client. cfg is copied.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{cfg: *cfg, http: cfg.HTTPClient, base: strings.TrimRight(cfg.BaseURL, "/"), log: cfg.Logger}
	c.cfg.Headers = make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		c.cfg.Headers[k] = v
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	if c.log == nil {
		c.log = discardLogger()
	}
	return c, nil
}

// Do sends body (a wire tree, or nil) to path and hands the decoded response
// wire tree to out. out is not called for empty bodies. Non-2xx responses
// return *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body any, out func(any) error) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("transport: encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("transport: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	if req.Header.Get(CorrelatorHeader) == "" {
		req.Header.Set(CorrelatorHeader, uuid.NewString())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Debug("camara request failed")
		return fmt.Errorf("transport: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("transport: read response: %w", err)
	}
	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"duration":   time.Since(start),
		"correlator": req.Header.Get(CorrelatorHeader),
	}).Debug("camara request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(ctx, resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	tree, err := camara.DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return out(tree)
}

func (c *Client) apiError(ctx context.Context, status int, body []byte) error {
	e := &APIError{StatusCode: status}
	info, err := camara.CoerceJSON(camara.WithLenientEnums(ctx), models.ErrorInfoSchema(), body)
	if err == nil {
		e.Info = info
		return e
	}
	e.Info = models.ErrorInfo{Status: int64(status), Message: strings.TrimSpace(string(body))}
	return e
}

func (c *Client) coerceContext(ctx context.Context) context.Context {
	if c.cfg.LenientEnums {
		return camara.WithLenientEnums(ctx)
	}
	return ctx
}

// Call dumps req with reqSchema, sends it, and coerces the response with
// respSchema. A nil reqSchema sends no body; a nil respSchema ignores the
// response body.
func Call[Req, Resp any](ctx context.Context, c *Client, method, path string, reqSchema camara.Schema[Req], req Req, respSchema camara.Schema[Resp]) (Resp, error) {
	var zero Resp
	var body any
	if reqSchema != nil {
		if err := camara.ApplyRefine(ctx, req, reqSchema); err != nil {
			return zero, fmt.Errorf("transport: invalid request: %w", err)
		}
		w, err := reqSchema.Dump(ctx, req)
		if err != nil {
			return zero, fmt.Errorf("transport: encode request: %w", err)
		}
		body = w
	}
	var out Resp
	var decode func(any) error
	if respSchema != nil {
		decode = func(tree any) error {
			v, err := respSchema.Coerce(c.coerceContext(ctx), tree)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
			}
			out = v
			return nil
		}
	}
	if err := c.Do(ctx, method, path, body, decode); err != nil {
		return zero, err
	}
	return out, nil
}
