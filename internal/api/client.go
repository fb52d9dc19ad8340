package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/logger"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/metrics"
)

// Client issues every call to the shop backend.
// Calls are never retried or cached; failures are returned to the caller.
type Client struct {
	baseURL string
	base    http.RoundTripper
	http    *http.Client
	metrics *metrics.Metrics

	Auth     *AuthService
	Products *ProductService
	Reviews  *ReviewService
	Cart     *CartService
	Wishlist *WishlistService
	Orders   *OrderService
	Payments *PaymentService
}

type Option func(*Client)

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.base = rt }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates an anonymous client for baseURL, e.g. http://host/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = &http.Client{Transport: c.base}
	c.bind()
	return c
}

// WithTokens returns a client whose requests carry the bearer token
// that tokens yields at send time.
func (c *Client) WithTokens(tokens TokenSource) *Client {
	cp := *c
	cp.http = &http.Client{Transport: &bearerTransport{base: c.base, tokens: tokens}}
	cp.bind()
	return &cp
}

func (c *Client) bind() {
	c.Auth = &AuthService{c: c}
	c.Products = &ProductService{c: c}
	c.Reviews = &ReviewService{c: c}
	c.Cart = &CartService{c: c}
	c.Wishlist = &WishlistService{c: c}
	c.Orders = &OrderService{c: c}
	c.Payments = &PaymentService{c: c}
}

type requestBody struct {
	contentType string
	data        []byte
}

func jsonBody(v any) (*requestBody, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("api: encode body: %w", err)
	}
	return &requestBody{contentType: "application/json", data: data}, nil
}

type call struct {
	family string
	method string
	path   string
	query  url.Values
	body   *requestBody
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var reader io.Reader
	if cl.body != nil {
		reader = bytes.NewReader(cl.body.data)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, target, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", cl.method, cl.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", cl.body.contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveAPICall(cl.family, "error", time.Since(start))
		logger.Debug("api call failed", map[string]any{
			"family": cl.family,
			"method": cl.method,
			"path":   cl.path,
			"error":  err.Error(),
		})
		return fmt.Errorf("api: %s %s: %w", cl.method, cl.path, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveAPICall(cl.family, strconv.Itoa(resp.StatusCode), time.Since(start))

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read %s %s: %w", cl.method, cl.path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug("api call rejected", map[string]any{
			"family": cl.family,
			"method": cl.method,
			"path":   cl.path,
			"status": resp.StatusCode,
		})
		return newStatusError(resp.StatusCode, payload)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}
