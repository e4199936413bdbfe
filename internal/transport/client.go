package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobnet_client/internal/tokenstore"
	"jobnet_client/pkg/apierr"
)

// Client issues authenticated JSON requests against the remote API.
// The access token is read from the store on every request, never cached,
// since logout can invalidate it mid-session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     tokenstore.Store
}

type options struct {
	timeout    time.Duration
	httpClient *http.Client
}

type Option func(*options)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient overrides the underlying HTTP client. Used by tests to
// install a fake transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func New(baseURL string, tokens tokenstore.Store, opts ...Option) *Client {
	o := options{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: o.timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   15 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        16,
				MaxIdleConnsPerHost: 8,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
	}
}

func (c *Client) Get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apierr.Wrap(err, apierr.KindTransport, op)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return apierr.Wrap(err, apierr.KindTransport, op)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Access(ctx)
	if err != nil {
		return apierr.Wrap(err, apierr.KindTransport, op)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierr.Wrap(err, apierr.KindTransport, op)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.Wrap(err, apierr.KindTransport, op)
	}

	if resp.StatusCode >= 400 {
		return errorFromStatus(op, resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apierr.Wrap(fmt.Errorf("malformed response: %w", err), apierr.KindTransport, op)
		}
	}
	return nil
}

// errorBody is the error envelope the API uses for non-2xx responses.
type errorBody struct {
	Message string `json:"message"`
}

func errorFromStatus(op string, status int, raw []byte) error {
	message := http.StatusText(status)
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		message = body.Message
	}

	kind := apierr.KindTransport
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = apierr.KindAuth
	case http.StatusConflict:
		kind = apierr.KindConflict
	}

	return apierr.New(kind, op, message).WithStatus(status)
}
