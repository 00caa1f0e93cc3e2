// Package http wraps the retryablehttp transport agent with the Releasy
// request builder and response classifier: URL composition against a
// validated base URL, standard header and auth application, JSON body
// serialization, and deterministic classification of responses into typed
// success values or API errors.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response with the body fully read.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client handles HTTP communication with the Releasy API. It is immutable
// after construction and safe for concurrent use; WithAuth derives a copy
// sharing the same transport agent.
type Client struct {
	baseURL    string
	auth       releasy.Auth
	httpClient *retryablehttp.Client
	userAgent  string
	logger     releasy.Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger.
func WithLogger(logger releasy.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout sets a global timeout on the transport agent.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig tunes transport-level retries. The default is zero retries;
// the client itself never re-sends a request.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithHTTPClient installs a pre-built transport agent. Redirect following is
// still disabled on it: the download resolution contract requires observing
// the 302 rather than chasing it.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new HTTP client for the given base URL and credential.
// The base URL is normalized once here: surrounding whitespace and trailing
// slashes are stripped and the scheme must be http or https, otherwise
// construction fails with releasy.ErrInvalidBaseURL.
func NewClient(baseURL string, auth releasy.Auth, opts ...Option) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Hand back the final response even when the retry budget is exhausted,
	// so status classification sees the real status instead of a give-up
	// error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    normalized,
		auth:       auth,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient.HTTPClient.CheckRedirect = func(*nethttp.Request, []*nethttp.Request) error {
		return nethttp.ErrUseLastResponse
	}

	return client, nil
}

// WithAuth returns a copy of the client that sends a different credential.
// The transport agent is shared and the base URL is not re-validated.
func (c *Client) WithAuth(auth releasy.Auth) *Client {
	derived := *c
	derived.auth = auth

	return &derived
}

// Do executes the request and classifies the response: any 2xx status returns
// the response with a nil error; anything else returns the response together
// with a *releasy.APIError built from the status and the (tolerantly parsed)
// error body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.DoRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
		return resp, ErrorFromResponse(resp)
	}

	return resp, nil
}

// DoRaw executes the request without status classification. Only transport
// failures (network I/O, body serialization, body read) produce an error;
// the caller inspects the status itself. Used for the redirect-based
// download resolution.
func (c *Client) DoRaw(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.url(req.Path)
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.applyHeaders(httpReq.Header, req.Body != nil)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"auth":   authSchemeName(c.auth.Scheme()),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":    resp.StatusCode,
			"body_size": len(resp.Body),
		})
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request. A nil body sends an empty payload.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// PutFile uploads the file's raw bytes to an absolute, pre-authorized URL.
// The base URL, Accept header, and credential are not applied: a presigned
// URL carries its own authorization. A missing or unreadable local file is a
// transport failure raised before any network I/O. Any 2xx status is success.
func (c *Client) PutFile(ctx context.Context, uploadURL, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening upload file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stating upload file: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, nethttp.MethodPut, uploadURL, file)
	if err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}

	// An io.ReadSeeker body has no inherent length; without this the PUT
	// goes out chunked, which presigned object stores reject.
	httpReq.ContentLength = info.Size()

	httpReq.Header.Set("Content-Type", "application/octet-stream")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("executing upload request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode >= nethttp.StatusOK && httpResp.StatusCode < nethttp.StatusMultipleChoices {
		return nil
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading upload response body: %w", err)
	}

	return releasy.NewAPIError(httpResp.StatusCode, body)
}

// ErrorFromResponse builds the API error for a response outside the
// endpoint's declared success set.
func ErrorFromResponse(resp *Response) *releasy.APIError {
	return releasy.NewAPIError(resp.StatusCode, resp.Body)
}

// url joins the base URL and path with exactly one separator.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// applyHeaders sets the standard headers: Accept always, User-Agent and
// Content-Type when applicable, then exactly one credential header via the
// Auth dispatch point.
func (c *Client) applyHeaders(header nethttp.Header, hasBody bool) {
	header.Set("Accept", "application/json")

	if c.userAgent != "" {
		header.Set("User-Agent", c.userAgent)
	}

	if hasBody {
		header.Set("Content-Type", "application/json")
	}

	c.auth.Apply(header)
}

func authSchemeName(scheme releasy.AuthScheme) string {
	switch scheme {
	case releasy.AuthAdminKey:
		return "admin-key"
	case releasy.AuthAPIKey:
		return "api-key"
	case releasy.AuthOperatorJWT:
		return "operator-jwt"
	default:
		return "none"
	}
}

func normalizeBaseURL(baseURL string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return "", fmt.Errorf("%w: %q", releasy.ErrInvalidBaseURL, baseURL)
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "", fmt.Errorf("%w: %q", releasy.ErrInvalidBaseURL, baseURL)
	}

	return trimmed, nil
}
