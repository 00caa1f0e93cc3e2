// Package client implements the releasy.Client interface on top of the
// internal HTTP layer.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/releasy-io/releasy-go/internal/constants"
	internalhttp "github.com/releasy-io/releasy-go/internal/http"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// Client implements the releasy.Client interface.
type Client struct {
	httpClient *internalhttp.Client

	// Resource clients
	customers    releasy.CustomersClient
	users        releasy.UsersClient
	entitlements releasy.EntitlementsClient
	auditEvents  releasy.AuditEventsClient
	keys         releasy.KeysClient
	downloads    releasy.DownloadsClient
	releases     releasy.ReleasesClient
}

// httpClientOptions builds HTTP client options from config.
func httpClientOptions(config *releasy.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.HTTPClient != nil {
		opts = append(opts, internalhttp.WithHTTPClient(config.HTTPClient))
	} else if config.Timeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

// New creates a new Releasy API client. The base URL is validated here, once;
// derived clients produced by WithAuth skip re-validation.
func New(config *releasy.Config) (*Client, error) {
	if config == nil {
		return nil, releasy.ErrConfigRequired
	}

	httpClient, err := internalhttp.NewClient(config.BaseURL, config.Auth, httpClientOptions(config)...)
	if err != nil {
		return nil, err
	}

	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client, nil
}

// WithAuth implements releasy.Client.WithAuth.
func (c *Client) WithAuth(auth releasy.Auth) releasy.Client {
	derived := &Client{httpClient: c.httpClient.WithAuth(auth)}
	derived.initializeResourceClients()

	return derived
}

// OpenAPI implements releasy.Client.OpenAPI.
func (c *Client) OpenAPI(ctx context.Context) (map[string]interface{}, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathOpenAPI, nil)
	if err != nil {
		return nil, fmt.Errorf("getting openapi document: %w", err)
	}

	var document map[string]interface{}

	err = json.Unmarshal(resp.Body, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing openapi document: %w", err)
	}

	return document, nil
}

// Health implements releasy.Client.Health.
func (c *Client) Health(ctx context.Context) (*releasy.HealthResponse, error) {
	return c.probe(ctx, constants.PathHealth)
}

// Live implements releasy.Client.Live.
func (c *Client) Live(ctx context.Context) (*releasy.HealthResponse, error) {
	return c.probe(ctx, constants.PathLive)
}

// Ready implements releasy.Client.Ready.
func (c *Client) Ready(ctx context.Context) (*releasy.HealthResponse, error) {
	return c.probe(ctx, constants.PathReady)
}

func (c *Client) probe(ctx context.Context, path string) (*releasy.HealthResponse, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	var health releasy.HealthResponse

	err = json.Unmarshal(resp.Body, &health)
	if err != nil {
		return nil, fmt.Errorf("parsing health response: %w", err)
	}

	return &health, nil
}

// Customers implements releasy.Client.Customers.
func (c *Client) Customers() releasy.CustomersClient {
	return c.customers
}

// Users implements releasy.Client.Users.
func (c *Client) Users() releasy.UsersClient {
	return c.users
}

// Entitlements implements releasy.Client.Entitlements.
func (c *Client) Entitlements() releasy.EntitlementsClient {
	return c.entitlements
}

// AuditEvents implements releasy.Client.AuditEvents.
func (c *Client) AuditEvents() releasy.AuditEventsClient {
	return c.auditEvents
}

// Keys implements releasy.Client.Keys.
func (c *Client) Keys() releasy.KeysClient {
	return c.keys
}

// Downloads implements releasy.Client.Downloads.
func (c *Client) Downloads() releasy.DownloadsClient {
	return c.downloads
}

// Releases implements releasy.Client.Releases.
func (c *Client) Releases() releasy.ReleasesClient {
	return c.releases
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.customers = NewCustomersClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.entitlements = NewEntitlementsClient(c.httpClient)
	c.auditEvents = NewAuditEventsClient(c.httpClient)
	c.keys = NewKeysClient(c.httpClient)
	c.downloads = NewDownloadsClient(c.httpClient)
	c.releases = NewReleasesClient(c.httpClient)
}
