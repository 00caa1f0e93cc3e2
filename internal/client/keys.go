package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/releasy-io/releasy-go/internal/constants"
	internalhttp "github.com/releasy-io/releasy-go/internal/http"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// KeysClient implements the releasy.KeysClient interface.
type KeysClient struct {
	httpClient *internalhttp.Client
}

// NewKeysClient creates a new KeysClient.
func NewKeysClient(httpClient *internalhttp.Client) *KeysClient {
	return &KeysClient{httpClient: httpClient}
}

// Create mints an API key for a customer.
func (c *KeysClient) Create(ctx context.Context, request *releasy.APIKeyCreateRequest) (*releasy.APIKeyCreateResponse, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathAdminKeys, request)
	if err != nil {
		return nil, fmt.Errorf("creating api key: %w", err)
	}

	var key releasy.APIKeyCreateResponse

	err = json.Unmarshal(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing api key response: %w", err)
	}

	return &key, nil
}

// Revoke revokes an API key.
func (c *KeysClient) Revoke(ctx context.Context, request *releasy.APIKeyRevokeRequest) (*releasy.APIKeyRevokeResponse, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathAdminKeysRevoke, request)
	if err != nil {
		return nil, fmt.Errorf("revoking api key: %w", err)
	}

	var revoked releasy.APIKeyRevokeResponse

	err = json.Unmarshal(resp.Body, &revoked)
	if err != nil {
		return nil, fmt.Errorf("parsing api key revoke response: %w", err)
	}

	return &revoked, nil
}

// Introspect describes the API key used to authenticate the call itself.
// The request carries an empty body.
func (c *KeysClient) Introspect(ctx context.Context) (*releasy.APIKeyIntrospection, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathAuthIntrospect, nil)
	if err != nil {
		return nil, fmt.Errorf("introspecting api key: %w", err)
	}

	var introspection releasy.APIKeyIntrospection

	err = json.Unmarshal(resp.Body, &introspection)
	if err != nil {
		return nil, fmt.Errorf("parsing introspection response: %w", err)
	}

	return &introspection, nil
}
