// Package releasyclient provides the main entry point for creating Releasy
// API clients.
package releasyclient

import (
	"fmt"

	"github.com/releasy-io/releasy-go/internal/client"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// New creates a new Releasy API client. The base URL is validated once here;
// an empty URL or one without an http/https scheme fails with
// releasy.ErrInvalidBaseURL before any network I/O.
func New(config *releasy.Config) (releasy.Client, error) {
	if config == nil {
		return nil, releasy.ErrConfigRequired
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates a new client with just a base URL (no auth).
func NewWithEndpoint(baseURL string) (releasy.Client, error) {
	return New(&releasy.Config{
		BaseURL: baseURL,
		Auth:    releasy.NoAuth(),
	})
}

// NewWithAdminKey creates a new client authenticating with an admin key.
func NewWithAdminKey(baseURL, adminKey string) (releasy.Client, error) {
	return New(&releasy.Config{
		BaseURL: baseURL,
		Auth:    releasy.AdminKeyAuth(adminKey),
	})
}

// NewWithAPIKey creates a new client authenticating with an API key.
func NewWithAPIKey(baseURL, apiKey string) (releasy.Client, error) {
	return New(&releasy.Config{
		BaseURL: baseURL,
		Auth:    releasy.APIKeyAuth(apiKey),
	})
}

// NewWithOperatorJWT creates a new client authenticating with a bearer token.
func NewWithOperatorJWT(baseURL, token string) (releasy.Client, error) {
	return New(&releasy.Config{
		BaseURL: baseURL,
		Auth:    releasy.OperatorJWTAuth(token),
	})
}
