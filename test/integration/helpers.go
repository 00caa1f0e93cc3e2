//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"

	"github.com/releasy-io/releasy-go/pkg/releasy"
	"github.com/releasy-io/releasy-go/pkg/releasyclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIURL   string
	AdminKey string
	APIKey   string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIURL:   os.Getenv("RELEASY_API_URL"),
		AdminKey: os.Getenv("RELEASY_ADMIN_KEY"),
		APIKey:   os.Getenv("RELEASY_API_KEY"),
		Verbose:  os.Getenv("RELEASY_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.APIURL == "" {
		t.Skip("RELEASY_API_URL not set, skipping integration test")
	}
}

// SkipIfMissingAdminKey skips test if no admin key is configured
func (config *TestConfig) SkipIfMissingAdminKey(t *testing.T) {
	config.SkipIfMissingConfig(t)

	if config.AdminKey == "" {
		t.Skip("RELEASY_ADMIN_KEY not set, skipping integration test")
	}
}

// AdminClient builds a client authenticated with the admin key
func (config *TestConfig) AdminClient(t *testing.T) releasy.Client {
	t.Helper()

	client, err := releasyclient.NewWithAdminKey(config.APIURL, config.AdminKey)
	if err != nil {
		t.Fatalf("failed to create admin client: %v", err)
	}

	return client
}

// AnonymousClient builds a client with no credentials
func (config *TestConfig) AnonymousClient(t *testing.T) releasy.Client {
	t.Helper()

	client, err := releasyclient.NewWithEndpoint(config.APIURL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}
