// Package commands implements the releasy CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/releasy-io/releasy-go/internal/constants"
	"github.com/releasy-io/releasy-go/pkg/releasy"
	"github.com/releasy-io/releasy-go/pkg/releasyclient"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired  = errors.New("API endpoint is required (use --api or 'releasy config set-api')")
	ErrCustomerRequired     = errors.New("customer is required (use --customer)")
	ErrNameRequired         = errors.New("name is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrProductRequired      = errors.New("product is required")
	ErrInvalidMetadataJSON  = errors.New("metadata must be valid JSON")
	ErrNoCredentials        = errors.New("no credentials configured (use --admin-key, --api-key, or --jwt)")
	ErrArtifactFileRequired = errors.New("artifact file is required")
)

// CreateClient builds an API client from the effective CLI configuration.
// Credential precedence is admin key, then API key, then operator JWT; when
// none is set the client is unauthenticated, which only the status commands
// accept.
func CreateClient() (releasy.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	config := &releasy.Config{
		BaseURL:   endpoint,
		Auth:      effectiveAuth(),
		UserAgent: "releasy-cli",
		Debug:     viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = stderrLogger{}
	}

	client, err := releasyclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// CreateAuthenticatedClient is CreateClient but refuses to proceed without a
// credential.
func CreateAuthenticatedClient() (releasy.Client, error) {
	if effectiveAuth().Scheme() == releasy.AuthNone {
		return nil, ErrNoCredentials
	}

	return CreateClient()
}

func effectiveAuth() releasy.Auth {
	if adminKey := viper.GetString("admin-key"); adminKey != "" {
		return releasy.AdminKeyAuth(adminKey)
	}

	if apiKey := viper.GetString("api-key"); apiKey != "" {
		return releasy.APIKeyAuth(apiKey)
	}

	if jwt := viper.GetString("jwt"); jwt != "" {
		return releasy.OperatorJWTAuth(jwt)
	}

	return releasy.NoAuth()
}

// stderrLogger writes debug output to stderr so it never corrupts the
// structured output on stdout.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// formatUnix renders a unix timestamp for table output.
func formatUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(constants.TimestampDisplayFormat)
}

// formatUnixPtr renders an optional unix timestamp for table output.
func formatUnixPtr(ts *int64) string {
	if ts == nil {
		return constants.NotAvailable
	}

	return formatUnix(*ts)
}

// formatStringPtr renders an optional string for table output.
func formatStringPtr(value *string) string {
	if value == nil {
		return constants.NotAvailable
	}

	return *value
}

// parseMetadata validates and returns an optional raw JSON flag value.
func parseMetadata(metadata string) (json.RawMessage, error) {
	if metadata == "" {
		return nil, nil
	}

	if !json.Valid([]byte(metadata)) {
		return nil, ErrInvalidMetadataJSON
	}

	return json.RawMessage(metadata), nil
}
