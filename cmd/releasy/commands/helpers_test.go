package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

func setCredentials(t *testing.T, adminKey, apiKey, jwt string) {
	t.Helper()

	viper.Set("admin-key", adminKey)
	viper.Set("api-key", apiKey)
	viper.Set("jwt", jwt)
	t.Cleanup(func() {
		viper.Set("admin-key", "")
		viper.Set("api-key", "")
		viper.Set("jwt", "")
	})
}

func TestEffectiveAuth(t *testing.T) {
	tests := []struct {
		name       string
		adminKey   string
		apiKey     string
		jwt        string
		wantScheme releasy.AuthScheme
	}{
		{name: "no credentials", wantScheme: releasy.AuthNone},
		{name: "admin key only", adminKey: "admin", wantScheme: releasy.AuthAdminKey},
		{name: "api key only", apiKey: "key", wantScheme: releasy.AuthAPIKey},
		{name: "jwt only", jwt: "token", wantScheme: releasy.AuthOperatorJWT},
		{name: "admin key wins over api key", adminKey: "admin", apiKey: "key", wantScheme: releasy.AuthAdminKey},
		{name: "api key wins over jwt", apiKey: "key", jwt: "token", wantScheme: releasy.AuthAPIKey},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			setCredentials(t, testCase.adminKey, testCase.apiKey, testCase.jwt)

			assert.Equal(t, testCase.wantScheme, effectiveAuth().Scheme())
		})
	}
}

func TestCreateClient_RequiresEndpoint(t *testing.T) {
	viper.Set("api", "")

	client, err := CreateClient()
	require.ErrorIs(t, err, ErrAPIEndpointRequired)
	assert.Nil(t, client)
}

func TestCreateAuthenticatedClient_RequiresCredentials(t *testing.T) {
	viper.Set("api", "https://api.releasy.example.com")
	t.Cleanup(func() { viper.Set("api", "") })
	setCredentials(t, "", "", "")

	client, err := CreateAuthenticatedClient()
	require.ErrorIs(t, err, ErrNoCredentials)
	assert.Nil(t, client)
}

func TestParseMetadata(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		raw, err := parseMetadata("")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("valid JSON passes through", func(t *testing.T) {
		raw, err := parseMetadata(`{"seats": 5}`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"seats": 5}`, string(raw))
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		raw, err := parseMetadata(`{"seats": }`)
		require.ErrorIs(t, err, ErrInvalidMetadataJSON)
		assert.Nil(t, raw)
	})
}

func TestMaskSecret(t *testing.T) {
	assert.Empty(t, maskSecret(""))
	assert.Equal(t, Masked, maskSecret("super-secret"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "N/A", formatUnixPtr(nil))
	assert.Equal(t, "2023-11-14 22:13:20", formatUnix(1700000000))
	assert.Equal(t, "N/A", formatStringPtr(nil))
	assert.Equal(t, "enterprise", formatStringPtr(releasy.String("enterprise")))
}
