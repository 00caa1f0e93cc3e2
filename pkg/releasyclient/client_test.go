package releasyclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasy-io/releasy-go/pkg/releasy"
	"github.com/releasy-io/releasy-go/pkg/releasyclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := releasyclient.New(nil)
		require.ErrorIs(t, err, releasy.ErrConfigRequired)
		assert.Nil(t, apiClient)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		apiClient, err := releasyclient.New(&releasy.Config{BaseURL: "ftp://host"})
		require.ErrorIs(t, err, releasy.ErrInvalidBaseURL)
		assert.Nil(t, apiClient)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := releasyclient.New(&releasy.Config{
			BaseURL: "https://api.releasy.example.com",
			Auth:    releasy.AdminKeyAuth("key"),
		})
		require.NoError(t, err)
		assert.NotNil(t, apiClient)
	})
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		construct  func(baseURL string) (releasy.Client, error)
		wantHeader string
		wantValue  string
	}{
		{
			name: "endpoint only",
			construct: func(baseURL string) (releasy.Client, error) {
				return releasyclient.NewWithEndpoint(baseURL)
			},
		},
		{
			name: "admin key",
			construct: func(baseURL string) (releasy.Client, error) {
				return releasyclient.NewWithAdminKey(baseURL, "admin-secret")
			},
			wantHeader: releasy.HeaderAdminKey,
			wantValue:  "admin-secret",
		},
		{
			name: "api key",
			construct: func(baseURL string) (releasy.Client, error) {
				return releasyclient.NewWithAPIKey(baseURL, "api-secret")
			},
			wantHeader: releasy.HeaderAPIKey,
			wantValue:  "api-secret",
		},
		{
			name: "operator jwt",
			construct: func(baseURL string) (releasy.Client, error) {
				return releasyclient.NewWithOperatorJWT(baseURL, "token-123")
			},
			wantHeader: "Authorization",
			wantValue:  "Bearer token-123",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				if testCase.wantHeader != "" {
					assert.Equal(t, testCase.wantValue, request.Header.Get(testCase.wantHeader))
				} else {
					assert.Empty(t, request.Header.Get(releasy.HeaderAdminKey))
					assert.Empty(t, request.Header.Get(releasy.HeaderAPIKey))
					assert.Empty(t, request.Header.Get("Authorization"))
				}

				_, _ = writer.Write([]byte(`{"status":"ok"}`))
			}))
			defer server.Close()

			apiClient, err := testCase.construct(server.URL)
			require.NoError(t, err)

			health, err := apiClient.Health(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "ok", health.Status)
		})
	}
}
