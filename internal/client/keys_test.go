package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

func TestKeysClient_Create(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/v1/admin/keys", request.URL.Path)

		var body releasy.APIKeyCreateRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "cus_1", body.CustomerID)
		assert.Equal(t, []string{"downloads:read"}, body.Scopes)

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{
			"api_key_id": "key_1",
			"api_key": "rls_secret_value",
			"customer_id": "cus_1",
			"key_type": "standard",
			"scopes": ["downloads:read"]
		}`))
	})

	created, err := apiClient.Keys().Create(context.Background(), &releasy.APIKeyCreateRequest{
		CustomerID: "cus_1",
		Scopes:     []string{"downloads:read"},
	})
	require.NoError(t, err)
	assert.Equal(t, "key_1", created.APIKeyID)
	assert.Equal(t, "rls_secret_value", created.APIKey)
	assert.Nil(t, created.ExpiresAt)
}

func TestKeysClient_Revoke(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/v1/admin/keys/revoke", request.URL.Path)

		var body releasy.APIKeyRevokeRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "key_1", body.APIKeyID)

		_, _ = writer.Write([]byte(`{"api_key_id": "key_1"}`))
	})

	revoked, err := apiClient.Keys().Revoke(context.Background(), &releasy.APIKeyRevokeRequest{
		APIKeyID: "key_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "key_1", revoked.APIKeyID)
}

func TestKeysClient_Introspect(t *testing.T) {
	t.Parallel()

	t.Run("active key", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/v1/auth/introspect", request.URL.Path)

			// Introspection has no request payload.
			body, _ := io.ReadAll(request.Body)
			assert.Empty(t, body)

			_, _ = writer.Write([]byte(`{
				"active": true,
				"api_key_id": "key_1",
				"customer_id": "cus_1",
				"key_type": "standard",
				"scopes": ["downloads:read"],
				"expires_at": 1800000000
			}`))
		})

		introspection, err := apiClient.Keys().Introspect(context.Background())
		require.NoError(t, err)
		assert.True(t, introspection.Active)
		assert.Equal(t, "cus_1", introspection.CustomerID)
		require.NotNil(t, introspection.ExpiresAt)
	})

	t.Run("revoked key", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error":{"code":"key_revoked","message":"api key was revoked"}}`))
		})

		introspection, err := apiClient.Keys().Introspect(context.Background())
		require.Error(t, err)
		assert.Nil(t, introspection)
		assert.True(t, releasy.IsUnauthorized(err))
	})
}
