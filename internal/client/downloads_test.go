package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

func TestDownloadsClient_CreateToken(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/v1/downloads/token", request.URL.Path)

		var body releasy.DownloadTokenRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "art_1", body.ArtifactID)
		require.NotNil(t, body.ExpiresInSeconds)
		assert.Equal(t, int32(300), *body.ExpiresInSeconds)

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{
			"download_url": "https://api.releasy.example.com/v1/downloads/tok_abc",
			"expires_at": 1700000300
		}`))
	})

	token, err := apiClient.Downloads().CreateToken(context.Background(), &releasy.DownloadTokenRequest{
		ArtifactID:       "art_1",
		ExpiresInSeconds: releasy.Int32(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.releasy.example.com/v1/downloads/tok_abc", token.DownloadURL)
	assert.Equal(t, int64(1700000300), token.ExpiresAt)
}

func TestDownloadsClient_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("redirect with location", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "/v1/downloads/tok_abc", request.URL.Path)

			writer.Header().Set("Location", "https://objects.example.com/agent-1.2.3.tgz")
			writer.WriteHeader(http.StatusFound)
		})

		resolution, err := apiClient.Downloads().Resolve(context.Background(), "tok_abc")
		require.NoError(t, err)
		assert.Equal(t, "https://objects.example.com/agent-1.2.3.tgz", resolution.Location)
	})

	t.Run("redirect without location", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusFound)
		})

		resolution, err := apiClient.Downloads().Resolve(context.Background(), "tok_abc")
		require.ErrorIs(t, err, releasy.ErrMissingLocationHeader)
		assert.Nil(t, resolution)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"code":"token_expired","message":"download token expired"}}`))
		})

		resolution, err := apiClient.Downloads().Resolve(context.Background(), "tok_old")
		require.Error(t, err)
		assert.Nil(t, resolution)

		apiErr := &releasy.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "token_expired", apiErr.Code())
	})

	t.Run("plain 200 is not a resolution", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		resolution, err := apiClient.Downloads().Resolve(context.Background(), "tok_abc")
		require.Error(t, err)
		assert.Nil(t, resolution)
		assert.Equal(t, 200, releasy.StatusOf(err))
	})
}
