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

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/admin/users", request.URL.Path)
		assert.Equal(t, "cus_1", request.URL.Query().Get("customer_id"))
		assert.Equal(t, "active", request.URL.Query().Get("status"))

		_, _ = writer.Write([]byte(`{
			"users": [
				{
					"id": "usr_1",
					"keycloak_user_id": "kc-1",
					"customer_id": "cus_1",
					"email": "dev@example.com",
					"status": "active",
					"groups": ["downloads"],
					"created_at": 1700000000,
					"updated_at": 1700000100
				}
			],
			"next_cursor": "page-2"
		}`))
	})

	result, err := apiClient.Users().List(context.Background(), &releasy.UserListQuery{
		CustomerID: releasy.String("cus_1"),
		Status:     releasy.String("active"),
	})
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "dev@example.com", result.Users[0].Email)
	require.NotNil(t, result.NextCursor)
	assert.Equal(t, "page-2", *result.NextCursor)
}

func TestUsersClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("with idempotency key", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/v1/admin/users", request.URL.Path)
			assert.Equal(t, "user-create-1", request.Header.Get("Idempotency-Key"))

			var body releasy.UserCreateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "dev@example.com", body.Email)
			assert.Equal(t, "cus_1", body.CustomerID)

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{
				"id": "usr_1",
				"keycloak_user_id": "kc-1",
				"customer_id": "cus_1",
				"email": "dev@example.com",
				"status": "active",
				"groups": [],
				"created_at": 1700000000,
				"updated_at": 1700000000
			}`))
		})

		user, err := apiClient.Users().CreateWithIdempotencyKey(context.Background(), &releasy.UserCreateRequest{
			Email:      "dev@example.com",
			CustomerID: "cus_1",
		}, "user-create-1")
		require.NoError(t, err)
		assert.Equal(t, "usr_1", user.ID)
	})

	t.Run("without idempotency key", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Idempotency-Key"))
			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{
				"id": "usr_1",
				"keycloak_user_id": "kc-1",
				"customer_id": "cus_1",
				"email": "dev@example.com",
				"status": "active",
				"groups": [],
				"created_at": 1700000000,
				"updated_at": 1700000000
			}`))
		})

		user, err := apiClient.Users().Create(context.Background(), &releasy.UserCreateRequest{
			Email:      "dev@example.com",
			CustomerID: "cus_1",
		})
		require.NoError(t, err)
		assert.Equal(t, "usr_1", user.ID)
	})
}

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/admin/users/usr_1", request.URL.Path)
		_, _ = writer.Write([]byte(`{
			"id": "usr_1",
			"keycloak_user_id": "kc-1",
			"customer_id": "cus_1",
			"email": "dev@example.com",
			"status": "disabled",
			"groups": [],
			"created_at": 1700000000,
			"updated_at": 1700000100,
			"disabled_at": 1700000100
		}`))
	})

	user, err := apiClient.Users().Get(context.Background(), "usr_1")
	require.NoError(t, err)
	assert.Equal(t, "disabled", user.Status)
	require.NotNil(t, user.DisabledAt)
}

func TestUsersClient_Update(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "/v1/admin/users/usr_1", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "Dev One", body["display_name"])
		assert.NotContains(t, body, "status")

		_, _ = writer.Write([]byte(`{
			"id": "usr_1",
			"keycloak_user_id": "kc-1",
			"customer_id": "cus_1",
			"email": "dev@example.com",
			"status": "active",
			"groups": [],
			"created_at": 1700000000,
			"updated_at": 1700000200,
			"display_name": "Dev One"
		}`))
	})

	user, err := apiClient.Users().Update(context.Background(), "usr_1", &releasy.UserUpdateRequest{
		DisplayName: releasy.String("Dev One"),
	})
	require.NoError(t, err)
	require.NotNil(t, user.DisplayName)
	assert.Equal(t, "Dev One", *user.DisplayName)
}

func TestUsersClient_ReplaceGroups(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/v1/admin/users/usr_1/groups", request.URL.Path)

		var body releasy.UserGroupsReplaceRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, []string{"downloads", "beta"}, body.Groups)

		_, _ = writer.Write([]byte(`{
			"id": "usr_1",
			"keycloak_user_id": "kc-1",
			"customer_id": "cus_1",
			"email": "dev@example.com",
			"status": "active",
			"groups": ["downloads", "beta"],
			"created_at": 1700000000,
			"updated_at": 1700000300
		}`))
	})

	user, err := apiClient.Users().ReplaceGroups(context.Background(), "usr_1", &releasy.UserGroupsReplaceRequest{
		Groups: []string{"downloads", "beta"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"downloads", "beta"}, user.Groups)
}

func TestUsersClient_ResetCredentials(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/v1/admin/users/usr_1/reset-credentials", request.URL.Path)

			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, true, body["send_email"])

			writer.WriteHeader(http.StatusAccepted)
		})

		err := apiClient.Users().ResetCredentials(context.Background(), "usr_1", &releasy.ResetCredentialsRequest{
			SendEmail: releasy.Bool(true),
		})
		require.NoError(t, err)
	})

	t.Run("unexpected 2xx is an error", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		err := apiClient.Users().ResetCredentials(context.Background(), "usr_1", &releasy.ResetCredentialsRequest{})
		require.Error(t, err)

		apiErr := &releasy.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 200, apiErr.Status)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"code":"user_not_found","message":"no such user"}}`))
		})

		err := apiClient.Users().ResetCredentials(context.Background(), "missing", &releasy.ResetCredentialsRequest{})
		require.Error(t, err)
		assert.True(t, releasy.IsNotFound(err))
	})
}
