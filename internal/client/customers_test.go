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

func TestCustomersClient_List(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/v1/admin/customers", request.URL.Path)
		assert.Equal(t, "acme", request.URL.Query().Get("name"))
		assert.Equal(t, "10", request.URL.Query().Get("limit"))

		_, _ = writer.Write([]byte(`{
			"customers": [
				{"id": "cus_1", "name": "acme", "created_at": 1700000000, "plan": "enterprise"}
			],
			"limit": 10,
			"offset": 0
		}`))
	})

	result, err := apiClient.Customers().List(context.Background(), &releasy.CustomerListQuery{
		Name:  releasy.String("acme"),
		Limit: releasy.Int32(10),
	})
	require.NoError(t, err)
	require.Len(t, result.Customers, 1)
	assert.Equal(t, "cus_1", result.Customers[0].ID)
	require.NotNil(t, result.Customers[0].Plan)
	assert.Equal(t, "enterprise", *result.Customers[0].Plan)
	assert.Equal(t, int64(10), result.Limit)
}

func TestCustomersClient_List_NilQuery(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.URL.RawQuery)
		_, _ = writer.Write([]byte(`{"customers": [], "limit": 50, "offset": 0}`))
	})

	result, err := apiClient.Customers().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Customers)
}

func TestCustomersClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("without idempotency key", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/v1/admin/customers", request.URL.Path)
			assert.Empty(t, request.Header.Get("Idempotency-Key"))

			var body releasy.CustomerCreateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "acme", body.Name)

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id": "cus_1", "name": "acme", "created_at": 1700000000}`))
		})

		created, err := apiClient.Customers().Create(context.Background(), &releasy.CustomerCreateRequest{
			Name: "acme",
		})
		require.NoError(t, err)
		assert.Equal(t, "cus_1", created.ID)
		assert.Nil(t, created.Plan)
	})

	t.Run("with idempotency key", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "retry-token-1", request.Header.Get("Idempotency-Key"))
			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id": "cus_1", "name": "acme", "created_at": 1700000000}`))
		})

		created, err := apiClient.Customers().CreateWithIdempotencyKey(context.Background(),
			&releasy.CustomerCreateRequest{Name: "acme"}, "retry-token-1")
		require.NoError(t, err)
		assert.Equal(t, "cus_1", created.ID)
	})
}

func TestCustomersClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/admin/customers/cus_1", request.URL.Path)
			_, _ = writer.Write([]byte(`{
				"id": "cus_1",
				"name": "acme",
				"created_at": 1700000000,
				"suspended_at": 1705000000
			}`))
		})

		customer, err := apiClient.Customers().Get(context.Background(), "cus_1")
		require.NoError(t, err)
		assert.Equal(t, "acme", customer.Name)
		require.NotNil(t, customer.SuspendedAt)
		assert.Equal(t, int64(1705000000), *customer.SuspendedAt)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"code":"customer_not_found","message":"no such customer"}}`))
		})

		customer, err := apiClient.Customers().Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Nil(t, customer)
		assert.True(t, releasy.IsNotFound(err))
	})
}

func TestCustomersClient_Update(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "/v1/admin/customers/cus_1", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, true, body["suspended"])
		assert.NotContains(t, body, "name")
		assert.NotContains(t, body, "plan")

		_, _ = writer.Write([]byte(`{
			"id": "cus_1",
			"name": "acme",
			"created_at": 1700000000,
			"suspended_at": 1705000000
		}`))
	})

	customer, err := apiClient.Customers().Update(context.Background(), "cus_1", &releasy.CustomerUpdateRequest{
		Suspended: releasy.Bool(true),
	})
	require.NoError(t, err)
	assert.NotNil(t, customer.SuspendedAt)
}
