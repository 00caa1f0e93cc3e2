package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/releasy-io/releasy-go/internal/constants"
	internalhttp "github.com/releasy-io/releasy-go/internal/http"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// CustomersClient implements the releasy.CustomersClient interface.
type CustomersClient struct {
	httpClient *internalhttp.Client
}

// NewCustomersClient creates a new CustomersClient.
func NewCustomersClient(httpClient *internalhttp.Client) *CustomersClient {
	return &CustomersClient{httpClient: httpClient}
}

// List lists customers.
func (c *CustomersClient) List(ctx context.Context, query *releasy.CustomerListQuery) (*releasy.CustomerListResponse, error) {
	var values url.Values
	if query != nil {
		values = query.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.PathAdminCustomers, values)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var result releasy.CustomerListResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing customer list response: %w", err)
	}

	return &result, nil
}

// Create creates a customer.
func (c *CustomersClient) Create(ctx context.Context, request *releasy.CustomerCreateRequest) (*releasy.CustomerCreateResponse, error) {
	return c.create(ctx, request, "")
}

// CreateWithIdempotencyKey creates a customer with an Idempotency-Key header
// attached, so the server can deduplicate retried creations.
func (c *CustomersClient) CreateWithIdempotencyKey(ctx context.Context, request *releasy.CustomerCreateRequest, idempotencyKey string) (*releasy.CustomerCreateResponse, error) {
	return c.create(ctx, request, idempotencyKey)
}

func (c *CustomersClient) create(ctx context.Context, request *releasy.CustomerCreateRequest, idempotencyKey string) (*releasy.CustomerCreateResponse, error) {
	req := &internalhttp.Request{
		Method: http.MethodPost,
		Path:   constants.PathAdminCustomers,
		Body:   request,
	}
	if idempotencyKey != "" {
		req.Headers = map[string]string{constants.HeaderIdempotencyKey: idempotencyKey}
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	var customer releasy.CustomerCreateResponse

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Get retrieves a specific customer.
func (c *CustomersClient) Get(ctx context.Context, customerID string) (*releasy.Customer, error) {
	path := constants.PathAdminCustomers + "/" + customerID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	var customer releasy.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Update patches a customer.
func (c *CustomersClient) Update(ctx context.Context, customerID string, request *releasy.CustomerUpdateRequest) (*releasy.Customer, error) {
	path := constants.PathAdminCustomers + "/" + customerID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	var customer releasy.Customer

	err = json.Unmarshal(resp.Body, &customer)
	if err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}
