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

// EntitlementsClient implements the releasy.EntitlementsClient interface.
type EntitlementsClient struct {
	httpClient *internalhttp.Client
}

// NewEntitlementsClient creates a new EntitlementsClient.
func NewEntitlementsClient(httpClient *internalhttp.Client) *EntitlementsClient {
	return &EntitlementsClient{httpClient: httpClient}
}

func entitlementsPath(customerID string) string {
	return constants.PathAdminCustomers + "/" + customerID + "/entitlements"
}

// List lists a customer's entitlements.
func (c *EntitlementsClient) List(ctx context.Context, customerID string, query *releasy.EntitlementListQuery) (*releasy.EntitlementListResponse, error) {
	var values url.Values
	if query != nil {
		values = query.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, entitlementsPath(customerID), values)
	if err != nil {
		return nil, fmt.Errorf("listing entitlements: %w", err)
	}

	var result releasy.EntitlementListResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing entitlement list response: %w", err)
	}

	return &result, nil
}

// Create grants an entitlement to a customer.
func (c *EntitlementsClient) Create(ctx context.Context, customerID string, request *releasy.EntitlementCreateRequest) (*releasy.Entitlement, error) {
	resp, err := c.httpClient.Post(ctx, entitlementsPath(customerID), request)
	if err != nil {
		return nil, fmt.Errorf("creating entitlement: %w", err)
	}

	var entitlement releasy.Entitlement

	err = json.Unmarshal(resp.Body, &entitlement)
	if err != nil {
		return nil, fmt.Errorf("parsing entitlement response: %w", err)
	}

	return &entitlement, nil
}

// Update patches an entitlement.
func (c *EntitlementsClient) Update(ctx context.Context, customerID, entitlementID string, request *releasy.EntitlementUpdateRequest) (*releasy.Entitlement, error) {
	path := entitlementsPath(customerID) + "/" + entitlementID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating entitlement: %w", err)
	}

	var entitlement releasy.Entitlement

	err = json.Unmarshal(resp.Body, &entitlement)
	if err != nil {
		return nil, fmt.Errorf("parsing entitlement response: %w", err)
	}

	return &entitlement, nil
}

// Delete revokes an entitlement. The endpoint acknowledges with a bodiless
// 204; any other status is an error.
func (c *EntitlementsClient) Delete(ctx context.Context, customerID, entitlementID string) error {
	path := entitlementsPath(customerID) + "/" + entitlementID

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting entitlement: %w", err)
	}

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("deleting entitlement: %w", internalhttp.ErrorFromResponse(resp))
	}

	return nil
}
