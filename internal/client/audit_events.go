package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/releasy-io/releasy-go/internal/constants"
	internalhttp "github.com/releasy-io/releasy-go/internal/http"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// AuditEventsClient implements the releasy.AuditEventsClient interface.
type AuditEventsClient struct {
	httpClient *internalhttp.Client
}

// NewAuditEventsClient creates a new AuditEventsClient.
func NewAuditEventsClient(httpClient *internalhttp.Client) *AuditEventsClient {
	return &AuditEventsClient{httpClient: httpClient}
}

// List lists audit events.
func (c *AuditEventsClient) List(ctx context.Context, query *releasy.AuditEventListQuery) (*releasy.AuditEventListResponse, error) {
	var values url.Values
	if query != nil {
		values = query.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.PathAdminAuditEvents, values)
	if err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}

	var result releasy.AuditEventListResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing audit event list response: %w", err)
	}

	return &result, nil
}
