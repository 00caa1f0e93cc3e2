package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/releasy-io/releasy-go/internal/constants"
	internalhttp "github.com/releasy-io/releasy-go/internal/http"
	"github.com/releasy-io/releasy-go/pkg/releasy"
)

// DownloadsClient implements the releasy.DownloadsClient interface.
type DownloadsClient struct {
	httpClient *internalhttp.Client
}

// NewDownloadsClient creates a new DownloadsClient.
func NewDownloadsClient(httpClient *internalhttp.Client) *DownloadsClient {
	return &DownloadsClient{httpClient: httpClient}
}

// CreateToken issues a short-lived download token for an artifact.
func (c *DownloadsClient) CreateToken(ctx context.Context, request *releasy.DownloadTokenRequest) (*releasy.DownloadTokenResponse, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathDownloadsToken, request)
	if err != nil {
		return nil, fmt.Errorf("creating download token: %w", err)
	}

	var token releasy.DownloadTokenResponse

	err = json.Unmarshal(resp.Body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing download token response: %w", err)
	}

	return &token, nil
}

// Resolve resolves a download token. Success is a 302 whose Location header
// carries the final object location; a 302 without Location means the server
// broke the redirect contract and is reported as ErrMissingLocationHeader,
// never as a generic API error.
func (c *DownloadsClient) Resolve(ctx context.Context, token string) (*releasy.DownloadResolution, error) {
	resp, err := c.httpClient.DoRaw(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   constants.PathDownloads + "/" + token,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving download token: %w", err)
	}

	if resp.StatusCode == http.StatusFound {
		location := resp.Headers.Get(constants.HeaderLocation)
		if location == "" {
			return nil, releasy.ErrMissingLocationHeader
		}

		return &releasy.DownloadResolution{Location: location}, nil
	}

	return nil, fmt.Errorf("resolving download token: %w", internalhttp.ErrorFromResponse(resp))
}
