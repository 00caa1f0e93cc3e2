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

// ReleasesClient implements the releasy.ReleasesClient interface.
type ReleasesClient struct {
	httpClient *internalhttp.Client
}

// NewReleasesClient creates a new ReleasesClient.
func NewReleasesClient(httpClient *internalhttp.Client) *ReleasesClient {
	return &ReleasesClient{httpClient: httpClient}
}

// List lists releases.
func (c *ReleasesClient) List(ctx context.Context, query *releasy.ReleaseListQuery) (*releasy.ReleaseListResponse, error) {
	var values url.Values
	if query != nil {
		values = query.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.PathReleases, values)
	if err != nil {
		return nil, fmt.Errorf("listing releases: %w", err)
	}

	var result releasy.ReleaseListResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing release list response: %w", err)
	}

	return &result, nil
}

// Create creates a draft release.
func (c *ReleasesClient) Create(ctx context.Context, request *releasy.ReleaseCreateRequest) (*releasy.Release, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathReleases, request)
	if err != nil {
		return nil, fmt.Errorf("creating release: %w", err)
	}

	return parseRelease(resp.Body)
}

// Delete deletes a release. The endpoint acknowledges with a bodiless 204;
// any other status is an error.
func (c *ReleasesClient) Delete(ctx context.Context, releaseID string) error {
	path := constants.PathReleases + "/" + releaseID

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting release: %w", err)
	}

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("deleting release: %w", internalhttp.ErrorFromResponse(resp))
	}

	return nil
}

// RegisterArtifact records an uploaded artifact on a release.
func (c *ReleasesClient) RegisterArtifact(ctx context.Context, releaseID string, request *releasy.ArtifactRegisterRequest) (*releasy.ArtifactRegisterResponse, error) {
	path := constants.PathReleases + "/" + releaseID + "/artifacts"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("registering artifact: %w", err)
	}

	var artifact releasy.ArtifactRegisterResponse

	err = json.Unmarshal(resp.Body, &artifact)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact response: %w", err)
	}

	return &artifact, nil
}

// PresignArtifactUpload asks for a presigned upload URL for an artifact.
func (c *ReleasesClient) PresignArtifactUpload(ctx context.Context, releaseID string, request *releasy.ArtifactPresignRequest) (*releasy.ArtifactPresignResponse, error) {
	path := constants.PathReleases + "/" + releaseID + "/artifacts/presign"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("presigning artifact upload: %w", err)
	}

	var presign releasy.ArtifactPresignResponse

	err = json.Unmarshal(resp.Body, &presign)
	if err != nil {
		return nil, fmt.Errorf("parsing presign response: %w", err)
	}

	return &presign, nil
}

// UploadPresignedArtifact uploads the file's raw bytes to the presigned URL.
func (c *ReleasesClient) UploadPresignedArtifact(ctx context.Context, uploadURL, filePath string) error {
	err := c.httpClient.PutFile(ctx, uploadURL, filePath)
	if err != nil {
		return fmt.Errorf("uploading artifact: %w", err)
	}

	return nil
}

// Publish publishes a release. The request carries an empty body.
func (c *ReleasesClient) Publish(ctx context.Context, releaseID string) (*releasy.Release, error) {
	path := constants.PathReleases + "/" + releaseID + "/publish"

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("publishing release: %w", err)
	}

	return parseRelease(resp.Body)
}

// Unpublish unpublishes a release. The request carries an empty body.
func (c *ReleasesClient) Unpublish(ctx context.Context, releaseID string) (*releasy.Release, error) {
	path := constants.PathReleases + "/" + releaseID + "/unpublish"

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("unpublishing release: %w", err)
	}

	return parseRelease(resp.Body)
}

func parseRelease(body []byte) (*releasy.Release, error) {
	var release releasy.Release

	err := json.Unmarshal(body, &release)
	if err != nil {
		return nil, fmt.Errorf("parsing release response: %w", err)
	}

	return &release, nil
}
