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

// UsersClient implements the releasy.UsersClient interface.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// List lists users.
func (c *UsersClient) List(ctx context.Context, query *releasy.UserListQuery) (*releasy.UserListResponse, error) {
	var values url.Values
	if query != nil {
		values = query.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.PathAdminUsers, values)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var result releasy.UserListResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing user list response: %w", err)
	}

	return &result, nil
}

// Create creates a user.
func (c *UsersClient) Create(ctx context.Context, request *releasy.UserCreateRequest) (*releasy.User, error) {
	return c.create(ctx, request, "")
}

// CreateWithIdempotencyKey creates a user with an Idempotency-Key header
// attached.
func (c *UsersClient) CreateWithIdempotencyKey(ctx context.Context, request *releasy.UserCreateRequest, idempotencyKey string) (*releasy.User, error) {
	return c.create(ctx, request, idempotencyKey)
}

func (c *UsersClient) create(ctx context.Context, request *releasy.UserCreateRequest, idempotencyKey string) (*releasy.User, error) {
	req := &internalhttp.Request{
		Method: http.MethodPost,
		Path:   constants.PathAdminUsers,
		Body:   request,
	}
	if idempotencyKey != "" {
		req.Headers = map[string]string{constants.HeaderIdempotencyKey: idempotencyKey}
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user releasy.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Get retrieves a specific user.
func (c *UsersClient) Get(ctx context.Context, userID string) (*releasy.User, error) {
	path := constants.PathAdminUsers + "/" + userID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user releasy.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Update patches a user.
func (c *UsersClient) Update(ctx context.Context, userID string, request *releasy.UserUpdateRequest) (*releasy.User, error) {
	path := constants.PathAdminUsers + "/" + userID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user releasy.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// ReplaceGroups replaces a user's full group membership.
func (c *UsersClient) ReplaceGroups(ctx context.Context, userID string, request *releasy.UserGroupsReplaceRequest) (*releasy.User, error) {
	path := constants.PathAdminUsers + "/" + userID + "/groups"

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("replacing user groups: %w", err)
	}

	var user releasy.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// ResetCredentials triggers a credential reset. The endpoint acknowledges
// with a bodiless 202; any other status, 2xx included, is an error.
func (c *UsersClient) ResetCredentials(ctx context.Context, userID string, request *releasy.ResetCredentialsRequest) error {
	path := constants.PathAdminUsers + "/" + userID + "/reset-credentials"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return fmt.Errorf("resetting user credentials: %w", err)
	}

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("resetting user credentials: %w", internalhttp.ErrorFromResponse(resp))
	}

	return nil
}
