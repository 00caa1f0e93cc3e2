package releasy

import (
	"context"
	"net/http"
	"time"
)

// HealthClient provides access to the unauthenticated service probes.
type HealthClient interface {
	OpenAPI(ctx context.Context) (map[string]interface{}, error)
	Health(ctx context.Context) (*HealthResponse, error)
	Live(ctx context.Context) (*HealthResponse, error)
	Ready(ctx context.Context) (*HealthResponse, error)
}

// CustomersClient manages customer records (admin key).
type CustomersClient interface {
	List(ctx context.Context, query *CustomerListQuery) (*CustomerListResponse, error)
	Create(ctx context.Context, request *CustomerCreateRequest) (*CustomerCreateResponse, error)
	// CreateWithIdempotencyKey is Create with a caller-supplied token attached
	// as the Idempotency-Key header, letting the server deduplicate retried
	// creations.
	CreateWithIdempotencyKey(ctx context.Context, request *CustomerCreateRequest, idempotencyKey string) (*CustomerCreateResponse, error)
	Get(ctx context.Context, customerID string) (*Customer, error)
	Update(ctx context.Context, customerID string, request *CustomerUpdateRequest) (*Customer, error)
}

// UsersClient manages user records (admin key).
type UsersClient interface {
	List(ctx context.Context, query *UserListQuery) (*UserListResponse, error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	CreateWithIdempotencyKey(ctx context.Context, request *UserCreateRequest, idempotencyKey string) (*User, error)
	Get(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, request *UserUpdateRequest) (*User, error)
	ReplaceGroups(ctx context.Context, userID string, request *UserGroupsReplaceRequest) (*User, error)
	// ResetCredentials succeeds only on a 202 with no body.
	ResetCredentials(ctx context.Context, userID string, request *ResetCredentialsRequest) error
}

// EntitlementsClient manages customer entitlements (admin key).
type EntitlementsClient interface {
	List(ctx context.Context, customerID string, query *EntitlementListQuery) (*EntitlementListResponse, error)
	Create(ctx context.Context, customerID string, request *EntitlementCreateRequest) (*Entitlement, error)
	Update(ctx context.Context, customerID, entitlementID string, request *EntitlementUpdateRequest) (*Entitlement, error)
	// Delete succeeds only on a 204 with no body.
	Delete(ctx context.Context, customerID, entitlementID string) error
}

// AuditEventsClient reads the admin audit trail (admin key).
type AuditEventsClient interface {
	List(ctx context.Context, query *AuditEventListQuery) (*AuditEventListResponse, error)
}

// KeysClient mints and revokes API keys (admin key) and introspects the
// calling key (API key).
type KeysClient interface {
	Create(ctx context.Context, request *APIKeyCreateRequest) (*APIKeyCreateResponse, error)
	Revoke(ctx context.Context, request *APIKeyRevokeRequest) (*APIKeyRevokeResponse, error)
	Introspect(ctx context.Context) (*APIKeyIntrospection, error)
}

// DownloadsClient issues and resolves download tokens (API key for issuance).
type DownloadsClient interface {
	CreateToken(ctx context.Context, request *DownloadTokenRequest) (*DownloadTokenResponse, error)
	// Resolve follows the redirect-based download flow: a 302 yields the
	// Location header as the resolution, a 302 without Location is
	// ErrMissingLocationHeader, anything else is an API error.
	Resolve(ctx context.Context, token string) (*DownloadResolution, error)
}

// ReleasesClient manages releases and their artifacts.
type ReleasesClient interface {
	List(ctx context.Context, query *ReleaseListQuery) (*ReleaseListResponse, error)
	Create(ctx context.Context, request *ReleaseCreateRequest) (*Release, error)
	// Delete succeeds only on a 204 with no body.
	Delete(ctx context.Context, releaseID string) error
	RegisterArtifact(ctx context.Context, releaseID string, request *ArtifactRegisterRequest) (*ArtifactRegisterResponse, error)
	PresignArtifactUpload(ctx context.Context, releaseID string, request *ArtifactPresignRequest) (*ArtifactPresignResponse, error)
	// UploadPresignedArtifact PUTs the file's raw bytes to the presigned URL.
	// The URL is absolute and pre-authorized, so no auth header is attached.
	// Any 2xx status is success.
	UploadPresignedArtifact(ctx context.Context, uploadURL, filePath string) error
	Publish(ctx context.Context, releaseID string) (*Release, error)
	Unpublish(ctx context.Context, releaseID string) (*Release, error)
}

// Client is the full Releasy API surface.
type Client interface {
	HealthClient

	Customers() CustomersClient
	Users() UsersClient
	Entitlements() EntitlementsClient
	AuditEvents() AuditEventsClient
	Keys() KeysClient
	Downloads() DownloadsClient
	Releases() ReleasesClient

	// WithAuth derives a new immutable client that shares the underlying
	// transport but sends a different credential. The original client is
	// untouched and the base URL is not re-validated.
	WithAuth(auth Auth) Client
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a releasy.Client.
//
// BaseURL is validated once at construction: it is trimmed, trailing slashes
// are removed, and it must start with http:// or https://; anything else
// fails with ErrInvalidBaseURL before any network I/O.
//
// The client itself never retries. RetryMax and friends tune the underlying
// retryablehttp transport agent for callers who want transport-level retries;
// they default to zero, which disables retrying entirely.
type Config struct {
	// BaseURL: base URL for the Releasy API (e.g. "https://api.releasy.example.com").
	BaseURL string

	// Auth: the active credential variant. Zero value is NoAuth.
	Auth Auth

	// UserAgent: sent as the User-Agent header when non-empty.
	UserAgent string

	// Timeout: optional global timeout applied to the transport agent. Zero
	// means no client-side timeout.
	Timeout time.Duration

	// HTTPClient: optional pre-built transport agent. When set, Timeout is
	// ignored and the agent is used as-is.
	HTTPClient *http.Client

	// RetryMax: maximum transport-level retries. Zero disables retrying.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
