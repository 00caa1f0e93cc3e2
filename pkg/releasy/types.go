package releasy

import "encoding/json"

// Pointer helpers for optional request fields.

// String returns a pointer to the given string.
func String(v string) *string { return &v }

// Int32 returns a pointer to the given int32.
func Int32(v int32) *int32 { return &v }

// Int64 returns a pointer to the given int64.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool { return &v }

// HealthResponse is returned by the health, liveness, and readiness probes.
type HealthResponse struct {
	Status string `json:"status" yaml:"status"`
}

// Customer represents a customer record.
type Customer struct {
	ID          string  `json:"id"                     yaml:"id"`
	Name        string  `json:"name"                   yaml:"name"`
	CreatedAt   int64   `json:"created_at"             yaml:"created_at"`
	Plan        *string `json:"plan,omitempty"         yaml:"plan,omitempty"`
	SuspendedAt *int64  `json:"suspended_at,omitempty" yaml:"suspended_at,omitempty"`
}

// CustomerCreateRequest creates a customer.
type CustomerCreateRequest struct {
	Name string  `json:"name"           yaml:"name"`
	Plan *string `json:"plan,omitempty" yaml:"plan,omitempty"`
}

// CustomerCreateResponse is the creation echo; unlike Customer it never
// carries a suspension timestamp.
type CustomerCreateResponse struct {
	ID        string  `json:"id"             yaml:"id"`
	Name      string  `json:"name"           yaml:"name"`
	CreatedAt int64   `json:"created_at"     yaml:"created_at"`
	Plan      *string `json:"plan,omitempty" yaml:"plan,omitempty"`
}

// CustomerUpdateRequest patches a customer; absent fields stay untouched.
type CustomerUpdateRequest struct {
	Name      *string `json:"name,omitempty"      yaml:"name,omitempty"`
	Plan      *string `json:"plan,omitempty"      yaml:"plan,omitempty"`
	Suspended *bool   `json:"suspended,omitempty" yaml:"suspended,omitempty"`
}

// CustomerListResponse is an offset-paginated customer page.
type CustomerListResponse struct {
	Customers []Customer `json:"customers" yaml:"customers"`
	Limit     int64      `json:"limit"     yaml:"limit"`
	Offset    int64      `json:"offset"    yaml:"offset"`
}

// User represents a user record.
type User struct {
	ID             string          `json:"id"                       yaml:"id"`
	KeycloakUserID string          `json:"keycloak_user_id"         yaml:"keycloak_user_id"`
	CustomerID     string          `json:"customer_id"              yaml:"customer_id"`
	Email          string          `json:"email"                    yaml:"email"`
	Status         string          `json:"status"                   yaml:"status"`
	Groups         []string        `json:"groups"                   yaml:"groups"`
	CreatedAt      int64           `json:"created_at"               yaml:"created_at"`
	UpdatedAt      int64           `json:"updated_at"               yaml:"updated_at"`
	DisabledAt     *int64          `json:"disabled_at,omitempty"    yaml:"disabled_at,omitempty"`
	DisplayName    *string         `json:"display_name,omitempty"   yaml:"display_name,omitempty"`
	LastSyncedAt   *int64          `json:"last_synced_at,omitempty" yaml:"last_synced_at,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
}

// UserListResponse is a cursor-paginated user page.
type UserListResponse struct {
	Users      []User  `json:"users"                 yaml:"users"`
	NextCursor *string `json:"next_cursor,omitempty" yaml:"next_cursor,omitempty"`
}

// UserCreateRequest creates a user.
type UserCreateRequest struct {
	Email       string          `json:"email"                  yaml:"email"`
	CustomerID  string          `json:"customer_id"            yaml:"customer_id"`
	DisplayName *string         `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Groups      []string        `json:"groups,omitempty"       yaml:"groups,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"     yaml:"metadata,omitempty"`
	Status      *string         `json:"status,omitempty"       yaml:"status,omitempty"`
}

// UserUpdateRequest patches a user; absent fields stay untouched.
type UserUpdateRequest struct {
	DisplayName *string         `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Groups      []string        `json:"groups,omitempty"       yaml:"groups,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"     yaml:"metadata,omitempty"`
	Status      *string         `json:"status,omitempty"       yaml:"status,omitempty"`
}

// UserGroupsReplaceRequest replaces the full group membership of a user.
type UserGroupsReplaceRequest struct {
	Groups []string `json:"groups" yaml:"groups"`
}

// ResetCredentialsRequest triggers a credential reset for a user.
type ResetCredentialsRequest struct {
	SendEmail *bool `json:"send_email,omitempty" yaml:"send_email,omitempty"`
}

// Entitlement represents a product entitlement attached to a customer.
type Entitlement struct {
	ID         string          `json:"id"                 yaml:"id"`
	CustomerID string          `json:"customer_id"        yaml:"customer_id"`
	Product    string          `json:"product"            yaml:"product"`
	StartsAt   int64           `json:"starts_at"          yaml:"starts_at"`
	EndsAt     *int64          `json:"ends_at,omitempty"  yaml:"ends_at,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// EntitlementCreateRequest grants an entitlement.
type EntitlementCreateRequest struct {
	Product  string          `json:"product"            yaml:"product"`
	StartsAt int64           `json:"starts_at"          yaml:"starts_at"`
	EndsAt   *int64          `json:"ends_at,omitempty"  yaml:"ends_at,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// EntitlementUpdateRequest patches an entitlement.
type EntitlementUpdateRequest struct {
	Product  *string         `json:"product,omitempty"   yaml:"product,omitempty"`
	StartsAt *int64          `json:"starts_at,omitempty" yaml:"starts_at,omitempty"`
	EndsAt   *int64          `json:"ends_at,omitempty"   yaml:"ends_at,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
}

// EntitlementListResponse is an offset-paginated entitlement page.
type EntitlementListResponse struct {
	Entitlements []Entitlement `json:"entitlements" yaml:"entitlements"`
	Limit        int64         `json:"limit"        yaml:"limit"`
	Offset       int64         `json:"offset"       yaml:"offset"`
}

// AuditEvent represents a recorded admin action.
type AuditEvent struct {
	ID         string          `json:"id"                    yaml:"id"`
	Actor      string          `json:"actor"                 yaml:"actor"`
	Event      string          `json:"event"                 yaml:"event"`
	CreatedAt  int64           `json:"created_at"            yaml:"created_at"`
	CustomerID *string         `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"     yaml:"payload,omitempty"`
}

// AuditEventListResponse is an offset-paginated audit event page.
type AuditEventListResponse struct {
	Events []AuditEvent `json:"events" yaml:"events"`
	Limit  int64        `json:"limit"  yaml:"limit"`
	Offset int64        `json:"offset" yaml:"offset"`
}

// APIKeyCreateRequest mints an API key for a customer.
type APIKeyCreateRequest struct {
	CustomerID string   `json:"customer_id"          yaml:"customer_id"`
	ExpiresAt  *int64   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	KeyType    *string  `json:"key_type,omitempty"   yaml:"key_type,omitempty"`
	Name       *string  `json:"name,omitempty"       yaml:"name,omitempty"`
	Scopes     []string `json:"scopes,omitempty"     yaml:"scopes,omitempty"`
}

// APIKeyCreateResponse carries the freshly minted secret; the server never
// returns it again.
type APIKeyCreateResponse struct {
	APIKeyID   string   `json:"api_key_id"           yaml:"api_key_id"`
	APIKey     string   `json:"api_key"              yaml:"api_key"`
	CustomerID string   `json:"customer_id"          yaml:"customer_id"`
	KeyType    string   `json:"key_type"             yaml:"key_type"`
	Scopes     []string `json:"scopes"               yaml:"scopes"`
	ExpiresAt  *int64   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// APIKeyRevokeRequest revokes an API key by id.
type APIKeyRevokeRequest struct {
	APIKeyID string `json:"api_key_id" yaml:"api_key_id"`
}

// APIKeyRevokeResponse acknowledges a revocation.
type APIKeyRevokeResponse struct {
	APIKeyID string `json:"api_key_id" yaml:"api_key_id"`
}

// APIKeyIntrospection describes the key used to authenticate the
// introspection call itself.
type APIKeyIntrospection struct {
	Active     bool     `json:"active"               yaml:"active"`
	APIKeyID   string   `json:"api_key_id"           yaml:"api_key_id"`
	CustomerID string   `json:"customer_id"          yaml:"customer_id"`
	KeyType    string   `json:"key_type"             yaml:"key_type"`
	Scopes     []string `json:"scopes"               yaml:"scopes"`
	ExpiresAt  *int64   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// DownloadTokenRequest requests a short-lived download token for an artifact.
type DownloadTokenRequest struct {
	ArtifactID       string  `json:"artifact_id"                  yaml:"artifact_id"`
	ExpiresInSeconds *int32  `json:"expires_in_seconds,omitempty" yaml:"expires_in_seconds,omitempty"`
	Purpose          *string `json:"purpose,omitempty"            yaml:"purpose,omitempty"`
}

// DownloadTokenResponse carries the tokenized download URL.
type DownloadTokenResponse struct {
	DownloadURL string `json:"download_url" yaml:"download_url"`
	ExpiresAt   int64  `json:"expires_at"   yaml:"expires_at"`
}

// DownloadResolution is the outcome of following the redirect-based download
// flow: the final object location, not the object bytes.
type DownloadResolution struct {
	Location string `json:"location" yaml:"location"`
}

// Release represents a product release.
type Release struct {
	ID          string            `json:"id"                     yaml:"id"`
	Product     string            `json:"product"                yaml:"product"`
	Version     string            `json:"version"                yaml:"version"`
	Status      string            `json:"status"                 yaml:"status"`
	CreatedAt   int64             `json:"created_at"             yaml:"created_at"`
	PublishedAt *int64            `json:"published_at,omitempty" yaml:"published_at,omitempty"`
	Artifacts   []ArtifactSummary `json:"artifacts,omitempty"    yaml:"artifacts,omitempty"`
}

// ReleaseCreateRequest creates a draft release.
type ReleaseCreateRequest struct {
	Product string `json:"product" yaml:"product"`
	Version string `json:"version" yaml:"version"`
}

// ReleaseListResponse is an offset-paginated release page.
type ReleaseListResponse struct {
	Releases []Release `json:"releases" yaml:"releases"`
	Limit    int64     `json:"limit"    yaml:"limit"`
	Offset   int64     `json:"offset"   yaml:"offset"`
}

// ArtifactSummary is the compact artifact shape embedded in releases.
type ArtifactSummary struct {
	ID        string `json:"id"         yaml:"id"`
	ObjectKey string `json:"object_key" yaml:"object_key"`
	Platform  string `json:"platform"   yaml:"platform"`
	Checksum  string `json:"checksum"   yaml:"checksum"`
	Size      int64  `json:"size"       yaml:"size"`
}

// ArtifactPresignRequest asks for a presigned upload URL.
type ArtifactPresignRequest struct {
	Filename string `json:"filename" yaml:"filename"`
	Platform string `json:"platform" yaml:"platform"`
}

// ArtifactPresignResponse carries the time-limited upload URL.
type ArtifactPresignResponse struct {
	ArtifactID string `json:"artifact_id" yaml:"artifact_id"`
	ObjectKey  string `json:"object_key"  yaml:"object_key"`
	UploadURL  string `json:"upload_url"  yaml:"upload_url"`
	ExpiresAt  int64  `json:"expires_at"  yaml:"expires_at"`
}

// ArtifactRegisterRequest records an uploaded artifact on a release.
type ArtifactRegisterRequest struct {
	ArtifactID string `json:"artifact_id" yaml:"artifact_id"`
	ObjectKey  string `json:"object_key"  yaml:"object_key"`
	Checksum   string `json:"checksum"    yaml:"checksum"`
	Size       int64  `json:"size"        yaml:"size"`
	Platform   string `json:"platform"    yaml:"platform"`
}

// ArtifactRegisterResponse is the stored artifact record.
type ArtifactRegisterResponse struct {
	ID        string `json:"id"         yaml:"id"`
	ReleaseID string `json:"release_id" yaml:"release_id"`
	ObjectKey string `json:"object_key" yaml:"object_key"`
	Checksum  string `json:"checksum"   yaml:"checksum"`
	Size      int64  `json:"size"       yaml:"size"`
	Platform  string `json:"platform"   yaml:"platform"`
	CreatedAt int64  `json:"created_at" yaml:"created_at"`
}
