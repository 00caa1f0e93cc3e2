// Package constants centralizes API paths, header names, and CLI display
// values.
package constants

// API paths.
const (
	PathOpenAPI = "/openapi.json"
	PathHealth  = "/health"
	PathLive    = "/live"
	PathReady   = "/ready"

	PathAdminCustomers   = "/v1/admin/customers"
	PathAdminUsers       = "/v1/admin/users"
	PathAdminAuditEvents = "/v1/admin/audit-events"
	PathAdminKeys        = "/v1/admin/keys"
	PathAdminKeysRevoke  = "/v1/admin/keys/revoke"

	PathAuthIntrospect = "/v1/auth/introspect"
	PathDownloadsToken = "/v1/downloads/token"
	PathDownloads      = "/v1/downloads"
	PathReleases       = "/v1/releases"
)

// Header names.
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderLocation       = "Location"
)

// CLI display values.
const (
	NotAvailable = "N/A"

	DefaultPageSize = 50

	TimestampDisplayFormat = "2006-01-02 15:04:05"
)
