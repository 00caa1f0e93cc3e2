package releasy

import "net/http"

// Auth header names used by the Releasy API. Admin keys and API keys are
// static shared secrets distinguished only by which header carries them.
const (
	HeaderAdminKey = "x-releasy-admin-key"
	HeaderAPIKey   = "x-releasy-api-key"
)

// AuthScheme identifies one of the closed set of credential variants.
type AuthScheme int

const (
	// AuthNone sends no credential header.
	AuthNone AuthScheme = iota
	// AuthAdminKey sends the shared secret in the x-releasy-admin-key header.
	AuthAdminKey
	// AuthAPIKey sends the shared secret in the x-releasy-api-key header.
	AuthAPIKey
	// AuthOperatorJWT sends a bearer token in the Authorization header.
	AuthOperatorJWT
)

// Auth is an immutable credential. Exactly one variant is active per client;
// Apply is the single dispatch point that attaches the matching header, so no
// call site carries its own auth logic.
type Auth struct {
	scheme AuthScheme
	secret string
}

// NoAuth returns the credential-less variant.
func NoAuth() Auth {
	return Auth{scheme: AuthNone}
}

// AdminKeyAuth returns an admin-key credential.
func AdminKeyAuth(key string) Auth {
	return Auth{scheme: AuthAdminKey, secret: key}
}

// APIKeyAuth returns an API-key credential.
func APIKeyAuth(key string) Auth {
	return Auth{scheme: AuthAPIKey, secret: key}
}

// OperatorJWTAuth returns a bearer-token credential.
func OperatorJWTAuth(token string) Auth {
	return Auth{scheme: AuthOperatorJWT, secret: token}
}

// Scheme reports the active variant.
func (a Auth) Scheme() AuthScheme {
	return a.scheme
}

// Apply sets at most one credential header on the outgoing request.
func (a Auth) Apply(header http.Header) {
	switch a.scheme {
	case AuthNone:
	case AuthAdminKey:
		header.Set(HeaderAdminKey, a.secret)
	case AuthAPIKey:
		header.Set(HeaderAPIKey, a.secret)
	case AuthOperatorJWT:
		header.Set("Authorization", "Bearer "+a.secret)
	}
}
