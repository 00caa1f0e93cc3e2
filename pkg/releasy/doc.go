// Package releasy defines the public surface of the Releasy API client:
// the Client interface and its per-resource clients, the Auth credential
// variants, the Config used to build a client, the request/response records
// for every endpoint, and the error taxonomy.
//
// Construct a client with github.com/releasy-io/releasy-go/pkg/releasyclient:
//
//	client, err := releasyclient.New(&releasy.Config{
//		BaseURL: "https://api.releasy.example.com",
//		Auth:    releasy.AdminKeyAuth(os.Getenv("RELEASY_ADMIN_KEY")),
//	})
//
// All optional request fields use pointer types; a nil pointer means the field
// is omitted from the wire payload entirely, never sent as null or as a zero
// value. The String/Int32/Int64/Bool helpers build pointers for literals.
package releasy
