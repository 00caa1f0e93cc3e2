package releasy

import (
	"net/url"
	"strconv"
)

// Typed list queries. Every field is optional; a nil pointer means the
// parameter is omitted from the query string entirely. Booleans encode as
// literal "true"/"false", integers as base-10 decimal, timestamps as their
// integer representation.

// CustomerListQuery filters the customer list.
type CustomerListQuery struct {
	CustomerID *string
	Name       *string
	Plan       *string
	Limit      *int32
	Offset     *int32
}

// ToValues converts the query to URL values.
func (q *CustomerListQuery) ToValues() url.Values {
	values := url.Values{}
	setString(values, "customer_id", q.CustomerID)
	setString(values, "name", q.Name)
	setString(values, "plan", q.Plan)
	setInt32(values, "limit", q.Limit)
	setInt32(values, "offset", q.Offset)

	return values
}

// UserListQuery filters the user list.
type UserListQuery struct {
	CustomerID     *string
	Email          *string
	Status         *string
	KeycloakUserID *string
	CreatedFrom    *int64
	CreatedTo      *int64
	Limit          *int32
	Cursor         *string
}

// ToValues converts the query to URL values.
func (q *UserListQuery) ToValues() url.Values {
	values := url.Values{}
	setString(values, "customer_id", q.CustomerID)
	setString(values, "email", q.Email)
	setString(values, "status", q.Status)
	setString(values, "keycloak_user_id", q.KeycloakUserID)
	setInt64(values, "created_from", q.CreatedFrom)
	setInt64(values, "created_to", q.CreatedTo)
	setInt32(values, "limit", q.Limit)
	setString(values, "cursor", q.Cursor)

	return values
}

// EntitlementListQuery filters a customer's entitlement list.
type EntitlementListQuery struct {
	Product *string
	Limit   *int32
	Offset  *int32
}

// ToValues converts the query to URL values.
func (q *EntitlementListQuery) ToValues() url.Values {
	values := url.Values{}
	setString(values, "product", q.Product)
	setInt32(values, "limit", q.Limit)
	setInt32(values, "offset", q.Offset)

	return values
}

// AuditEventListQuery filters the audit event list.
type AuditEventListQuery struct {
	CustomerID  *string
	Actor       *string
	Event       *string
	CreatedFrom *int64
	CreatedTo   *int64
	Limit       *int32
	Offset      *int32
}

// ToValues converts the query to URL values.
func (q *AuditEventListQuery) ToValues() url.Values {
	values := url.Values{}
	setString(values, "customer_id", q.CustomerID)
	setString(values, "actor", q.Actor)
	setString(values, "event", q.Event)
	setInt64(values, "created_from", q.CreatedFrom)
	setInt64(values, "created_to", q.CreatedTo)
	setInt32(values, "limit", q.Limit)
	setInt32(values, "offset", q.Offset)

	return values
}

// ReleaseListQuery filters the release list.
type ReleaseListQuery struct {
	Product          *string
	Version          *string
	Status           *string
	IncludeArtifacts *bool
	Limit            *int32
	Offset           *int32
}

// ToValues converts the query to URL values.
func (q *ReleaseListQuery) ToValues() url.Values {
	values := url.Values{}
	setString(values, "product", q.Product)
	setString(values, "version", q.Version)
	setString(values, "status", q.Status)
	setBool(values, "include_artifacts", q.IncludeArtifacts)
	setInt32(values, "limit", q.Limit)
	setInt32(values, "offset", q.Offset)

	return values
}

func setString(values url.Values, key string, value *string) {
	if value != nil {
		values.Set(key, *value)
	}
}

func setInt32(values url.Values, key string, value *int32) {
	if value != nil {
		values.Set(key, strconv.FormatInt(int64(*value), 10))
	}
}

func setInt64(values url.Values, key string, value *int64) {
	if value != nil {
		values.Set(key, strconv.FormatInt(*value, 10))
	}
}

func setBool(values url.Values, key string, value *bool) {
	if value != nil {
		values.Set(key, strconv.FormatBool(*value))
	}
}
