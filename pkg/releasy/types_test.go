package releasy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

func TestCustomerUpdateRequest_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	t.Run("empty patch marshals to empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&releasy.CustomerUpdateRequest{})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("explicit false is still sent", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&releasy.CustomerUpdateRequest{
			Suspended: releasy.Bool(false),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"suspended":false}`, string(data))
	})
}

func TestUser_MetadataIsOpaque(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": "usr_1",
		"keycloak_user_id": "kc-1",
		"customer_id": "cus_1",
		"email": "dev@example.com",
		"status": "active",
		"groups": ["downloads"],
		"created_at": 1700000000,
		"updated_at": 1700000100,
		"metadata": {"seats": 5, "nested": {"region": "eu"}}
	}`

	var user releasy.User

	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	assert.Equal(t, "usr_1", user.ID)
	assert.Equal(t, []string{"downloads"}, user.Groups)
	assert.Nil(t, user.DisabledAt)

	// Metadata passes through byte-for-byte semantics, not a typed struct.
	assert.JSONEq(t, `{"seats": 5, "nested": {"region": "eu"}}`, string(user.Metadata))

	data, err := json.Marshal(&user)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(data))
}

func TestRelease_ArtifactsOptional(t *testing.T) {
	t.Parallel()

	var release releasy.Release

	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "rel_1",
		"product": "agent",
		"version": "1.2.3",
		"status": "draft",
		"created_at": 1700000000
	}`), &release))

	assert.Equal(t, "draft", release.Status)
	assert.Nil(t, release.PublishedAt)
	assert.Empty(t, release.Artifacts)

	data, err := json.Marshal(&release)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "artifacts")
	assert.NotContains(t, string(data), "published_at")
}

func TestAPIKeyCreateResponse_CarriesSecret(t *testing.T) {
	t.Parallel()

	var created releasy.APIKeyCreateResponse

	require.NoError(t, json.Unmarshal([]byte(`{
		"api_key_id": "key_1",
		"api_key": "rls_secret_value",
		"customer_id": "cus_1",
		"key_type": "standard",
		"scopes": ["downloads:read"],
		"expires_at": 1800000000
	}`), &created))

	assert.Equal(t, "key_1", created.APIKeyID)
	assert.Equal(t, "rls_secret_value", created.APIKey)
	require.NotNil(t, created.ExpiresAt)
	assert.Equal(t, int64(1800000000), *created.ExpiresAt)
}

func TestPointerHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", *releasy.String("x"))
	assert.Equal(t, int32(7), *releasy.Int32(7))
	assert.Equal(t, int64(9), *releasy.Int64(9))
	assert.True(t, *releasy.Bool(true))
}
