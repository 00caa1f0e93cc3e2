package releasy_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasy-io/releasy-go/pkg/releasy"
)

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
		wantDetail  bool
		wantBody    string
		wantError   string
	}{
		{
			name:        "canonical error body",
			status:      404,
			body:        `{"error":{"code":"customer_not_found","message":"no such customer"}}`,
			wantCode:    "customer_not_found",
			wantMessage: "no such customer",
			wantDetail:  true,
			wantBody:    `{"error":{"code":"customer_not_found","message":"no such customer"}}`,
			wantError:   "api error (status 404): customer_not_found (no such customer)",
		},
		{
			name:      "plain text body",
			status:    502,
			body:      "upstream exploded",
			wantBody:  "upstream exploded",
			wantError: "api error (status 502)",
		},
		{
			name:      "json body without error envelope",
			status:    500,
			body:      `{"message":"boom"}`,
			wantBody:  `{"message":"boom"}`,
			wantError: "api error (status 500)",
		},
		{
			name:      "empty code degrades to raw body",
			status:    400,
			body:      `{"error":{"code":"","message":"bad"}}`,
			wantBody:  `{"error":{"code":"","message":"bad"}}`,
			wantError: "api error (status 400)",
		},
		{
			name:      "empty body",
			status:    401,
			wantError: "api error (status 401)",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiErr := releasy.NewAPIError(testCase.status, []byte(testCase.body))

			assert.Equal(t, testCase.status, apiErr.Status)
			assert.Equal(t, testCase.wantCode, apiErr.Code())
			assert.Equal(t, testCase.wantMessage, apiErr.Message())
			assert.Equal(t, testCase.wantBody, apiErr.Body)
			assert.Equal(t, testCase.wantError, apiErr.Error())

			if testCase.wantDetail {
				require.NotNil(t, apiErr.Detail)
			} else {
				assert.Nil(t, apiErr.Detail)
			}
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := releasy.NewAPIError(404, nil)
	unauthorized := releasy.NewAPIError(401, nil)
	forbidden := releasy.NewAPIError(403, nil)

	assert.True(t, releasy.IsNotFound(notFound))
	assert.True(t, releasy.IsUnauthorized(unauthorized))
	assert.True(t, releasy.IsForbidden(forbidden))

	assert.False(t, releasy.IsNotFound(unauthorized))
	assert.False(t, releasy.IsUnauthorized(notFound))
	assert.False(t, releasy.IsForbidden(notFound))

	assert.Equal(t, 404, releasy.StatusOf(notFound))
	assert.Equal(t, 0, releasy.StatusOf(releasy.ErrMissingLocationHeader))
	assert.Equal(t, 0, releasy.StatusOf(nil))
}

func TestStatusHelpers_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting customer: %w", releasy.NewAPIError(404, nil))

	assert.True(t, releasy.IsNotFound(wrapped))
	assert.Equal(t, 404, releasy.StatusOf(wrapped))
}
