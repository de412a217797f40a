package otpgateway_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/Behyna/otp-services/otpgateway/pkg/mocks"
	"github.com/Behyna/otp-services/otpgateway/pkg/otpgateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_Call(t *testing.T) {
	ctx := context.Background()

	t.Run("missing endpoint", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := otpgateway.NewClient(otpgateway.Config{BaseURL: "https://gateway.test"}, mockClient, nil)

		raw, err := client.Call(ctx, "", url.Values{})

		assert.ErrorIs(t, err, otpgateway.ErrMissingEndpoint)
		assert.Empty(t, raw)
		mockClient.AssertNotCalled(t, "PostForm")
	})

	t.Run("falls back to the configured endpoint override", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		cfg := otpgateway.Config{BaseURL: "https://gateway.test", Token: "tok-123", Endpoint: "customEndpoint"}
		client := otpgateway.NewClient(cfg, mockClient, nil)

		mockClient.On("PostForm", ctx, "https://gateway.test/customEndpoint", mock.Anything,
			map[string]string{"Authorization": "Bearer tok-123"}).Return(jsonResponse(`{"ok":true}`), nil)

		raw, err := client.Call(ctx, "", url.Values{})

		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, raw)
		mockClient.AssertExpectations(t)
	})

	t.Run("empty token degrades to an empty access_token query parameter", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := otpgateway.NewClient(otpgateway.Config{BaseURL: "https://gateway.test"}, mockClient, nil)

		mockClient.On("PostForm", ctx, "https://gateway.test/checkSendAbility?access_token=", mock.Anything,
			(map[string]string)(nil)).Return(jsonResponse(`{"ok":false}`), nil)

		raw, err := client.Call(ctx, otpgateway.CheckSendAbilityEndpoint, url.Values{})

		require.NoError(t, err)
		assert.Equal(t, `{"ok":false}`, raw)
		mockClient.AssertExpectations(t)
	})

	t.Run("trailing slash on the base URL does not double up", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		cfg := otpgateway.Config{BaseURL: "https://gateway.test/", Token: "tok-123"}
		client := otpgateway.NewClient(cfg, mockClient, nil)

		mockClient.On("PostForm", ctx, "https://gateway.test/revokeVerificationMessage", mock.Anything,
			map[string]string{"Authorization": "Bearer tok-123"}).Return(jsonResponse(`{"ok":true}`), nil)

		_, err := client.Call(ctx, otpgateway.RevokeVerificationMessageEndpoint, url.Values{})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}
