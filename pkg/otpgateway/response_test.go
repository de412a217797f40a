package otpgateway_test

import (
	"context"
	"testing"

	"github.com/Behyna/otp-services/otpgateway/pkg/mocks"
	"github.com/Behyna/otp-services/otpgateway/pkg/otpgateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sendWithBody runs a send so the body lands in the last-response slot, the
// only way the inspection accessors get fed.
func sendWithBody(t *testing.T, body string) *otpgateway.Client {
	t.Helper()

	mockClient := &mocks.HTTPClient{}
	client := otpgateway.NewClient(testConfig, mockClient, nil)

	mockClient.On("PostForm", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(jsonResponse(body), nil)

	_, err := client.SendOTP(context.Background(), "+15550001111")
	require.NoError(t, err)

	return client
}

func TestClient_LastResponse(t *testing.T) {
	t.Run("absent before any send", func(t *testing.T) {
		client := otpgateway.NewClient(testConfig, nil, nil)

		raw, ok := client.LastResponse()

		assert.False(t, ok)
		assert.Empty(t, raw)

		decoded, ok := client.DecodedResponse()
		assert.False(t, ok)
		assert.Nil(t, decoded)
	})

	t.Run("returned unmodified", func(t *testing.T) {
		body := `{"ok":true,"result":{"request_id":"r1"}}`
		client := sendWithBody(t, body)

		raw, ok := client.LastResponse()

		assert.True(t, ok)
		assert.Equal(t, body, raw)
	})
}

func TestClient_RequestCost(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		client := sendWithBody(t, `{"ok":true,"result":{"request_id":"r1","request_cost":0.35}}`)

		cost, ok := client.RequestCost()

		assert.True(t, ok)
		assert.Equal(t, 0.35, cost)
	})

	t.Run("absent", func(t *testing.T) {
		client := sendWithBody(t, `{"ok":true,"result":{"request_id":"r1"}}`)

		_, ok := client.RequestCost()

		assert.False(t, ok)
	})
}

func TestClient_RemainingBalance(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		client := sendWithBody(t, `{"ok":true,"result":{"remaining_balance":12.5}}`)

		balance, ok := client.RemainingBalance()

		assert.True(t, ok)
		assert.Equal(t, 12.5, balance)
	})

	t.Run("absent on malformed body", func(t *testing.T) {
		client := sendWithBody(t, `not json`)

		_, ok := client.RemainingBalance()

		assert.False(t, ok)
	})
}

func TestClient_DeliveryStatus(t *testing.T) {
	deliveryBody := func(status string) string {
		return `{"ok":true,"result":{"delivery_status":{"status":"` + status + `"}}}`
	}

	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "sent", body: deliveryBody("sent"), expected: otpgateway.DeliverySentMessage},
		{name: "read", body: deliveryBody("read"), expected: otpgateway.DeliveryReadMessage},
		{name: "revoked capitalized", body: deliveryBody("Revoked"), expected: otpgateway.DeliveryRevokedMessage},
		{name: "revoked lowercase is unknown", body: deliveryBody("revoked"), expected: "Unknown Status: revoked"},
		{name: "unrecognized", body: deliveryBody("queued"), expected: "Unknown Status: queued"},
		{name: "field absent", body: `{"ok":true,"result":{"request_id":"r1"}}`, expected: otpgateway.DeliveryNotFoundMessage},
		{name: "no result object", body: `{"ok":false}`, expected: otpgateway.DeliveryNotFoundMessage},
		{name: "malformed body", body: `<garbage>`, expected: otpgateway.DeliveryNotFoundMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := sendWithBody(t, tc.body)

			assert.Equal(t, tc.expected, client.DeliveryStatus())
		})
	}

	t.Run("no response yet", func(t *testing.T) {
		client := otpgateway.NewClient(testConfig, nil, nil)

		assert.Equal(t, otpgateway.DeliveryNotFoundMessage, client.DeliveryStatus())
	})
}
