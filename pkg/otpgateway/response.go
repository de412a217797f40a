package otpgateway

import (
	"encoding/json"
	"fmt"
)

// Delivery statuses as the gateway reports them. The comparison is a literal
// one: "Revoked" arrives capitalized while the others are lowercase, and a
// lowercase "revoked" is an unknown status.
const (
	deliveryStatusSent    = "sent"
	deliveryStatusRead    = "read"
	deliveryStatusRevoked = "Revoked"
)

const (
	DeliverySentMessage     = "OTP Sent"
	DeliveryReadMessage     = "OTP Read"
	DeliveryRevokedMessage  = "OTP Revoked"
	DeliveryNotFoundMessage = "Delivery Status not found"
)

// LastResponse returns the raw body of the last send, unmodified.
func (c *Client) LastResponse() (string, bool) {
	if c.lastResponse == nil {
		return "", false
	}
	return *c.lastResponse, true
}

// DecodedResponse decodes the last response into a generic mapping. Absence
// or a malformed body reads as absent, never as an error.
func (c *Client) DecodedResponse() (map[string]any, bool) {
	if c.lastResponse == nil {
		return nil, false
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(*c.lastResponse), &decoded); err != nil {
		return nil, false
	}

	return decoded, true
}

func (c *Client) RequestCost() (float64, bool) {
	value, ok := c.resultField("request_cost")
	if !ok {
		return 0, false
	}
	cost, ok := value.(float64)
	return cost, ok
}

func (c *Client) RemainingBalance() (float64, bool) {
	value, ok := c.resultField("remaining_balance")
	if !ok {
		return 0, false
	}
	balance, ok := value.(float64)
	return balance, ok
}

// DeliveryStatus maps the last response's delivery status into a
// human-readable message.
func (c *Client) DeliveryStatus() string {
	value, ok := c.resultField("delivery_status")
	if !ok {
		return DeliveryNotFoundMessage
	}

	delivery, ok := value.(map[string]any)
	if !ok {
		return DeliveryNotFoundMessage
	}

	status, ok := delivery["status"].(string)
	if !ok {
		return DeliveryNotFoundMessage
	}

	switch status {
	case deliveryStatusSent:
		return DeliverySentMessage
	case deliveryStatusRead:
		return DeliveryReadMessage
	case deliveryStatusRevoked:
		return DeliveryRevokedMessage
	default:
		return fmt.Sprintf("Unknown Status: %s", status)
	}
}

func (c *Client) resultField(key string) (any, bool) {
	decoded, ok := c.DecodedResponse()
	if !ok {
		return nil, false
	}

	result, ok := decoded["result"].(map[string]any)
	if !ok {
		return nil, false
	}

	value, ok := result[key]
	return value, ok
}
