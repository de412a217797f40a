// Package otpgateway is a thin client for the messaging-gateway OTP API.
// It holds a small bag of verification parameters, performs the four remote
// operations (ability check, send, verify, revoke) as form-encoded POSTs and
// maps the gateway's JSON responses into simpler return values. Malformed or
// unexpected remote responses never raise; they degrade to false, absence or
// the raw body. Only locally-detectable misuse returns a typed error.
package otpgateway

import (
	"context"

	"github.com/Behyna/otp-services/otpgateway/pkg/httpclient"
)

type Client struct {
	cfg          Config
	phoneNumber  string
	params       map[string]any
	lastResponse *string
	client       httpclient.HTTPClient
	sessions     SessionStore
}

// NewClient builds a client around an injected HTTP client and an optional
// session store. One client serves one logical verification flow; the client
// does no internal locking.
func NewClient(cfg Config, client httpclient.HTTPClient, sessions SessionStore) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		cfg:      cfg,
		params:   map[string]any{ParamCodeLength: DefaultCodeLength},
		client:   client,
		sessions: sessions,
	}
}

func (c *Client) SetToken(token string) { c.cfg.Token = token }

func (c *Client) Token() string { return c.cfg.Token }

func (c *Client) SetPhoneNumber(number string) { c.phoneNumber = number }

func (c *Client) PhoneNumber() string { return c.phoneNumber }

func (c *Client) SetEndpoint(endpoint string) { c.cfg.Endpoint = endpoint }

func (c *Client) Endpoint() string { return c.cfg.Endpoint }

// SetRequestID overrides the client-local request id. The session store, when
// populated, still wins on reads.
func (c *Client) SetRequestID(id string) { c.params[ParamRequestID] = id }

// RequestID resolves the identifier of the in-flight verification: the
// session store's value first, then the client-local parameter.
func (c *Client) RequestID(ctx context.Context) (string, bool) {
	if c.sessions != nil {
		if id, ok := c.sessions.Get(ctx, SessionKeyRequestID); ok && id != "" {
			return id, true
		}
	}
	if id, ok := c.params[ParamRequestID].(string); ok && id != "" {
		return id, true
	}
	return "", false
}

func (c *Client) SetCodeLength(length int) error {
	if length < MinCodeLength || length > MaxCodeLength {
		return InvalidParameterError{Param: ParamCodeLength, Value: length, Min: MinCodeLength, Max: MaxCodeLength}
	}
	c.params[ParamCodeLength] = length
	return nil
}

func (c *Client) CodeLength() int {
	if length, ok := c.params[ParamCodeLength].(int); ok {
		return length
	}
	return DefaultCodeLength
}

// SetCode supplies a caller-chosen OTP instead of a gateway-generated one.
func (c *Client) SetCode(code string) { c.params[ParamCode] = code }

func (c *Client) Code() string {
	code, _ := c.params[ParamCode].(string)
	return code
}

func (c *Client) SetSenderUsername(username string) { c.params[ParamSenderUsername] = username }

func (c *Client) SenderUsername() string {
	username, _ := c.params[ParamSenderUsername].(string)
	return username
}

func (c *Client) SetCallbackURL(url string) { c.params[ParamCallbackURL] = url }

func (c *Client) CallbackURL() string {
	url, _ := c.params[ParamCallbackURL].(string)
	return url
}

// SetPayload is an opaque passthrough; the value is forwarded to the gateway
// verbatim, no validation.
func (c *Client) SetPayload(payload any) { c.params[ParamPayload] = payload }

func (c *Client) Payload() any { return c.params[ParamPayload] }

func (c *Client) SetTTL(seconds int) error {
	if seconds < MinTTL || seconds > MaxTTL {
		return InvalidParameterError{Param: ParamTTL, Value: seconds, Min: MinTTL, Max: MaxTTL}
	}
	c.params[ParamTTL] = seconds
	return nil
}

func (c *Client) TTL() int {
	ttl, _ := c.params[ParamTTL].(int)
	return ttl
}
