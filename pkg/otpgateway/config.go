package otpgateway

import "time"

const DefaultBaseURL = "https://gatewayapi.telegram.org"

const (
	CheckSendAbilityEndpoint          = "checkSendAbility"
	SendVerificationMessageEndpoint   = "sendVerificationMessage"
	CheckVerificationStatusEndpoint   = "checkVerificationStatus"
	RevokeVerificationMessageEndpoint = "revokeVerificationMessage"
)

// Parameter names as the gateway expects them on the wire.
const (
	ParamPhoneNumber    = "phone_number"
	ParamRequestID      = "request_id"
	ParamCode           = "code"
	ParamCodeLength     = "code_length"
	ParamSenderUsername = "sender_username"
	ParamCallbackURL    = "callback_url"
	ParamPayload        = "payload"
	ParamTTL            = "ttl"
)

const (
	DefaultCodeLength = 6
	MinCodeLength     = 4
	MaxCodeLength     = 8

	MinTTL = 60
	MaxTTL = 86400
)

type Config struct {
	BaseURL  string        `mapstructure:"base_url"`
	Token    string        `mapstructure:"token"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}
