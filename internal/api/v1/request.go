package v1

type CheckAbilityRequest struct {
	SessionID   string `json:"session_id"`
	PhoneNumber string `json:"phone_number"`
}

type SendOTPRequest struct {
	SessionID      string `json:"session_id"`
	PhoneNumber    string `json:"phone_number"`
	CodeLength     int    `json:"code_length"`
	TTL            int    `json:"ttl"`
	Code           string `json:"code"`
	SenderUsername string `json:"sender_username"`
	CallbackURL    string `json:"callback_url"`
	Payload        string `json:"payload"`
}

type VerifyCodeRequest struct {
	SessionID string `json:"session_id"`
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
}

type RevokeRequest struct {
	SessionID string `json:"session_id"`
}
