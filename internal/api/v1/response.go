package v1

type CheckAbilityResponse struct {
	Able bool `json:"able"`
}

type SendOTPResponse struct {
	RequestID        string   `json:"request_id,omitempty"`
	RequestCost      *float64 `json:"request_cost,omitempty"`
	RemainingBalance *float64 `json:"remaining_balance,omitempty"`
	Raw              string   `json:"raw"`
}

type VerifyCodeResponse struct {
	Outcome string `json:"outcome,omitempty"`
	Status  string `json:"status,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

type RevokeResponse struct {
	Result map[string]any `json:"result,omitempty"`
}

type ListVerificationsResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	Total         int                    `json:"total"`
}

type VerificationResponse struct {
	RequestID   string   `json:"request_id"`
	PhoneNumber string   `json:"phone_number"`
	Status      string   `json:"status"`
	CodeLength  int      `json:"code_length"`
	Cost        *float64 `json:"cost,omitempty"`
	CreatedAt   string   `json:"created_at"`
}
