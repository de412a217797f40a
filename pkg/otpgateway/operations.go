package otpgateway

import (
	"context"
	"encoding/json"
	"net/url"
)

type apiResponse struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
}

type sendResult struct {
	RequestID   string `json:"request_id"`
	PhoneNumber string `json:"phone_number"`
}

type verificationStatusResult struct {
	VerificationStatus struct {
		Status string `json:"status"`
	} `json:"verification_status"`
}

// Remote verification statuses and their mapped outcomes.
const (
	remoteStatusCodeValid           = "code_valid"
	remoteStatusCodeInvalid         = "code_invalid"
	remoteStatusExpired             = "expired"
	remoteStatusMaxAttemptsExceeded = "code_max_attempts_exceeded"
)

type Outcome string

const (
	OutcomeValid            Outcome = "valid"
	OutcomeInvalid          Outcome = "invalid"
	OutcomeExpired          Outcome = "expired"
	OutcomeAttemptsExceeded Outcome = "attempts_exceeded"
	OutcomeUnknown          Outcome = "unknown"
)

type VerifyOptions struct {
	RequestID string
	Code      string
}

// VerifyResult carries the mapped outcome of a verification check. Status is
// the raw remote status string; for OutcomeUnknown it is the only way to see
// what the gateway actually said. When the status field is absent or the body
// does not decode, Outcome is empty and Raw holds the untouched body.
type VerifyResult struct {
	Outcome Outcome
	Status  string
	Raw     string
}

// CheckSendAbility asks the gateway whether it can currently deliver to the
// number. Validation passes when either the argument or the stored number is
// set, but the request always carries the argument value, even when it is
// empty and validation passed via the stored number.
func (c *Client) CheckSendAbility(ctx context.Context, phoneNumber string) (bool, error) {
	if phoneNumber == "" && c.phoneNumber == "" {
		return false, ErrMissingPhoneNumber
	}

	form := url.Values{}
	form.Set(ParamPhoneNumber, phoneNumber)

	body, err := c.post(ctx, CheckSendAbilityEndpoint, form)
	if err != nil {
		return false, err
	}

	var resp apiResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return false, nil
	}

	var result sendResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return false, nil
	}

	return result.RequestID != "", nil
}

// SendOTP sends a verification message to the resolved number, forwarding the
// whole parameter bag, and returns the raw response body. The body is also
// stored as the last response; no other operation stores one. On an ok
// response the returned request id is written to the session store (or the
// slot is cleared when absent) and the returned phone number is written back
// into the parameter bag.
func (c *Client) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	number := phoneNumber
	if number == "" {
		number = c.phoneNumber
	}
	if number == "" {
		return "", ErrMissingPhoneNumber
	}

	form := url.Values{}
	for key, value := range c.params {
		form.Set(key, formatParam(value))
	}
	// The resolved number wins over any phone_number already in the bag.
	form.Set(ParamPhoneNumber, number)

	body, err := c.post(ctx, SendVerificationMessageEndpoint, form)
	if err != nil {
		return "", err
	}

	c.lastResponse = &body

	var resp apiResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil || !resp.OK {
		return body, nil
	}

	var result sendResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return body, nil
	}

	if c.sessions != nil {
		if result.RequestID != "" {
			_ = c.sessions.Set(ctx, SessionKeyRequestID, result.RequestID)
		} else {
			_ = c.sessions.Delete(ctx, SessionKeyRequestID)
		}
	}

	c.params[ParamPhoneNumber] = result.PhoneNumber

	return body, nil
}

// VerifyCode checks the status of a verification. The identifier resolves in
// order: explicit option, session store, client-local parameter.
func (c *Client) VerifyCode(ctx context.Context, opts VerifyOptions) (VerifyResult, error) {
	requestID := opts.RequestID
	if requestID == "" {
		requestID, _ = c.RequestID(ctx)
	}
	if requestID == "" {
		return VerifyResult{}, ErrMissingRequestID
	}

	form := url.Values{}
	form.Set(ParamRequestID, requestID)
	if opts.Code != "" {
		form.Set(ParamCode, opts.Code)
	}

	body, err := c.post(ctx, CheckVerificationStatusEndpoint, form)
	if err != nil {
		return VerifyResult{}, err
	}

	var resp apiResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return VerifyResult{Raw: body}, nil
	}

	var result verificationStatusResult
	if err := json.Unmarshal(resp.Result, &result); err != nil || result.VerificationStatus.Status == "" {
		return VerifyResult{Raw: body}, nil
	}

	status := result.VerificationStatus.Status
	switch status {
	case remoteStatusCodeValid:
		return VerifyResult{Outcome: OutcomeValid, Status: status}, nil
	case remoteStatusCodeInvalid:
		return VerifyResult{Outcome: OutcomeInvalid, Status: status}, nil
	case remoteStatusExpired:
		return VerifyResult{Outcome: OutcomeExpired, Status: status}, nil
	case remoteStatusMaxAttemptsExceeded:
		return VerifyResult{Outcome: OutcomeAttemptsExceeded, Status: status}, nil
	default:
		return VerifyResult{Outcome: OutcomeUnknown, Status: status}, nil
	}
}

// RevokeCode revokes the in-flight verification and returns the decoded
// result object when the gateway returns one. Absence of a result is not an
// error.
func (c *Client) RevokeCode(ctx context.Context) (map[string]any, error) {
	requestID, ok := c.RequestID(ctx)
	if !ok {
		return nil, ErrMissingRequestID
	}

	form := url.Values{}
	form.Set(ParamRequestID, requestID)

	body, err := c.post(ctx, RevokeVerificationMessageEndpoint, form)
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, nil
	}

	result, _ := decoded["result"].(map[string]any)
	return result, nil
}
