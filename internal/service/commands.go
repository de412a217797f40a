package service

import (
	"github.com/Behyna/otp-services/otpgateway/internal/model"
	"github.com/Behyna/otp-services/otpgateway/pkg/otpgateway"
)

type CheckAbilityCommand struct {
	SessionID   string
	PhoneNumber string
}

type StartVerificationCommand struct {
	SessionID      string
	PhoneNumber    string
	CodeLength     int
	TTL            int
	Code           string
	SenderUsername string
	CallbackURL    string
	Payload        string
}

type StartVerificationResult struct {
	RequestID        string
	Raw              string
	RequestCost      *float64
	RemainingBalance *float64
}

type ConfirmCodeCommand struct {
	SessionID string
	RequestID string
	Code      string
}

type ConfirmCodeResult struct {
	Outcome otpgateway.Outcome
	Status  string
	Raw     string
}

type RevokeCommand struct {
	SessionID string
}

type ListVerificationsCommand struct {
	SessionID string
	Limit     int
	Offset    int
}

type ListVerificationsResult struct {
	Verifications []model.Verification
}
