package model

import "time"

type VerificationStatus string

const (
	VerificationStatusSent             VerificationStatus = "SENT"
	VerificationStatusValid            VerificationStatus = "VALID"
	VerificationStatusInvalid          VerificationStatus = "INVALID"
	VerificationStatusExpired          VerificationStatus = "EXPIRED"
	VerificationStatusAttemptsExceeded VerificationStatus = "ATTEMPTS_EXCEEDED"
	VerificationStatusRevoked          VerificationStatus = "REVOKED"
)

// Verification is the audit row for one verification attempt against the
// gateway, keyed by the gateway's request id.
type Verification struct {
	ID          int64              `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	RequestID   string             `gorm:"column:request_id;index:idx_request_id,unique"`
	SessionID   string             `gorm:"column:session_id;index:idx_session_id"`
	PhoneNumber string             `gorm:"column:phone_number"`
	Status      VerificationStatus `gorm:"column:status"`
	CodeLength  int                `gorm:"column:code_length"`
	Cost        *float64           `gorm:"column:cost"`
	CreatedAt   time.Time          `gorm:"column:created_at"`
	UpdatedAt   time.Time          `gorm:"column:updated_at"`
}
