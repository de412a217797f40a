package otpgateway

import (
	"errors"
	"fmt"
)

const (
	ErrCodeMissingPhoneNumber = "MISSING_PHONE_NUMBER"
	ErrCodeMissingRequestID   = "MISSING_REQUEST_ID"
	ErrCodeMissingEndpoint    = "MISSING_ENDPOINT"
	ErrCodeInvalidParameter   = "INVALID_PARAMETER"
)

var (
	ErrMissingPhoneNumber = errors.New(ErrCodeMissingPhoneNumber)
	ErrMissingRequestID   = errors.New(ErrCodeMissingRequestID)
	ErrMissingEndpoint    = errors.New(ErrCodeMissingEndpoint)
)

// InvalidParameterError reports a range-checked parameter set outside its
// valid bounds. The client's state is left unchanged when it is returned.
type InvalidParameterError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%d outside [%d, %d]", ErrCodeInvalidParameter, e.Param, e.Value, e.Min, e.Max)
}
