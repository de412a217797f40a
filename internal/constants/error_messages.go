package constants

const (
	ErrCodeMissingPhoneNumber   = "MISSING_PHONE_NUMBER"
	ErrCodeMissingRequestID     = "MISSING_REQUEST_ID"
	ErrCodeInvalidParameter     = "INVALID_PARAMETER"
	ErrCodeInvalidRequestBody   = "INVALID_REQUEST_BODY"
	ErrCodeVerificationNotFound = "VERIFICATION_NOT_FOUND"
	ErrCodeGatewayError         = "GATEWAY_ERROR"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

const (
	ErrMsgMissingPhoneNumber   = "no phone number supplied or configured"
	ErrMsgMissingRequestID     = "no verification request id supplied or cached"
	ErrMsgInvalidParameter     = "parameter outside its valid range"
	ErrMsgInvalidRequestBody   = "failed to parse request body"
	ErrMsgVerificationNotFound = "verification not found"
	ErrMsgGatewayError         = "gateway request failed"
	ErrMsgInternalError        = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeMissingPhoneNumber:   ErrMsgMissingPhoneNumber,
	ErrCodeMissingRequestID:     ErrMsgMissingRequestID,
	ErrCodeInvalidParameter:     ErrMsgInvalidParameter,
	ErrCodeInvalidRequestBody:   ErrMsgInvalidRequestBody,
	ErrCodeVerificationNotFound: ErrMsgVerificationNotFound,
	ErrCodeGatewayError:         ErrMsgGatewayError,
	ErrCodeInternalError:        ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeMissingPhoneNumber, ErrCodeMissingRequestID, ErrCodeInvalidParameter, ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeVerificationNotFound:
		return 404
	case ErrCodeGatewayError:
		return 502
	default:
		return 500
	}
}
