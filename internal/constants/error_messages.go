package constants

const (
	ErrCodeUnauthenticated         = "UNAUTHENTICATED"
	ErrCodeInvalidRequestBody      = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed        = "VALIDATION_FAILED"
	ErrCodeWalletNotFound          = "WALLET_NOT_FOUND"
	ErrCodeInsufficientBalance     = "INSUFFICIENT_BALANCE"
	ErrCodeDuplicateRequest        = "DUPLICATE_REQUEST"
	ErrCodeTransactionNotFound     = "TRANSACTION_NOT_FOUND"
	ErrCodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeProviderUnavailable     = "PROVIDER_UNAVAILABLE"
	ErrCodeInvalidRecipient        = "INVALID_RECIPIENT"
	ErrCodeInternalError           = "INTERNAL_ERROR"
)

const (
	ErrMsgUnauthenticated         = "you must be logged in"
	ErrMsgInvalidRequestBody      = "failed to parse request body"
	ErrMsgValidationFailed        = "request validation failed"
	ErrMsgWalletNotFound          = "wallet not found"
	ErrMsgInsufficientBalance     = "insufficient wallet balance"
	ErrMsgDuplicateRequest        = "duplicate request"
	ErrMsgTransactionNotFound     = "transaction not found"
	ErrMsgInvalidStatusTransition = "transaction is already finalized"
	ErrMsgProviderUnavailable     = "service provider is unavailable, please try again"
	ErrMsgInvalidRecipient        = "invalid recipient"
	ErrMsgInternalError           = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeUnauthenticated:         ErrMsgUnauthenticated,
	ErrCodeInvalidRequestBody:      ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:        ErrMsgValidationFailed,
	ErrCodeWalletNotFound:          ErrMsgWalletNotFound,
	ErrCodeInsufficientBalance:     ErrMsgInsufficientBalance,
	ErrCodeDuplicateRequest:        ErrMsgDuplicateRequest,
	ErrCodeTransactionNotFound:     ErrMsgTransactionNotFound,
	ErrCodeInvalidStatusTransition: ErrMsgInvalidStatusTransition,
	ErrCodeProviderUnavailable:     ErrMsgProviderUnavailable,
	ErrCodeInvalidRecipient:        ErrMsgInvalidRecipient,
	ErrCodeInternalError:           ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeUnauthenticated:
		return 401
	case ErrCodeWalletNotFound, ErrCodeTransactionNotFound:
		return 404
	case ErrCodeInsufficientBalance, ErrCodeDuplicateRequest, ErrCodeInvalidStatusTransition:
		return 409
	case ErrCodeValidationFailed, ErrCodeInvalidRecipient:
		return 422
	case ErrCodeProviderUnavailable:
		return 502
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
