package vtuprovider

import "errors"

var (
	ErrTimeout          = errors.New("TIMEOUT")
	ErrNetwork          = errors.New("NETWORK_ERROR")
	ErrServer           = errors.New("SERVER_ERROR")
	ErrInvalidRecipient = errors.New("INVALID_RECIPIENT")
)

func MapStatusToError(statusCode int) error {
	switch statusCode {
	case 400, 422:
		return ErrInvalidRecipient
	case 500, 502, 503, 504:
		return ErrServer
	default:
		return ErrServer
	}
}
