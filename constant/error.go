package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidCredential
	ErrUsernameRegistered
	ErrContactNotFound
	ErrAddressNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "Unauthorized",
	ErrInvalidCredential:  "Username or password is incorrect",
	ErrUsernameRegistered: "Username already registered",
	ErrContactNotFound:    "Contact is not found",
	ErrAddressNotFound:    "Address is not found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrInvalidCredential:  http.StatusUnauthorized,
	ErrUsernameRegistered: http.StatusBadRequest,
	ErrContactNotFound:    http.StatusNotFound,
	ErrAddressNotFound:    http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrInvalidRequest:     "0002",
	ErrUnauthorize:        "0003",
	ErrInvalidCredential:  "0004",
	ErrUsernameRegistered: "0005",
	ErrContactNotFound:    "0006",
	ErrAddressNotFound:    "0007",
}
