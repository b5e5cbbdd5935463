package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "Unauthorized",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Message:    "Invalid email or password",
	StatusCode: http.StatusUnauthorized,
}
