package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "User with this email already exists",
	StatusCode: http.StatusConflict,
}
