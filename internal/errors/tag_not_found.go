package errors

import "net/http"

var ErrTagNotFound = &Exception{
	Message:    "Tag not found",
	StatusCode: http.StatusNotFound,
}
