package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Message:    "Task id is required",
	StatusCode: http.StatusBadRequest,
}
