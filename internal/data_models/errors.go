package dto

import apperrors "task-manager.com/task-manager/internal/errors"

type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}
