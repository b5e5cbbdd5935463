package validators

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "task-manager.com/task-manager/internal/errors"
)

type collector struct {
	details []apperrors.FieldError
}

func (c *collector) add(field, format string, args ...any) {
	c.details = append(c.details, apperrors.FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *collector) err() error {
	if len(c.details) == 0 {
		return nil
	}
	return apperrors.NewValidationError(c.details)
}

// text checks a required string and returns it trimmed.
func (c *collector) text(field, label, value string, max int) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		c.add(field, "%s is required", label)
	case utf8.RuneCountInString(value) > max:
		c.add(field, "%s must be at most %d characters", label, max)
	}
	return value
}

// datetime parses an RFC 3339 timestamp. Empty input yields nil.
func (c *collector) datetime(field, value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		c.add(field, "Invalid datetime, expected RFC 3339 (e.g. 2025-01-01T00:00:00Z)")
		return nil
	}
	t = t.UTC()
	return &t
}
