package validators

import (
	"net/mail"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	var c collector

	validateEmail(&c, r.Email)

	switch {
	case len([]rune(r.Password)) < constants.PasswordMinLength:
		c.add("password", "Password must be at least %d characters", constants.PasswordMinLength)
	case len(r.Password) > constants.PasswordMaxBytes:
		c.add("password", "Password must be at most %d bytes", constants.PasswordMaxBytes)
	}

	r.FullName = c.text("fullName", "Full name", r.FullName, constants.FullNameMaxLength)

	return c.err()
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	var c collector

	validateEmail(&c, r.Email)
	if r.Password == "" {
		c.add("password", "Password is required")
	}

	return c.err()
}

func validateEmail(c *collector, email string) {
	if email == "" {
		c.add("email", "Email is required")
		return
	}
	if len(email) > constants.EmailMaxLength {
		c.add("email", "Email must be at most %d characters", constants.EmailMaxLength)
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		c.add("email", "Invalid email address")
	}
}
