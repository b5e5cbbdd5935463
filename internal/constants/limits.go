package constants

const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 2000
	TagNameMaxLength     = 30
	FullNameMaxLength    = 255
	EmailMaxLength       = 255
	PasswordMinLength    = 8
	// bcrypt only reads the first 72 bytes.
	PasswordMaxBytes = 72
)

const AuthCookieName = "auth-token"
