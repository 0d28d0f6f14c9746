package accounts

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Message returns the short user-facing text for an account error, or an
// empty string when err is not one of the recoverable account errors.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		return "Username already exists"
	case errors.Is(err, ErrMissingCredentials):
		return "Please enter credentials"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	}
	return ""
}
