package auth

import (
	"errors"
	"regexp"
	"time"
)

// emailPattern is a deliberately loose format check: local@domain.tld.
// The address is stored and compared exactly as provided (case-sensitive).
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// maxEmailLength is the maximum allowed email length.
const maxEmailLength = 254

// IsValidEmail checks if an email address meets format requirements.
func IsValidEmail(email string) bool {
	return len(email) <= maxEmailLength && emailPattern.MatchString(email)
}

// User represents an account.
//
// Email and IsAdmin are immutable through every exposed mutation path:
// profile updates touch name and phone only, and no handler flips the
// admin flag after creation.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"` // never serialised
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sentinel errors for auth operations.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated covers every token failure mode: missing, malformed,
	// bad signature, expired, or a subject with no matching account.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrInvalidInput = errors.New("invalid input")
)
