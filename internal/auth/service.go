package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service implements account lifecycle: registration, login,
// profile updates and password changes. Access policy for other
// users' resources lives in policy.go, not here.
type Service struct {
	users     UserRepository
	secret    string
	tokenTTL  time.Duration
	dummyHash string
}

// NewService creates an account service. The signing secret is injected
// once at construction; nothing else reads configuration.
func NewService(users UserRepository, secret string, tokenTTL time.Duration) (*Service, error) {
	// Hashed once so that login against an unknown email still pays
	// the full argon2 cost. Without this, response timing would reveal
	// which addresses have accounts.
	dummy, err := HashPassword("decoy-password-for-timing")
	if err != nil {
		return nil, fmt.Errorf("preparing decoy hash: %w", err)
	}

	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &Service{
		users:     users,
		secret:    secret,
		tokenTTL:  tokenTTL,
		dummyHash: dummy,
	}, nil
}

// Register creates a new account. Every account registered through this
// path is a regular user; admin status is never caller-controlled.
func (s *Service) Register(ctx context.Context, name, email, phone, password string) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		IsAdmin:      false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token for the account.
// Unknown email and wrong password are indistinguishable to the caller:
// both return ErrInvalidCredentials, and both cost one hash verification.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			VerifyPassword(password, s.dummyHash)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("looking up account: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword rotates the account password after re-verifying the
// current one. Existing tokens stay valid until they expire.
func (s *Service) ChangePassword(ctx context.Context, user *User, currentPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrInvalidInput)
	}
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

// UpdateProfile changes the account's name and phone. A nil field is
// left untouched; a non-nil field replaces the stored value, so an
// explicit empty phone clears it. Email is immutable.
func (s *Service) UpdateProfile(ctx context.Context, user *User, name, phone *string) (*User, error) {
	newName := user.Name
	if name != nil {
		if *name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		newName = *name
	}

	newPhone := user.Phone
	if phone != nil {
		newPhone = *phone
	}

	if err := s.users.UpdateProfile(ctx, user.ID, newName, newPhone); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, user.ID)
}
